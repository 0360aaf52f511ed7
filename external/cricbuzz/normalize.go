package cricbuzz

import (
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricket-stats/internal/domain/match"
	"github.com/riskibarqy/cricket-stats/internal/domain/player"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/usecase"
)

// ErrMalformedPayload marks a payload whose root is not a JSON object. Missing
// fields inside an object never produce it; they default to zero values.
var ErrMalformedPayload = crerr.New("malformed cricbuzz payload")

// MatchesFromFeed flattens a live or recent feed into its match entries.
// Series entries without seriesAdWrapper are ads and are skipped.
func MatchesFromFeed(raw any) ([]any, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, crerr.Wrapf(ErrMalformedPayload, "match feed is %T", raw)
	}

	var out []any
	for _, typeMatch := range getSlice(obj, "typeMatches") {
		for _, series := range getSlice(asMap(typeMatch), "seriesMatches") {
			wrapper := getMap(asMap(series), "seriesAdWrapper")
			if wrapper == nil {
				continue
			}
			out = append(out, getSlice(wrapper, "matches")...)
		}
	}
	return out, nil
}

// NormalizeMatch maps one feed entry. A missing or unparseable startDate falls
// back to now's UTC date.
func NormalizeMatch(raw any, now time.Time) (match.Match, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return match.Match{}, crerr.Wrapf(ErrMalformedPayload, "match entry is %T", raw)
	}

	info := getMap(obj, "matchInfo")
	venue := getMap(info, "venueInfo")
	toss := getMap(info, "tossResults")
	status := getString(info, "status")
	winner, margin := match.ParseOutcome(status)

	return match.Match{
		ProviderID:   nonNegative(getInt64(info, "matchId")),
		Description:  getString(info, "matchDesc"),
		Format:       getString(info, "matchFormat"),
		Status:       status,
		State:        getString(info, "stateTitle"),
		Team1:        getString(getMap(info, "team1"), "teamName"),
		Team2:        getString(getMap(info, "team2"), "teamName"),
		Venue:        getString(venue, "ground"),
		VenueCity:    getString(venue, "city"),
		Date:         startDate(info, now),
		Winner:       winner,
		Margin:       margin,
		TossWinner:   getString(toss, "tossWinnerName"),
		TossDecision: getString(toss, "decision"),
	}, nil
}

func startDate(info map[string]any, now time.Time) match.Date {
	if ms := getInt64(info, "startDate"); ms > 0 {
		return match.DateFromEpochMillis(ms)
	}
	return match.DateOf(now.UTC())
}

// PlayerHits reads the search result list. Entries without an id cannot be
// fetched and are dropped.
func PlayerHits(raw any) ([]usecase.ExternalPlayerHit, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, crerr.Wrapf(ErrMalformedPayload, "player search is %T", raw)
	}

	var hits []usecase.ExternalPlayerHit
	for _, item := range getSlice(obj, "player") {
		entry := asMap(item)
		id := getInt64(entry, "id")
		if id <= 0 {
			continue
		}
		hits = append(hits, usecase.ExternalPlayerHit{
			ID:       id,
			Name:     getString(entry, "name"),
			TeamName: getString(entry, "teamName"),
			Raw:      entry,
		})
	}
	return hits, nil
}

// NormalizePlayer merges a search hit with its detail payload. Country comes
// from the hit's team name; the full name falls back to the hit name.
func NormalizePlayer(search, detail any) (player.Player, error) {
	hit, ok := search.(map[string]any)
	if !ok {
		return player.Player{}, crerr.Wrapf(ErrMalformedPayload, "player search hit is %T", search)
	}
	info, ok := detail.(map[string]any)
	if !ok {
		return player.Player{}, crerr.Wrapf(ErrMalformedPayload, "player detail is %T", detail)
	}

	name := getString(hit, "name")
	fullName := getString(info, "name")
	if fullName == "" {
		fullName = name
	}

	return player.Player{
		Name:         name,
		FullName:     fullName,
		Country:      getString(hit, "teamName"),
		PlayingRole:  getString(info, "role"),
		BattingStyle: getString(info, "bat"),
		BowlingStyle: getString(info, "bowl"),
	}, nil
}

// NormalizeScorecard flattens every innings into batting and bowling entries
// keyed by player name. An empty format defaults to ODI.
func NormalizeScorecard(raw any, format string) (scorecard.Card, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return scorecard.Card{}, crerr.Wrapf(ErrMalformedPayload, "scorecard is %T", raw)
	}
	if format == "" {
		format = scorecard.DefaultFormat
	}

	card := scorecard.Card{Format: format}
	for _, item := range getSlice(obj, "scorecard") {
		innings := asMap(item)
		if innings == nil {
			continue
		}
		inningsNo := getInt64(innings, "inningsId")
		if inningsNo <= 0 {
			inningsNo = 1
		}
		team := getString(innings, "batteamname")

		for _, entry := range getSlice(innings, "batsman") {
			bat := asMap(entry)
			if bat == nil {
				continue
			}
			card.Batting = append(card.Batting, scorecard.Batting{
				PlayerName: getString(bat, "name"),
				Runs:       nonNegative(getInt64(bat, "runs")),
				Balls:      nonNegative(getInt64(bat, "balls")),
				StrikeRate: nonNegativeFloat(getFloat64(bat, "strkrate")),
				Dismissal:  getString(bat, "outdec"),
				Team:       team,
				InningsNo:  inningsNo,
			})
		}

		for _, entry := range getSlice(innings, "bowler") {
			bowl := asMap(entry)
			if bowl == nil {
				continue
			}
			card.Bowling = append(card.Bowling, scorecard.Bowling{
				PlayerName:   getString(bowl, "name"),
				Overs:        nonNegativeFloat(getFloat64(bowl, "overs")),
				RunsConceded: nonNegative(getInt64(bowl, "runs")),
				Wickets:      nonNegative(getInt64(bowl, "wickets")),
				EconomyRate:  nonNegativeFloat(getFloat64(bowl, "economy")),
				Format:       format,
			})
		}
	}
	return card, nil
}
