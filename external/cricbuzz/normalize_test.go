package cricbuzz

import (
	"errors"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var fixedNow = time.Date(2024, 5, 10, 23, 30, 0, 0, time.UTC)

func TestNormalizeMatch(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"matchInfo": map[string]any{
			"matchId":     float64(87654),
			"matchDesc":   "1st ODI",
			"matchFormat": "ODI",
			"status":      "India won by 5 wickets",
			"stateTitle":  "Complete",
			"startDate":   "1709285400000",
			"team1":       map[string]any{"teamName": "India"},
			"team2":       map[string]any{"teamName": "Australia"},
			"venueInfo":   map[string]any{"ground": "Wankhede Stadium", "city": "Mumbai"},
			"tossResults": map[string]any{"tossWinnerName": "Australia", "decision": "bat"},
		},
	}

	got, err := NormalizeMatch(raw, fixedNow)
	if err != nil {
		t.Fatalf("normalize match: %v", err)
	}
	if got.ProviderID != 87654 || got.Description != "1st ODI" || got.Format != "ODI" {
		t.Fatalf("unexpected identity fields: %+v", got)
	}
	if got.Team1 != "India" || got.Team2 != "Australia" {
		t.Fatalf("unexpected teams: %q %q", got.Team1, got.Team2)
	}
	if got.Date != "2024-03-01" {
		t.Fatalf("unexpected date: %q", got.Date)
	}
	if got.Winner != "India" || got.Margin != "5 wickets" {
		t.Fatalf("unexpected outcome: %q / %q", got.Winner, got.Margin)
	}
	if got.TossWinner != "Australia" || got.TossDecision != "bat" {
		t.Fatalf("unexpected toss: %q / %q", got.TossWinner, got.TossDecision)
	}
}

func TestNormalizeMatch_MissingFieldsDefault(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"matchInfo": map[string]any{
			"status":    "Match abandoned",
			"startDate": "not-a-number",
			"team1":     map[string]any{"teamName": "England"},
		},
	}

	got, err := NormalizeMatch(raw, fixedNow)
	if err != nil {
		t.Fatalf("normalize match: %v", err)
	}
	if got.Venue != "" || got.VenueCity != "" {
		t.Fatalf("expected empty venue, got %q / %q", got.Venue, got.VenueCity)
	}
	if got.Winner != "" || got.Margin != "" {
		t.Fatalf("expected empty outcome, got %q / %q", got.Winner, got.Margin)
	}
	if got.Date != "2024-05-10" {
		t.Fatalf("expected fallback to now's date, got %q", got.Date)
	}
	if got.Team2 != "" || got.ProviderID != 0 {
		t.Fatalf("expected zero values, got %+v", got)
	}
}

func TestNormalizeMatch_Malformed(t *testing.T) {
	t.Parallel()

	for _, raw := range []any{nil, "match", []any{1, 2}, float64(3)} {
		if _, err := NormalizeMatch(raw, fixedNow); !errors.Is(err, ErrMalformedPayload) {
			t.Fatalf("expected ErrMalformedPayload for %T, got %v", raw, err)
		}
	}
}

func TestMatchesFromFeed_SkipsAds(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"typeMatches": []any{
			map[string]any{
				"seriesMatches": []any{
					map[string]any{"seriesAdWrapper": map[string]any{
						"matches": []any{map[string]any{"matchInfo": map[string]any{}}, "broken"},
					}},
					map[string]any{"adDetail": map[string]any{"name": "ad"}},
				},
			},
			map[string]any{
				"seriesMatches": []any{
					map[string]any{"seriesAdWrapper": map[string]any{
						"matches": []any{map[string]any{"matchInfo": map[string]any{}}},
					}},
				},
			},
		},
	}

	got, err := MatchesFromFeed(raw)
	if err != nil {
		t.Fatalf("matches from feed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if _, err := NormalizeMatch(got[1], fixedNow); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected malformed entry to be reported, got %v", err)
	}
	if _, err := MatchesFromFeed([]any{}); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload for array feed, got %v", err)
	}
}

func TestNormalizePlayer(t *testing.T) {
	t.Parallel()

	search := map[string]any{"id": "1413", "name": "Virat Kohli", "teamName": "India"}
	detail := map[string]any{"role": "Batsman", "bat": "Right Handed Bat", "bowl": "Right-arm medium"}

	got, err := NormalizePlayer(search, detail)
	if err != nil {
		t.Fatalf("normalize player: %v", err)
	}
	if got.Name != "Virat Kohli" || got.FullName != "Virat Kohli" {
		t.Fatalf("expected full name fallback, got %+v", got)
	}
	if got.Country != "India" || got.PlayingRole != "Batsman" || got.BattingStyle != "Right Handed Bat" {
		t.Fatalf("unexpected player: %+v", got)
	}

	if _, err := NormalizePlayer(search, "nope"); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestPlayerHits(t *testing.T) {
	t.Parallel()

	raw := map[string]any{"player": []any{
		map[string]any{"name": "No Id"},
		map[string]any{"id": "1413", "name": "Virat Kohli", "teamName": "India"},
		map[string]any{"id": float64(8733), "name": "Kohli Jr"},
	}}

	hits, err := PlayerHits(raw)
	if err != nil {
		t.Fatalf("player hits: %v", err)
	}
	if len(hits) != 2 || hits[0].ID != 1413 || hits[1].ID != 8733 {
		t.Fatalf("unexpected hits: %+v", hits)
	}
	if hits[0].TeamName != "India" {
		t.Fatalf("unexpected team name: %q", hits[0].TeamName)
	}
}

func TestNormalizeScorecard(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"scorecard": []any{
			map[string]any{
				"inningsId":   float64(2),
				"batteamname": "India",
				"batsman": []any{
					map[string]any{"name": "Kohli", "runs": float64(82), "balls": float64(53), "strkrate": "154.72", "outdec": "not out"},
					map[string]any{"name": "Rohit", "runs": float64(-4)},
				},
				"bowler": []any{
					map[string]any{"name": "Cummins", "overs": "9.4", "runs": float64(51), "wickets": float64(2), "economy": float64(5.27)},
				},
			},
			map[string]any{"batsman": []any{map[string]any{"name": "Smith"}}},
		},
	}

	card, err := NormalizeScorecard(raw, "")
	if err != nil {
		t.Fatalf("normalize scorecard: %v", err)
	}
	if card.Format != "ODI" {
		t.Fatalf("expected default format, got %q", card.Format)
	}
	if len(card.Batting) != 3 || len(card.Bowling) != 1 {
		t.Fatalf("unexpected entry counts: batting=%d bowling=%d", len(card.Batting), len(card.Bowling))
	}
	kohli := card.Batting[0]
	if kohli.Runs != 82 || kohli.StrikeRate != 154.72 || kohli.InningsNo != 2 || kohli.Team != "India" {
		t.Fatalf("unexpected batting entry: %+v", kohli)
	}
	if card.Batting[1].Runs != 0 {
		t.Fatalf("expected negative runs clamped, got %d", card.Batting[1].Runs)
	}
	if card.Batting[2].InningsNo != 1 {
		t.Fatalf("expected default innings 1, got %d", card.Batting[2].InningsNo)
	}
	if bowl := card.Bowling[0]; bowl.Overs != 9.4 || bowl.Wickets != 2 || bowl.Format != "ODI" {
		t.Fatalf("unexpected bowling entry: %+v", bowl)
	}
}

func genPayloadValue() gopter.Gen {
	return gen.OneGenOf(
		gen.AlphaString().Map(func(v string) any { return v }),
		gen.Float64Range(-1e12, 1e12).Map(func(v float64) any { return v }),
		gen.NumString().Map(func(v string) any { return "-" + v }),
		gen.Bool().Map(func(v bool) any { return v }),
	)
}

func genPayloadMap(keys ...string) gopter.Gen {
	return gen.SliceOfN(len(keys), genPayloadValue()).Map(func(values []any) map[string]any {
		out := make(map[string]any, len(keys))
		for i, key := range keys {
			if i < len(values) {
				out[key] = values[i]
			}
		}
		return out
	})
}

func TestProperty_NormalizerNeverNegativeNorFails(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("match normalization accepts any object", prop.ForAll(
		func(info map[string]any) bool {
			got, err := NormalizeMatch(map[string]any{"matchInfo": info}, fixedNow)
			return err == nil && got.ProviderID >= 0 && got.Date != ""
		},
		genPayloadMap("matchId", "matchDesc", "status", "startDate", "team1", "venueInfo"),
	))

	properties.Property("scorecard numerics are never negative", prop.ForAll(
		func(bat, bowl map[string]any) bool {
			raw := map[string]any{"scorecard": []any{map[string]any{
				"inningsId": bat["runs"],
				"batsman":   []any{bat},
				"bowler":    []any{bowl},
			}}}
			card, err := NormalizeScorecard(raw, "T20")
			if err != nil || len(card.Batting) != 1 || len(card.Bowling) != 1 {
				return false
			}
			b, w := card.Batting[0], card.Bowling[0]
			return b.Runs >= 0 && b.Balls >= 0 && b.StrikeRate >= 0 && b.InningsNo >= 1 &&
				w.Overs >= 0 && w.RunsConceded >= 0 && w.Wickets >= 0 && w.EconomyRate >= 0
		},
		genPayloadMap("name", "runs", "balls", "strkrate", "outdec"),
		genPayloadMap("name", "overs", "runs", "wickets", "economy"),
	))

	properties.TestingRun(t)
}
