package match

import (
	"testing"
	"time"
)

func TestParseOutcome(t *testing.T) {
	tests := []struct {
		status     string
		wantWinner string
		wantMargin string
	}{
		{status: "India won by 5 wickets", wantWinner: "India", wantMargin: "5 wickets"},
		{status: "  New Zealand won by 23 runs (DLS method) ", wantWinner: "New Zealand", wantMargin: "23 runs (DLS method)"},
		{status: "Match abandoned"},
		{status: ""},
		{status: "India Won By 5 wickets"},
		{status: "A won by 1 run won by 2 runs"},
		{status: "won by 4 wickets", wantWinner: "", wantMargin: ""},
	}

	for _, tc := range tests {
		t.Run(tc.status, func(t *testing.T) {
			winner, margin := ParseOutcome(tc.status)
			if winner != tc.wantWinner || margin != tc.wantMargin {
				t.Fatalf("ParseOutcome(%q)=(%q,%q) want (%q,%q)", tc.status, winner, margin, tc.wantWinner, tc.wantMargin)
			}
		})
	}
}

func TestMatchProjections(t *testing.T) {
	m := Match{
		ProviderID:   91234,
		Description:  "1st ODI",
		Format:       "ODI",
		Status:       "India won by 5 wickets",
		State:        "Complete",
		Team1:        "India",
		Team2:        "Australia",
		Venue:        "Wankhede Stadium",
		VenueCity:    "Mumbai",
		Date:         "2024-03-01",
		Winner:       "India",
		Margin:       "5 wickets",
		TossWinner:   "Australia",
		TossDecision: "bat",
	}

	recent := m.Recent()
	if recent.StartDate != m.Date || recent.VenueCity != "Mumbai" || recent.ProviderID != 91234 {
		t.Fatalf("unexpected recent projection: %+v", recent)
	}
	if recent.IsLive() {
		t.Fatalf("complete match must not be live")
	}

	combined := m.Combined()
	if combined.MatchDate != m.Date || combined.Winner != "India" || combined.TossDecision != "bat" {
		t.Fatalf("unexpected combined projection: %+v", combined)
	}
}

func TestScorecardTargetFetchID(t *testing.T) {
	if got := (ScorecardTarget{MatchID: 4, ProviderID: 91234}).FetchID(); got != 91234 {
		t.Fatalf("expected provider id, got %d", got)
	}
	if got := (ScorecardTarget{MatchID: 4}).FetchID(); got != 4 {
		t.Fatalf("expected local id fallback, got %d", got)
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)); err != nil || d != "2024-03-01" {
		t.Fatalf("scan time: %q %v", d, err)
	}
	if err := d.Scan("2024-03-02T00:00:00Z"); err != nil || d != "2024-03-02" {
		t.Fatalf("scan string: %q %v", d, err)
	}
	if err := d.Scan([]byte("2024-03-03")); err != nil || d != "2024-03-03" {
		t.Fatalf("scan bytes: %q %v", d, err)
	}
	if err := d.Scan(nil); err != nil || d != "" {
		t.Fatalf("scan nil: %q %v", d, err)
	}
	if err := d.Scan(42); err == nil {
		t.Fatalf("expected error for int source")
	}
}

func TestDateFromEpochMillis(t *testing.T) {
	// 2024-03-01T09:30:00Z
	if got := DateFromEpochMillis(1709285400000); got != "2024-03-01" {
		t.Fatalf("unexpected date: %q", got)
	}
	if _, err := ParseDate("01/03/2024"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDateAddDays(t *testing.T) {
	if got := Date("2024-03-01").AddDays(-1); got != "2024-02-29" {
		t.Fatalf("unexpected date: %q", got)
	}
	if got := Date("garbage").AddDays(3); got != "garbage" {
		t.Fatalf("expected unparseable date unchanged, got %q", got)
	}
}
