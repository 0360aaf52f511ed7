package seeddata

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	data, err := Load(now)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(data.Teams) != 6 || len(data.Players) != 10 || len(data.Venues) != 6 {
		t.Fatalf("unexpected sizes: teams=%d players=%d venues=%d", len(data.Teams), len(data.Players), len(data.Venues))
	}
	if len(data.Matches) != 4 || len(data.TopODIRuns) != 6 || len(data.Series) != 3 {
		t.Fatalf("unexpected sizes: matches=%d top_odi=%d series=%d", len(data.Matches), len(data.TopODIRuns), len(data.Series))
	}

	first := data.Matches[0]
	if first.Date != "2024-06-10" {
		t.Fatalf("unexpected match date: %q", first.Date)
	}
	if first.Winner != "India" || first.Margin != "5 wickets" {
		t.Fatalf("unexpected outcome: %q / %q", first.Winner, first.Margin)
	}
	if live := data.Matches[3]; live.Winner != "" || live.State != "Live" {
		t.Fatalf("unexpected live match: %+v", live)
	}
	if data.Series[0].StartDate != "2024-05-16" {
		t.Fatalf("unexpected series date: %q", data.Series[0].StartDate)
	}
	for _, p := range data.Players {
		if err := p.Validate(); err != nil {
			t.Fatalf("invalid seed player %q: %v", p.Name, err)
		}
	}
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := decode([]byte(`{"players":`), time.Now()); err == nil {
		t.Fatalf("expected decode error")
	}
}
