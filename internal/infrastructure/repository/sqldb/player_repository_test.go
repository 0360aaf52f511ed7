package sqldb

import (
	"context"
	"testing"

	"github.com/riskibarqy/cricket-stats/internal/domain/player"
)

func TestPlayerRepository_UpsertUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository(openTestDB(t))

	id, inserted, err := repo.Upsert(ctx, player.Player{
		Name:      "Virat Kohli",
		FullName:  "Virat Kohli",
		Country:   "India",
		TotalRuns: 12000,
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if !inserted {
		t.Fatalf("expected first upsert to insert")
	}

	againID, inserted, err := repo.Upsert(ctx, player.Player{
		Name:        "Virat Kohli",
		FullName:    "Virat Kohli",
		Country:     "IND",
		PlayingRole: "Batsman",
		TotalRuns:   1,
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if inserted || againID != id {
		t.Fatalf("expected update of id %d, got id=%d inserted=%v", id, againID, inserted)
	}

	items, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one player, got %d", len(items))
	}
	got := items[0]
	if got.Country != "IND" || got.PlayingRole != "Batsman" {
		t.Fatalf("expected descriptive fields to be updated, got %+v", got)
	}
	if got.TotalRuns != 12000 {
		t.Fatalf("expected total runs to be kept from insert, got %d", got.TotalRuns)
	}
}

func TestPlayerRepository_UpsertMatchesEitherName(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository(openTestDB(t))

	id, _, err := repo.Upsert(ctx, player.Player{Name: "MS Dhoni", FullName: "MS Dhoni"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	againID, inserted, err := repo.Upsert(ctx, player.Player{Name: "MS Dhoni", FullName: "Mahendra Singh Dhoni"})
	if err != nil {
		t.Fatalf("upsert by name: %v", err)
	}
	if inserted || againID != id {
		t.Fatalf("expected match on name, got id=%d inserted=%v", againID, inserted)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 player, got %d", count)
	}
}

func TestPlayerRepository_UpsertRejectsInvalid(t *testing.T) {
	repo := NewPlayerRepository(openTestDB(t))
	if _, _, err := repo.Upsert(context.Background(), player.Player{}); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestPlayerRepository_FindIDByName(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository(openTestDB(t))

	id, _, err := repo.Upsert(ctx, player.Player{Name: "Jasprit Bumrah", FullName: "Jasprit Jasbirsingh Bumrah"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, ok, err := repo.FindIDByName(ctx, "Bumrah")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !ok || got != id {
		t.Fatalf("expected id %d, got %d ok=%v", id, got, ok)
	}

	if _, ok, err := repo.FindIDByName(ctx, "Shaheen Afridi"); err != nil || ok {
		t.Fatalf("expected no match, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := repo.FindIDByName(ctx, "   "); err != nil || ok {
		t.Fatalf("expected blank name to resolve nothing, got ok=%v err=%v", ok, err)
	}
}
