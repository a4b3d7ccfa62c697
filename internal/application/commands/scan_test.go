package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"launchpad/internal/adapters/filesystem"
)

func TestScanCommand_ReturnsSortedCards(t *testing.T) {
	dir := t.TempDir()
	writeSite(t, dir, "Zebra.html", "airport/departures.html", "mlb-scores.html")

	repo := filesystem.NewRepository(dir, dir)
	cmd := NewScanCommand(repo)

	cards, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}

	wantHrefs := []string{"airport/departures.html", "mlb-scores.html", "Zebra.html"}
	for i, w := range wantHrefs {
		if cards[i].Href != w {
			t.Errorf("card %d: expected href %s, got %s", i, w, cards[i].Href)
		}
	}

	if cards[0].Icon != "✈️" {
		t.Errorf("expected ✈️ for airport card, got %q", cards[0].Icon)
	}
	if cards[1].Icon != "⚾" {
		t.Errorf("expected ⚾ for mlb card, got %q", cards[1].Icon)
	}
}

func TestScanCommand_WritesNothing(t *testing.T) {
	dir := t.TempDir()
	writeSite(t, dir, "a.html")

	repo := filesystem.NewRepository(dir, dir)
	if _, err := NewScanCommand(repo).Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "index.html")); !os.IsNotExist(err) {
		t.Error("scan created an index.html")
	}
}

func TestListRunsCommand_Validate(t *testing.T) {
	cmd := &ListRunsCommand{Limit: 5}
	if err := cmd.Validate(); err == nil {
		t.Error("expected error for nil history, got nil")
	}
}

func TestListRunsCommand_DefaultLimit(t *testing.T) {
	cmd := NewListRunsCommand(&fakeHistory{}, 0)
	if cmd.Limit != DefaultRunLimit {
		t.Errorf("expected default limit %d, got %d", DefaultRunLimit, cmd.Limit)
	}
}
