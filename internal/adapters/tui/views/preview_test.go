package views

import (
	"testing"

	"launchpad/internal/domain"
)

func TestFilterCards(t *testing.T) {
	cards := []domain.Card{
		{DisplayName: "NBA HIGHLIGHTS", Href: "nba-highlights.html"},
		{DisplayName: "GAME / FLIP", Href: "game/flip.html"},
		{DisplayName: "WEATHER / TODAY", Href: "apps/weather/today.html"},
	}

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"empty query returns all", "", 3},
		{"whitespace query returns all", "   ", 3},
		{"matches display name case-insensitively", "nba", 1},
		{"matches href", "apps/", 1},
		{"matches multiple", ".html", 3},
		{"no match", "zzz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCards(cards, tt.query)
			if len(got) != tt.want {
				t.Errorf("FilterCards(%q) returned %d cards, want %d", tt.query, len(got), tt.want)
			}
		})
	}
}

func TestFilterCards_PreservesOrder(t *testing.T) {
	cards := []domain.Card{
		{DisplayName: "A", Href: "a-page.html"},
		{DisplayName: "B", Href: "b-page.html"},
		{DisplayName: "C", Href: "c-page.html"},
	}

	got := FilterCards(cards, "page")
	if len(got) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(got))
	}
	for i, c := range cards {
		if got[i].Href != c.Href {
			t.Errorf("position %d: expected %s, got %s", i, c.Href, got[i].Href)
		}
	}
}
