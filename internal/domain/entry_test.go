package domain

import "testing"

func TestEntryDisplayName(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "root file uppercased with dashes replaced",
			entry: Entry{Href: "nba-highlights.html"},
			want:  "NBA HIGHLIGHTS",
		},
		{
			name:  "subfolder prefix joined with slash",
			entry: Entry{Href: "game/flip.html", Subfolder: "game"},
			want:  "GAME / FLIP",
		},
		{
			name:  "nested subfolder kept as path",
			entry: Entry{Href: "apps/weather/today.html", Subfolder: "weather"},
			want:  "WEATHER / TODAY",
		},
		{
			name:  "dashes in filename only",
			entry: Entry{Href: "photo-booth/my-shots.html", Subfolder: "photo-booth"},
			want:  "PHOTO-BOOTH / MY SHOTS",
		},
		{
			name:  "already uppercase stays put",
			entry: Entry{Href: "API.html"},
			want:  "API",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildCard(t *testing.T) {
	card := BuildCard(Entry{Href: "nba-highlights.html"})

	if card.DisplayName != "NBA HIGHLIGHTS" {
		t.Errorf("expected display name NBA HIGHLIGHTS, got %q", card.DisplayName)
	}
	if card.Icon != "🏀" {
		t.Errorf("expected 🏀, got %q", card.Icon)
	}
	if card.Href != "nba-highlights.html" {
		t.Errorf("href changed during rendering: %q", card.Href)
	}
}

func TestSortEntries_CaseInsensitive(t *testing.T) {
	entries := []Entry{
		{Href: "Zebra.html"},
		{Href: "apple.html"},
		{Href: "Mango.html"},
		{Href: "banana.html"},
	}

	SortEntries(entries)

	want := []string{"apple.html", "banana.html", "Mango.html", "Zebra.html"}
	for i, w := range want {
		if entries[i].Href != w {
			t.Errorf("position %d: expected %s, got %s", i, w, entries[i].Href)
		}
	}
}

func TestSortEntries_StableOnTies(t *testing.T) {
	// Same href lowercased; original order must survive.
	entries := []Entry{
		{Href: "DUPE.html", Subfolder: "first"},
		{Href: "dupe.html", Subfolder: "second"},
	}

	SortEntries(entries)

	if entries[0].Subfolder != "first" || entries[1].Subfolder != "second" {
		t.Errorf("tie order not preserved: %v", entries)
	}
}

func TestBuildCards_PreservesOrder(t *testing.T) {
	entries := []Entry{
		{Href: "a.html"},
		{Href: "b.html"},
		{Href: "c.html"},
	}

	cards := BuildCards(entries)

	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	for i, e := range entries {
		if cards[i].Href != e.Href {
			t.Errorf("card %d: expected href %s, got %s", i, e.Href, cards[i].Href)
		}
	}
}
