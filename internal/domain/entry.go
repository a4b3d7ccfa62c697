package domain

import (
	"path"
	"sort"
	"strings"
)

// IndexFileName is the reserved name of the generated launcher page.
// Files with this exact name are never collected as entries.
const IndexFileName = "index.html"

// MarkupSuffix is the exact (case-sensitive) suffix a file must carry
// to qualify as an entry.
const MarkupSuffix = ".html"

// Entry represents one discovered markup file.
type Entry struct {
	Href      string // path to the file, relative to where the index is written
	Subfolder string // immediate parent dir relative to the scanned root, "" at root
}

// Card is the rendered view of an Entry in the launcher grid.
type Card struct {
	DisplayName string
	Icon        string
	Href        string
}

// DisplayName computes the human-readable card title for an entry:
// the uppercased filename stem with dashes replaced by spaces, prefixed
// with the uppercased subfolder when the entry sits below the root.
func (e Entry) DisplayName() string {
	stem := strings.TrimSuffix(path.Base(e.Href), MarkupSuffix)
	name := strings.ToUpper(strings.ReplaceAll(stem, "-", " "))
	if e.Subfolder == "" {
		return name
	}
	return strings.ToUpper(e.Subfolder) + " / " + name
}

// BuildCard derives the render view for a single entry.
func BuildCard(e Entry) Card {
	name := e.DisplayName()
	return Card{
		DisplayName: name,
		Icon:        IconFor(name),
		Href:        e.Href,
	}
}

// BuildCards derives cards for all entries, preserving input order.
func BuildCards(entries []Entry) []Card {
	cards := make([]Card, len(entries))
	for i, e := range entries {
		cards[i] = BuildCard(e)
	}
	return cards
}

// SortEntries orders entries case-insensitively by href. The sort is
// stable so ties keep their traversal order and re-runs against an
// unchanged tree produce identical output.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Href) < strings.ToLower(entries[j].Href)
	})
}
