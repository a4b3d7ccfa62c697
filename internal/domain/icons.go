package domain

import "strings"

// DefaultIcon is used when no rule matches a display name.
const DefaultIcon = "📄"

// iconRule pairs a predicate with the glyph it selects. Rules are
// evaluated in order and the first match wins, so the table below is a
// precedence list, not a map.
type iconRule struct {
	matches func(name string) bool
	glyph   string
}

func contains(keyword string) func(string) bool {
	return func(name string) bool {
		return strings.Contains(name, keyword)
	}
}

func containsAny(keywords ...string) func(string) bool {
	return func(name string) bool {
		for _, k := range keywords {
			if strings.Contains(name, k) {
				return true
			}
		}
		return false
	}
}

var iconRules = []iconRule{
	{contains("NBA"), "🏀"},
	{contains("NFL"), "🏈"},
	{contains("MLB"), "⚾"},
	// WEATHER alone selects the weather glyph, with or without a map page.
	{contains("WEATHER"), "🌦️"},
	{containsAny("GAME", "FLIP", "QWINGO"), "🎲"},
	{contains("LOGOMAP"), "🗺️"},
	{contains("PHOTO"), "📸"},
	{contains("PANEL"), "🖥️"},
	{contains("API"), "🔌"},
	{contains("AIRPORT"), "✈️"},
	{contains("RECEIPT"), "🧾"},
	{contains("SPORTS"), "🏆"},
}

// IconFor selects the glyph for an uppercased display name.
func IconFor(displayName string) string {
	for _, rule := range iconRules {
		if rule.matches(displayName) {
			return rule.glyph
		}
	}
	return DefaultIcon
}
