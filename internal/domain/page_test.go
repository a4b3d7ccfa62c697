package domain

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parsePage(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("failed to parse generated page: %v", err)
	}
	return doc
}

func TestRenderPage_EmptyGrid(t *testing.T) {
	page := RenderPage(nil)
	doc := parsePage(t, page)

	if n := doc.Find("main a").Length(); n != 0 {
		t.Errorf("expected 0 cards, got %d", n)
	}
	if !strings.Contains(page, "0 pages") {
		t.Error("page does not report a count of 0")
	}
}

func TestRenderPage_OneCardPerEntry(t *testing.T) {
	cards := BuildCards([]Entry{
		{Href: "apps/nba-highlights.html", Subfolder: ""},
		{Href: "apps/game/flip.html", Subfolder: "game"},
		{Href: "apps/weather/today.html", Subfolder: "weather"},
	})

	doc := parsePage(t, RenderPage(cards))

	anchors := doc.Find("main a")
	if anchors.Length() != len(cards) {
		t.Fatalf("expected %d cards, got %d", len(cards), anchors.Length())
	}

	// Document order must match input order.
	anchors.Each(func(i int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			t.Errorf("card %d has no href", i)
			return
		}
		if href != cards[i].Href {
			t.Errorf("card %d: expected href %s, got %s", i, cards[i].Href, href)
		}
		if !strings.Contains(s.Text(), cards[i].DisplayName) {
			t.Errorf("card %d: text %q missing display name %q", i, s.Text(), cards[i].DisplayName)
		}
		if !strings.Contains(s.Text(), cards[i].Icon) {
			t.Errorf("card %d: text %q missing icon %q", i, s.Text(), cards[i].Icon)
		}
	})
}

func TestRenderPage_ReportsCount(t *testing.T) {
	one := RenderPage(BuildCards([]Entry{{Href: "a.html"}}))
	if !strings.Contains(one, "1 page") {
		t.Error("single-entry page does not report '1 page'")
	}

	three := RenderPage(BuildCards([]Entry{
		{Href: "a.html"}, {Href: "b.html"}, {Href: "c.html"},
	}))
	if !strings.Contains(three, "3 pages") {
		t.Error("three-entry page does not report '3 pages'")
	}
}

func TestRenderPage_Deterministic(t *testing.T) {
	cards := BuildCards([]Entry{
		{Href: "panel/admin.html", Subfolder: "panel"},
		{Href: "receipts.html"},
	})

	first := RenderPage(cards)
	second := RenderPage(cards)

	if first != second {
		t.Error("rendering the same cards twice produced different output")
	}
}

func TestRenderPage_EscapesNames(t *testing.T) {
	cards := []Card{{DisplayName: "A <B> & C", Icon: DefaultIcon, Href: `x&y.html`}}
	page := RenderPage(cards)

	if strings.Contains(page, "<B>") {
		t.Error("display name was not HTML-escaped")
	}

	doc := parsePage(t, page)
	href, _ := doc.Find("main a").First().Attr("href")
	if href != "x&y.html" {
		t.Errorf("escaped href did not round-trip, got %q", href)
	}
}

func TestRenderPage_FixedExternalResources(t *testing.T) {
	doc := parsePage(t, RenderPage(nil))

	if doc.Find(`script[src="https://cdn.tailwindcss.com"]`).Length() != 1 {
		t.Error("page is missing the stylesheet engine script tag")
	}
	if doc.Find(`link[href^="https://fonts.googleapis.com"]`).Length() != 1 {
		t.Error("page is missing the web font link tag")
	}
}
