package domain

import (
	"fmt"
	"html"
	"strings"
)

// pageShell wraps the card grid in the fixed launcher layout. The two
// %s verbs take the page count label and the concatenated cards.
const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Launcher</title>
<script src="https://cdn.tailwindcss.com"></script>
<link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600;800&display=swap" rel="stylesheet">
<style>body { font-family: 'Inter', sans-serif; }</style>
</head>
<body class="bg-slate-900 text-slate-100 min-h-screen">
<header class="max-w-5xl mx-auto px-6 pt-12 pb-8">
<h1 class="text-3xl font-extrabold tracking-tight">Launcher</h1>
<p class="text-slate-400 mt-1">%s</p>
</header>
<main class="max-w-5xl mx-auto px-6 pb-16">
<div class="grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-4">
%s</div>
</main>
</body>
</html>
`

const cardTemplate = `<a href="%s" class="block rounded-xl bg-slate-800 hover:bg-slate-700 transition p-5 shadow">
<span class="text-2xl">%s</span>
<span class="block mt-2 font-semibold">%s</span>
</a>
`

// RenderPage assembles the complete launcher page from the card list.
// Pure text generation: the same cards always yield byte-identical
// output. Card order is taken as given; sorting happened at collection.
func RenderPage(cards []Card) string {
	var grid strings.Builder
	for _, c := range cards {
		fmt.Fprintf(&grid, cardTemplate,
			html.EscapeString(c.Href),
			c.Icon,
			html.EscapeString(c.DisplayName),
		)
	}
	return fmt.Sprintf(pageShell, countLabel(len(cards)), grid.String())
}

func countLabel(n int) string {
	if n == 1 {
		return "1 page"
	}
	return fmt.Sprintf("%d pages", n)
}
