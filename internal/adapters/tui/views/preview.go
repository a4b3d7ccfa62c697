package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"launchpad/internal/adapters/tui/styles"
	"launchpad/internal/application/commands"
	"launchpad/internal/domain"
	"launchpad/internal/ports"
)

// PreviewKeyMap defines key bindings for the preview view
type PreviewKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Filter   key.Binding
	Copy     key.Binding
	Generate key.Binding
	Reload   key.Binding
	Cancel   key.Binding
	Quit     key.Binding
}

var PreviewKeys = PreviewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "down"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy href"),
	),
	Generate: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "generate"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rescan"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Messages

type cardsLoadedMsg struct{ cards []domain.Card }

type loadErrMsg struct{ err error }

type generatedMsg struct{ result *commands.GenerateResult }

type generateErrMsg struct{ err error }

// PreviewModel shows the cards the generator would emit and lets the
// user generate the index from the same view.
type PreviewModel struct {
	repo ports.SiteRepository

	cards   []domain.Card
	visible []domain.Card
	cursor  int

	filter    textinput.Model
	filtering bool

	message string
	isError bool

	width  int
	height int
}

// NewPreviewModel creates a new preview view model
func NewPreviewModel(repo ports.SiteRepository) *PreviewModel {
	filter := textinput.New()
	filter.Placeholder = "Filter..."

	return &PreviewModel{
		repo:   repo,
		filter: filter,
	}
}

// Init loads the card list
func (m *PreviewModel) Init() tea.Cmd {
	return m.load()
}

// SetSize updates the view dimensions
func (m *PreviewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *PreviewModel) load() tea.Cmd {
	return func() tea.Msg {
		cards, err := commands.NewScanCommand(m.repo).Execute(context.Background())
		if err != nil {
			return loadErrMsg{err: err}
		}
		return cardsLoadedMsg{cards: cards}
	}
}

func (m *PreviewModel) generate() tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewGenerateCommand(m.repo, nil).Execute(context.Background())
		if err != nil {
			return generateErrMsg{err: err}
		}
		return generatedMsg{result: result}
	}
}

// FilterCards returns the cards whose display name or href contains the
// query, case-insensitively. An empty query returns all cards.
func FilterCards(cards []domain.Card, query string) []domain.Card {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return cards
	}

	var out []domain.Card
	for _, c := range cards {
		if strings.Contains(strings.ToLower(c.DisplayName), query) ||
			strings.Contains(strings.ToLower(c.Href), query) {
			out = append(out, c)
		}
	}
	return out
}

func (m *PreviewModel) applyFilter() {
	m.visible = FilterCards(m.cards, m.filter.Value())
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles messages for the preview view
func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cardsLoadedMsg:
		m.cards = msg.cards
		m.applyFilter()
		return m, nil

	case loadErrMsg:
		m.message = msg.err.Error()
		m.isError = true
		return m, nil

	case generatedMsg:
		m.message = fmt.Sprintf("Generated %d pages → %s", msg.result.Count, msg.result.OutputPath)
		m.isError = false
		return m, nil

	case generateErrMsg:
		m.message = msg.err.Error()
		m.isError = true
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			switch {
			case key.Matches(msg, PreviewKeys.Cancel):
				m.filtering = false
				m.filter.Blur()
				m.filter.SetValue("")
				m.applyFilter()
				return m, nil
			case msg.Type == tea.KeyEnter:
				m.filtering = false
				m.filter.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter()
			return m, cmd
		}

		switch {
		case key.Matches(msg, PreviewKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, PreviewKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, PreviewKeys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, PreviewKeys.Filter):
			m.filtering = true
			m.filter.Focus()
			return m, textinput.Blink

		case key.Matches(msg, PreviewKeys.Copy):
			if m.cursor >= 0 && m.cursor < len(m.visible) {
				href := m.visible[m.cursor].Href
				clipboard.WriteAll(href)
				m.message = fmt.Sprintf("Copied %s", href)
				m.isError = false
			}
			return m, nil

		case key.Matches(msg, PreviewKeys.Generate):
			return m, m.generate()

		case key.Matches(msg, PreviewKeys.Reload):
			m.message = ""
			return m, m.load()
		}
	}

	return m, nil
}

// View renders the preview view
func (m *PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Launchpad"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.repo.SourceDir()))
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(styles.MutedText.Render("No pages found."))
		b.WriteString("\n")
	}

	for i, c := range m.visible {
		line := fmt.Sprintf("%s %s  %s",
			styles.CardIcon.Render(c.Icon),
			styles.CardName.Render(c.DisplayName),
			styles.CardHref.Render(c.Href),
		)
		if i == m.cursor {
			line = styles.CardSelected.Render(fmt.Sprintf("%s %s  %s", c.Icon, c.DisplayName, c.Href))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d of %d pages", len(m.visible), len(m.cards))))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.message, m.isError))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		PreviewKeys.Up, PreviewKeys.Down, PreviewKeys.Filter,
		PreviewKeys.Copy, PreviewKeys.Generate, PreviewKeys.Reload, PreviewKeys.Quit,
	))

	return styles.App.Render(b.String())
}
