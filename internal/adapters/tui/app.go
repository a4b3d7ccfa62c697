package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"launchpad/internal/adapters/tui/views"
	"launchpad/internal/ports"
)

// App is the main TUI application model
type App struct {
	repo    ports.SiteRepository
	preview *views.PreviewModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(repo ports.SiteRepository) *App {
	return &App{
		repo:    repo,
		preview: views.NewPreviewModel(repo),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.preview.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = msg.Width
		a.height = msg.Height
		a.preview.SetSize(msg.Width, msg.Height)
		return a, nil
	}

	_, cmd := a.preview.Update(msg)
	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	return a.preview.View()
}
