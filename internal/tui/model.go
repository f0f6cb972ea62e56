// Package tui previews the clock in a terminal, letter by letter.
package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/wordclock/internal/display"
	"github.com/garrettladley/wordclock/internal/gate"
	"github.com/garrettladley/wordclock/internal/tui/components/footer"
	"github.com/garrettladley/wordclock/internal/tui/components/status"
	"github.com/garrettladley/wordclock/internal/tui/theme"
)

var _ tea.Model = (*Model)(nil)

type Model struct {
	ready          bool
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	frame          display.Frame
	deps           Deps
}

func New(deps Deps) Model {
	return Model{
		theme: theme.New(),
		deps:  deps,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case FrameMsg:
		m.frame = msg.Frame
	}

	return m, nil
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.BackgroundColor = m.theme.Background()

	if !m.ready {
		return view
	}

	plate := lipgloss.Place(
		m.viewportWidth,
		max(m.viewportHeight-1, 0),
		lipgloss.Center,
		lipgloss.Center,
		m.FaceplateView(),
	)
	foot := footer.New(m.StatusView(), m.viewportWidth).Render()

	view.SetContent(lipgloss.JoinVertical(lipgloss.Left, plate, foot))
	return view
}

func (m *Model) StatusView() string {
	capability := gate.Disabled
	if m.deps.Gate != nil {
		capability = m.deps.Gate.Capability()
	}
	return status.Indicator{Capability: capability}.Render()
}
