// Package tui implements the interactive tracking session: a single input
// line with as-you-type preview above the categorized note tables.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kaepora/tracknote/internal/render"
	"github.com/kaepora/tracknote/pkg/core"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// Model drives one interactive tracking session over a shared Tracker.
type Model struct {
	tracker *core.Tracker
	input   textinput.Model
	preview core.Record
}

// New creates the session model. The tracker is owned by the caller.
func New(tracker *core.Tracker) Model {
	ti := textinput.New()
	ti.Placeholder = `note, e.g. "deku ks" or "del gv barren"`
	ti.Prompt = "> "
	ti.Focus()

	return Model{
		tracker: tracker,
		input:   ti,
		preview: core.Record{Category: core.CategoryNone},
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if line := strings.TrimSpace(m.input.Value()); line != "" {
				m.tracker.Submit(line)
			}
			m.input.SetValue("")
			m.preview = core.Record{Category: core.CategoryNone}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.preview = m.tracker.Preview(m.input.Value())
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Items"))
	b.WriteString("\n")
	b.WriteString(render.Group("", m.tracker.Records(core.CategoryItemAtLocation)))
	b.WriteString(render.Group("Barren Items", m.tracker.Records(core.CategoryBarrenItem)))
	b.WriteString(render.Group("Skull Rewards", m.tracker.Records(core.CategorySkullReward)))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Locations"))
	b.WriteString("\n")
	b.WriteString(render.Group("", m.tracker.Records(core.CategoryGoodLocation)))
	b.WriteString(render.Group("Barren Locations", m.tracker.Records(core.CategoryBadLocation)))

	b.WriteString("\n")
	if row := render.Row(m.preview); row != "" {
		b.WriteString(row)
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString("enter: submit · del <note>: remove · esc: quit")
	return b.String()
}
