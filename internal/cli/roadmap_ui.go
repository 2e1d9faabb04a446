package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nolimit-nexus/nexus/internal/cli/formatter"
	"github.com/nolimit-nexus/nexus/internal/domain"
	"github.com/spf13/cobra"
)

type roadmapKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func (k roadmapKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

func (k roadmapKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Toggle, k.Quit}}
}

var roadmapKeys = roadmapKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// roadmapModel is the interactive roadmap browser. Toggles write through the
// session service immediately, so quitting at any point loses nothing.
type roadmapModel struct {
	app    *App
	tasks  []domain.Task
	cursor int
	keys   roadmapKeyMap
	help   help.Model
	err    error
}

func newRoadmapModel(app *App) roadmapModel {
	return roadmapModel{
		app:   app,
		tasks: app.Session.State(context.Background()).Roadmap.Tasks,
		keys:  roadmapKeys,
		help:  help.New(),
	}
}

func (m roadmapModel) Init() tea.Cmd {
	return nil
}

func (m roadmapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if m.cursor < len(m.tasks) {
			task, err := m.app.Session.ToggleTask(context.Background(), m.tasks[m.cursor].ID)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.tasks[m.cursor].Done = task.Done
			m.err = nil
		}
	}
	return m, nil
}

func (m roadmapModel) View() string {
	if len(m.tasks) == 0 {
		return formatter.StyleDim.Render(m.app.Dict.T("dashboard.no_plan")) + "\n"
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(m.app.Dict.T("dashboard.roadmap")) + "\n\n")

	var lastPhase domain.Phase
	for i, t := range m.tasks {
		if t.Phase != lastPhase {
			b.WriteString(formatter.PhaseColor(t.Phase).Bold(true).Render(
				fmt.Sprintf("%s · %s", t.Phase, domain.PhaseLabel(t.Phase))) + "\n")
			lastPhase = t.Phase
		}

		cursor := "  "
		title := formatter.StyleFg.Render(t.Title)
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("> ")
			title = formatter.StyleBold.Render(t.Title)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, formatter.CheckMark(t.Done), title))
	}

	done, total := domain.TaskProgress(m.tasks)
	b.WriteString("\n" + formatter.RenderProgress(formatter.Ratio(done, total), 20) +
		"  " + m.app.Dict.Tf("roadmap.progress", done, total) + "\n")

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render(m.err.Error()) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

func newRoadmapUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Browse and toggle tasks interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Interactive {
				return fmt.Errorf("roadmap ui needs an interactive terminal")
			}
			_, err := tea.NewProgram(newRoadmapModel(app)).Run()
			return err
		},
	}
}
