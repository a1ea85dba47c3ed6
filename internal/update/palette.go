package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskdesk/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m *Model) closePalette() {
	m.Palette = CommandPaletteState{}
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var next tea.Cmd
	toggle := func(id string, completed bool) (commands.Result, error) {
		if _, ok := m.items.Get(id); !ok {
			return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task with id %s", id)}
		}
		next = m.startCmd(m.toggleTaskCmd(id, completed))
		return commands.Result{Message: fmt.Sprintf("updating %s", id)}, nil
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			next = m.startCmd(m.createTaskCmd(a.Title, a.Description))
			return commands.Result{Message: fmt.Sprintf("adding task: %s", a.Title)}, nil
		},
		Search: func(s commands.SearchArgs) (commands.Result, error) {
			m.applySearch(s.Term)
			if s.Term == "" {
				return commands.Result{Message: "search cleared"}, nil
			}
			return commands.Result{Message: fmt.Sprintf("search: %s", s.Term)}, nil
		},
		Filter: func(f commands.FilterArgs) (commands.Result, error) {
			m.applyFilter(f.Filter)
			return commands.Result{Message: fmt.Sprintf("filter: %s", f.Filter)}, nil
		},
		Done: func(t commands.TargetArgs) (commands.Result, error) {
			return toggle(t.ID, true)
		},
		Undo: func(t commands.TargetArgs) (commands.Result, error) {
			return toggle(t.ID, false)
		},
		Remove: func(t commands.TargetArgs) (commands.Result, error) {
			if _, ok := m.items.Get(t.ID); !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task with id %s", t.ID)}
			}
			next = m.startCmd(m.deleteTaskCmd(t.ID))
			return commands.Result{Message: fmt.Sprintf("deleting %s", t.ID)}, nil
		},
		Reload: func() (commands.Result, error) {
			next = m.startCmd(m.loadTasksCmd())
			return commands.Result{Message: "reloading"}, nil
		},
		Logout: func() (commands.Result, error) {
			next = m.startCmd(m.logoutCmd())
			return commands.Result{Message: "logging out"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.logger.Debug("TUI: palette command executed",
		"command", string(cmd.Type))
	m.Status = StatusBar{Text: res.Message}
	return m, next
}
