package update

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskdesk/internal/api"
	"github.com/sandeepkv93/taskdesk/internal/service"
	"github.com/sandeepkv93/taskdesk/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.CurrentScreen() == ScreenTasks {
		return tea.Batch(m.loadTasksCmd(), m.syncSpinner.Tick)
	}
	return textinput.Blink
}

// Update handles msg and, when the status bar text changed, schedules it to
// be cleared after statusTTL.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.Status
	next, cmd := m.update(msg)
	nm := next.(Model)
	if nm.Status == before || nm.Status.Text == "" || nm.Quitting || nm.statusTTL <= 0 {
		return nm, cmd
	}
	nm.statusSeq++
	return nm, tea.Batch(cmd, clearStatusAfter(nm.statusSeq, nm.statusTTL))
}

func clearStatusAfter(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return ClearStatusMsg{Seq: seq} })
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.CurrentScreen() == ScreenLogin {
			return m.handleLoginKey(typed)
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		switch m.Dialog {
		case DialogEdit:
			return m.handleEditKey(typed)
		case DialogDelete:
			return m.handleDeleteKey(typed)
		}
		return m.handleTasksKey(typed)
	case spinner.TickMsg:
		if m.Loading() {
			var cmd tea.Cmd
			m.syncSpinner, cmd = m.syncSpinner.Update(typed)
			return m, cmd
		}
		return m, nil
	case ClearStatusMsg:
		// A newer status has its own pending clear.
		if typed.Seq == m.statusSeq {
			m.Status = StatusBar{}
		}
		return m, nil
	case UserCheckedMsg:
		m.finishCmd()
		return m.onUserChecked(typed)
	case UserCreatedMsg:
		m.finishCmd()
		return m.onUserCreated(typed)
	case LoggedOutMsg:
		m.finishCmd()
		m.resetTasksScreen()
		m.emailInput.SetValue("")
		m.emailInput.Focus()
		m.Status = StatusBar{Text: "logged out"}
		return m, nil
	case TasksLoadedMsg:
		m.finishCmd()
		if typed.Err != nil {
			m.setError(typed.Err)
			return m, nil
		}
		m.clampCursor()
		m.Status = StatusBar{Text: fmt.Sprintf("loaded %d task(s)", m.items.Len())}
		return m, nil
	case TaskCreatedMsg:
		m.finishCmd()
		if typed.Err != nil {
			m.setError(typed.Err)
			return m, nil
		}
		m.titleInput.SetValue("")
		m.descArea.Reset()
		m.Status = StatusBar{Text: fmt.Sprintf("created: %s", typed.Task.Title)}
		return m, nil
	case TaskUpdatedMsg:
		m.finishCmd()
		if typed.Err != nil {
			if m.Dialog == DialogEdit {
				m.editErr = errorText(typed.Err)
			}
			m.setError(typed.Err)
			return m, nil
		}
		if m.Dialog == DialogEdit && m.editID == typed.Task.ID {
			m.closeDialog()
		}
		m.clampCursor()
		m.Status = StatusBar{Text: fmt.Sprintf("updated: %s", typed.Task.Title)}
		return m, nil
	case TaskDeletedMsg:
		m.finishCmd()
		if typed.Err != nil {
			m.setError(typed.Err)
			return m, nil
		}
		m.clampCursor()
		m.Status = StatusBar{Text: "task deleted"}
		return m, nil
	}
	return m, nil
}

// setError records err in the status bar. Service failures show their
// fixed message, followed by the server message when the backend answered
// or could not be reached.
func (m *Model) setError(err error) {
	m.LastError = err
	m.Status = StatusBar{Text: errorText(err), IsError: true}
	m.logger.Debug("TUI: operation failed",
		"status", api.StatusOf(err),
		"error", err.Error())
}

func errorText(err error) string {
	var opErr *service.OperationError
	if !errors.As(err, &opErr) {
		return err.Error()
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return opErr.Message + ": " + apiErr.Message
	}
	return opErr.Message
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	body := ""
	dialog := ""
	screen := m.CurrentScreen()
	switch screen {
	case ScreenLogin:
		body = m.renderLoginView()
	case ScreenTasks:
		body = m.renderTasksView()
		dialog = m.renderDialog()
		if dialog == "" {
			dialog = views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
		}
	}
	if m.HelpVisible {
		help := m.renderHelpView()
		if dialog != "" {
			dialog += "\n\n" + help
		} else {
			dialog = help
		}
	}

	status := m.statusLine()
	header := fmt.Sprintf("taskdesk | %s", screen)
	if email := m.session.Email(); email != "" {
		header += " | " + email
	}
	return views.RenderApp(views.AppData{
		Header:        header,
		Body:          body,
		StatusLine:    status.Text,
		StatusIsError: status.IsError,
		Dialog:        dialog,
		Footer:        m.footer(),
	})
}

// statusLine prefers the last status message and falls back to whichever
// error slot is set.
func (m Model) statusLine() StatusBar {
	if m.Status.Text != "" {
		return m.Status
	}
	if msg, ok := m.session.Error(); ok {
		return StatusBar{Text: msg, IsError: true}
	}
	if msg, ok := m.items.Error(); ok {
		return StatusBar{Text: msg, IsError: true}
	}
	return StatusBar{}
}

func (m Model) footer() string {
	if m.CurrentScreen() == ScreenLogin {
		return "keys: enter continue | ctrl+c quit"
	}
	return fmt.Sprintf("keys: n new | %s search | 1/2/3 filter | space toggle | e edit | d delete | r reload | L logout | %s cmd | %s help | %s quit",
		m.Keys.Search, m.Keys.Palette, m.Keys.Help, m.Keys.Quit)
}
