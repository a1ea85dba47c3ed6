package update

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskdesk/internal/model"
)

// startCmd counts a service call as in flight and starts the spinner
// alongside it.
func (m *Model) startCmd(cmd tea.Cmd) tea.Cmd {
	m.inflight++
	if m.inflight == 1 {
		return tea.Batch(cmd, m.syncSpinner.Tick)
	}
	return cmd
}

func (m *Model) finishCmd() {
	if m.inflight > 0 {
		m.inflight--
	}
}

func (m Model) checkUserCmd(email string) tea.Cmd {
	auth := m.auth
	return func() tea.Msg {
		res, err := auth.CheckUser(context.Background(), email)
		return UserCheckedMsg{Email: email, Result: res, Err: err}
	}
}

func (m Model) createUserCmd(email string) tea.Cmd {
	auth := m.auth
	return func() tea.Msg {
		u, err := auth.CreateUser(context.Background(), email)
		return UserCreatedMsg{User: u, Err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	auth := m.auth
	return func() tea.Msg {
		auth.Logout(context.Background())
		return LoggedOutMsg{}
	}
}

func (m Model) loadTasksCmd() tea.Cmd {
	svc := m.tasks
	return func() tea.Msg {
		return TasksLoadedMsg{Err: svc.Load(context.Background())}
	}
}

func (m Model) createTaskCmd(title, description string) tea.Cmd {
	svc := m.tasks
	return func() tea.Msg {
		t, err := svc.Create(context.Background(), title, description)
		return TaskCreatedMsg{Task: t, Err: err}
	}
}

func (m Model) toggleTaskCmd(id string, completed bool) tea.Cmd {
	svc := m.tasks
	return func() tea.Msg {
		t, err := svc.ToggleCompletion(context.Background(), id, completed)
		return TaskUpdatedMsg{Task: t, Err: err}
	}
}

func (m Model) editTaskCmd(id, title, description string) tea.Cmd {
	svc := m.tasks
	return func() tea.Msg {
		t, err := svc.Edit(context.Background(), id, title, description)
		return TaskUpdatedMsg{Task: t, Err: err}
	}
}

func (m Model) deleteTaskCmd(id string) tea.Cmd {
	svc := m.tasks
	return func() tea.Msg {
		return TaskDeletedMsg{ID: id, Err: svc.Delete(context.Background(), id)}
	}
}

// toggleTarget returns the completion value a toggle of t should send.
func toggleTarget(t model.Task) bool {
	return !t.Completed
}
