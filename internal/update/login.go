package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskdesk/internal/model"
	"github.com/sandeepkv93/taskdesk/internal/service"
	"github.com/sandeepkv93/taskdesk/internal/views"
)

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.CreatePrompt {
		switch msg.String() {
		case "y", "Y", "enter":
			m.CreatePrompt = false
			m.Status = StatusBar{Text: "creating account"}
			return m, m.startCmd(m.createUserCmd(m.PendingEmail))
		case "n", "N", "esc":
			m.CreatePrompt = false
			m.PendingEmail = ""
			m.Status = StatusBar{Text: "account creation cancelled"}
		}
		return m, nil
	}

	if msg.String() == "enter" {
		if m.Loading() {
			return m, nil
		}
		email := strings.TrimSpace(m.emailInput.Value())
		if err := model.ValidateEmail(email); err != nil {
			m.Status = StatusBar{Text: "enter a valid email address", IsError: true}
			return m, nil
		}
		m.Status = StatusBar{}
		return m, m.startCmd(m.checkUserCmd(email))
	}

	var cmd tea.Cmd
	m.emailInput, cmd = m.emailInput.Update(msg)
	return m, cmd
}

func (m Model) onUserChecked(msg UserCheckedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.setError(msg.Err)
		return m, nil
	}
	if !msg.Result.Exists {
		m.CreatePrompt = true
		m.PendingEmail = msg.Email
		m.Status = StatusBar{Text: fmt.Sprintf("no account for %s", msg.Email)}
		return m, nil
	}
	if !m.session.IsAuthenticated() {
		m.setError(&service.OperationError{Message: service.MsgCheckUser, Err: service.ErrNotAuthenticated})
		return m, nil
	}
	return m.enterTasksScreen()
}

func (m Model) onUserCreated(msg UserCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.setError(msg.Err)
		return m, nil
	}
	m.PendingEmail = ""
	return m.enterTasksScreen()
}

func (m Model) enterTasksScreen() (tea.Model, tea.Cmd) {
	m.emailInput.Blur()
	m.resetTasksScreen()
	m.Status = StatusBar{Text: fmt.Sprintf("signed in as %s", m.session.Email())}
	return m, m.startCmd(m.loadTasksCmd())
}

func (m Model) renderLoginView() string {
	return views.RenderLoginScreen(views.LoginData{
		EmailView:    m.emailInput.View(),
		Email:        m.emailOnScreen(),
		Loading:      m.Loading(),
		Spinner:      m.syncSpinner.View(),
		CreatePrompt: m.CreatePrompt,
	})
}

func (m Model) emailOnScreen() string {
	if m.PendingEmail != "" {
		return m.PendingEmail
	}
	return strings.TrimSpace(m.emailInput.Value())
}
