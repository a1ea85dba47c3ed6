package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskdesk/internal/model"
	"github.com/sandeepkv93/taskdesk/internal/views"
)

func (m *Model) openEditDialog(t model.Task) {
	m.Dialog = DialogEdit
	m.editID = t.ID
	m.editErr = ""
	m.editTitle.SetValue(t.Title)
	m.editDesc.SetValue(t.Description)
	m.editDesc.Blur()
	m.editTitle.Focus()
}

func (m *Model) closeDialog() {
	m.Dialog = DialogNone
	m.editID = ""
	m.deleteID = ""
	m.editErr = ""
	m.editTitle.Blur()
	m.editDesc.Blur()
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeDialog()
		return m, nil
	case "tab", "shift+tab":
		if m.editTitle.Focused() {
			m.editTitle.Blur()
			m.editDesc.Focus()
		} else {
			m.editDesc.Blur()
			m.editTitle.Focus()
		}
		return m, nil
	case "enter", "ctrl+s":
		title := strings.TrimSpace(m.editTitle.Value())
		desc := strings.TrimSpace(m.editDesc.Value())
		if err := model.ValidateTaskInput(title, desc); err != nil {
			m.editErr = err.Error()
			return m, nil
		}
		m.editErr = ""
		return m, m.startCmd(m.editTaskCmd(m.editID, title, desc))
	}

	var cmd tea.Cmd
	if m.editTitle.Focused() {
		m.editTitle, cmd = m.editTitle.Update(msg)
	} else {
		m.editDesc, cmd = m.editDesc.Update(msg)
	}
	return m, cmd
}

func (m Model) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		id := m.deleteID
		m.closeDialog()
		return m, m.startCmd(m.deleteTaskCmd(id))
	case "n", "N", "esc":
		m.closeDialog()
	}
	return m, nil
}

func (m Model) renderDialog() string {
	switch m.Dialog {
	case DialogEdit:
		return views.RenderEditDialog(views.EditDialogData{
			TitleView: m.editTitle.View(),
			DescView:  m.editDesc.View(),
			ErrorText: m.editErr,
		})
	case DialogDelete:
		title := m.deleteID
		if t, ok := m.items.Get(m.deleteID); ok {
			title = t.Title
		}
		return views.RenderDeleteConfirm(title)
	default:
		return ""
	}
}
