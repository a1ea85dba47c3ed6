package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskdesk/internal/model"
	"github.com/sandeepkv93/taskdesk/internal/views"
)

const timeLayout = "2006-01-02 15:04"

func (m Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Focus {
	case FieldTitle, FieldDescription:
		return m.handleFormKey(msg)
	case FieldSearch:
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.Palette:
		m.Palette = CommandPaletteState{Active: true}
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		return m, nil
	case m.Keys.Search:
		m.Focus = FieldSearch
		m.searchInput.Focus()
		return m, nil
	case "n", "tab":
		m.focusField(FieldTitle)
		return m, nil
	case "1":
		m.applyFilter(model.StatusAll)
	case "2":
		m.applyFilter(model.StatusPending)
	case "3":
		m.applyFilter(model.StatusCompleted)
	case "left", "h":
		m.applyFilter(cycleFilter(m.items.StatusFilter(), -1))
	case "right", "l":
		m.applyFilter(cycleFilter(m.items.StatusFilter(), 1))
	case "j", "down":
		if m.Cursor < len(m.items.Visible())-1 {
			m.Cursor++
		}
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case " ":
		if t, ok := m.SelectedTask(); ok {
			return m, m.startCmd(m.toggleTaskCmd(t.ID, toggleTarget(t)))
		}
	case "e":
		if t, ok := m.SelectedTask(); ok {
			m.openEditDialog(t)
		}
	case "d":
		if t, ok := m.SelectedTask(); ok {
			m.Dialog = DialogDelete
			m.deleteID = t.ID
		}
	case "r":
		return m, m.startCmd(m.loadTasksCmd())
	case "L":
		return m, m.startCmd(m.logoutCmd())
	case "esc":
		m.Status = StatusBar{}
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focusField(FieldList)
		return m, nil
	case "tab", "shift+tab":
		if m.Focus == FieldTitle {
			m.focusField(FieldDescription)
		} else {
			m.focusField(FieldTitle)
		}
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.titleInput.Value())
		desc := strings.TrimSpace(m.descArea.Value())
		if err := model.ValidateTaskInput(title, desc); err != nil {
			m.setError(err)
			return m, nil
		}
		m.focusField(FieldList)
		return m, m.startCmd(m.createTaskCmd(title, desc))
	}

	var cmd tea.Cmd
	if m.Focus == FieldTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.descArea, cmd = m.descArea.Update(msg)
	}
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.focusField(FieldList)
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.items.SetSearchTerm(m.searchInput.Value())
	m.clampCursor()
	return m, cmd
}

func (m *Model) focusField(f Field) {
	m.Focus = f
	m.titleInput.Blur()
	m.descArea.Blur()
	m.searchInput.Blur()
	switch f {
	case FieldTitle:
		m.titleInput.Focus()
	case FieldDescription:
		m.descArea.Focus()
	case FieldSearch:
		m.searchInput.Focus()
	}
}

func (m *Model) applyFilter(f model.StatusFilter) {
	m.items.SetStatusFilter(f)
	m.Cursor = 0
}

func (m *Model) applySearch(term string) {
	m.searchInput.SetValue(term)
	m.items.SetSearchTerm(term)
	m.clampCursor()
}

func cycleFilter(current model.StatusFilter, step int) model.StatusFilter {
	n := len(model.StatusFilters)
	for i, f := range model.StatusFilters {
		if f == current {
			return model.StatusFilters[(i+step+n)%n]
		}
	}
	return model.StatusAll
}

// resetTasksScreen drops view state that belongs to the previous session.
func (m *Model) resetTasksScreen() {
	m.Cursor = 0
	m.Dialog = DialogNone
	m.Palette = CommandPaletteState{}
	m.titleInput.SetValue("")
	m.descArea.Reset()
	m.searchInput.SetValue("")
	m.focusField(FieldList)
	if !m.session.IsAuthenticated() {
		m.items.ReplaceAll(nil)
		m.items.SetSearchTerm("")
		m.items.SetStatusFilter(model.StatusAll)
	}
}

func (m Model) renderTasksView() string {
	counts := m.items.Counts()
	active := m.items.StatusFilter()
	tabs := []views.FilterTabData{
		{Label: string(model.StatusAll), Count: counts.All, Active: active == model.StatusAll},
		{Label: string(model.StatusPending), Count: counts.Pending, Active: active == model.StatusPending},
		{Label: string(model.StatusCompleted), Count: counts.Completed, Active: active == model.StatusCompleted},
	}

	visible := m.items.Visible()
	rows := make([]views.TaskRowData, 0, len(visible))
	for i, t := range visible {
		rows = append(rows, views.TaskRowData{
			ID:        t.ID,
			Title:     t.Title,
			Completed: t.Completed,
			CreatedAt: t.CreatedAt.Local().Format(timeLayout),
			Selected:  i == m.Cursor,
		})
	}

	var detail *views.TaskDetailData
	if t, ok := m.SelectedTask(); ok {
		detail = &views.TaskDetailData{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			CreatedAt:   t.CreatedAt.Local().Format(timeLayout),
			Width:       m.width - 8,
		}
		if t.UpdatedAt != nil {
			detail.UpdatedAt = t.UpdatedAt.Local().Format(timeLayout)
		}
	}

	return views.RenderTasksScreen(views.TasksScreenData{
		UserEmail:     m.session.Email(),
		TitleView:     m.titleInput.View(),
		DescView:      m.descArea.View(),
		SearchView:    m.searchInput.View(),
		Tabs:          tabs,
		Rows:          rows,
		Loading:       m.Loading(),
		Spinner:       m.syncSpinner.View(),
		SearchTerm:    m.items.SearchTerm(),
		Detail:        detail,
		FormFocused:   m.Focus == FieldTitle || m.Focus == FieldDescription,
		SearchFocused: m.Focus == FieldSearch,
	})
}
