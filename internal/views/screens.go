package views

import (
	"fmt"
	"strings"
)

type LoginData struct {
	EmailView    string
	Email        string
	Loading      bool
	Spinner      string
	CreatePrompt bool
}

type FilterTabData struct {
	Label  string
	Count  int
	Active bool
}

type TaskRowData struct {
	ID        string
	Title     string
	Completed bool
	CreatedAt string
	Selected  bool
}

type TaskDetailData struct {
	ID          string
	Title       string
	Description string
	CreatedAt   string
	UpdatedAt   string
	Width       int
}

type TasksScreenData struct {
	UserEmail     string
	TitleView     string
	DescView      string
	SearchView    string
	Tabs          []FilterTabData
	Rows          []TaskRowData
	Loading       bool
	Spinner       string
	SearchTerm    string
	Detail        *TaskDetailData
	FormFocused   bool
	SearchFocused bool
}

type EditDialogData struct {
	TitleView string
	DescView  string
	ErrorText string
}

type HelpPanelData struct {
	Screen   string
	Bindings []string
	HelpView string
}

func RenderLoginScreen(data LoginData) string {
	var b strings.Builder
	b.WriteString("login:\n")
	b.WriteString(data.EmailView + "\n")
	if data.Loading {
		b.WriteString(fmt.Sprintf("%s checking %s\n", data.Spinner, data.Email))
	}
	if data.CreatePrompt {
		b.WriteString(fmt.Sprintf("\nNo account found for %s. Create it? [y/n]\n", data.Email))
	} else {
		b.WriteString("actions: [enter]continue [ctrl+c]quit\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderTasksScreen(data TasksScreenData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("signed in as %s\n\n", data.UserEmail))

	b.WriteString(section("new task", data.FormFocused) + "\n")
	b.WriteString(data.TitleView + "\n")
	b.WriteString(data.DescView + "\n\n")

	b.WriteString(section("search", data.SearchFocused) + " " + data.SearchView + "\n")
	b.WriteString(RenderFilterTabs(data.Tabs) + "\n\n")

	if data.Loading {
		b.WriteString(data.Spinner + " loading\n")
	}
	b.WriteString(RenderTaskList(data.Rows, data.SearchTerm))

	if data.Detail != nil {
		b.WriteString("\n\n" + RenderTaskDetail(*data.Detail))
	}
	return strings.TrimSpace(b.String())
}

func section(title string, focused bool) string {
	if focused {
		return activeStyle.Render(title + ":")
	}
	return title + ":"
}

func RenderFilterTabs(tabs []FilterTabData) string {
	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		label := fmt.Sprintf("[%d] %s (%d)", i+1, tab.Label, tab.Count)
		if tab.Active {
			label = activeStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

func RenderTaskList(rows []TaskRowData, searchTerm string) string {
	if len(rows) == 0 {
		if strings.TrimSpace(searchTerm) != "" {
			return fmt.Sprintf("(no tasks match %q)", strings.TrimSpace(searchTerm))
		}
		return "(no tasks)"
	}
	var b strings.Builder
	for _, row := range rows {
		cursor := " "
		if row.Selected {
			cursor = ">"
		}
		check := "[ ]"
		title := row.Title
		if row.Completed {
			check = "[x]"
			title = doneStyle.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s %s %s  %s\n", cursor, check, title, row.CreatedAt))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderTaskDetail(data TaskDetailData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\nid: %s\ncreated: %s\n", data.Title, data.ID, data.CreatedAt))
	if data.UpdatedAt != "" {
		b.WriteString(fmt.Sprintf("updated: %s\n", data.UpdatedAt))
	}
	b.WriteString("\n" + RenderMarkdown(data.Description, data.Width))
	return strings.TrimSpace(b.String())
}

func RenderEditDialog(data EditDialogData) string {
	var b strings.Builder
	b.WriteString("edit task:\n")
	b.WriteString("keys: [tab]field [ctrl+s]save [esc]cancel\n")
	b.WriteString(data.TitleView + "\n")
	b.WriteString(data.DescView)
	if data.ErrorText != "" {
		b.WriteString("\nerror: " + data.ErrorText)
	}
	return b.String()
}

func RenderDeleteConfirm(title string) string {
	return fmt.Sprintf("delete task:\nDelete %q? This cannot be undone. [y/n]", title)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s view:\n%s\n%s",
		strings.ToLower(data.Screen),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
