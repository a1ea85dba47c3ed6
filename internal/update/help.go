package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/taskdesk/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.screenBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Screen:   string(m.CurrentScreen()),
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) screenBindings() []KeyBinding {
	if m.CurrentScreen() == ScreenLogin {
		return []KeyBinding{
			{Key: "enter", Action: "check email"},
			{Key: "y/n", Action: "answer create prompt"},
			{Key: "ctrl+c", Action: "quit app"},
		}
	}
	return []KeyBinding{
		{Key: "n/tab", Action: "focus new task form"},
		{Key: "enter", Action: "create task from form"},
		{Key: m.Keys.Search, Action: "search tasks"},
		{Key: "1/2/3", Action: "all / pending / completed"},
		{Key: "j/k", Action: "move cursor"},
		{Key: "space", Action: "toggle completion"},
		{Key: "e", Action: "edit task"},
		{Key: "d", Action: "delete task"},
		{Key: "r", Action: "reload tasks"},
		{Key: "L", Action: "log out"},
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.screenBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.screenBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
