package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/taskdesk/internal/logger"
	"github.com/sandeepkv93/taskdesk/internal/model"
	"github.com/sandeepkv93/taskdesk/internal/service"
	"github.com/sandeepkv93/taskdesk/internal/state"
)

// StatusTimeout is how long a status bar message stays up.
const StatusTimeout = 5 * time.Second

type Screen string

const (
	ScreenLogin Screen = "Login"
	ScreenTasks Screen = "Tasks"
)

type StatusBar struct {
	Text    string
	IsError bool
}

// Field is the input that receives keystrokes on the tasks screen.
type Field int

const (
	FieldList Field = iota
	FieldTitle
	FieldDescription
	FieldSearch
)

type Dialog int

const (
	DialogNone Dialog = iota
	DialogEdit
	DialogDelete
)

type CommandPaletteState struct {
	Active bool
	Input  string
}

type GlobalKeyMap struct {
	Search  string
	Help    string
	Palette string
	Quit    string
}

// Deps are the services and state containers the model drives.
type Deps struct {
	Auth    *service.Auth
	Tasks   *service.Tasks
	Session *state.Session
	Items   *state.Tasks
	Logger  *logger.Logger
}

type Model struct {
	auth    *service.Auth
	tasks   *service.Tasks
	session *state.Session
	items   *state.Tasks
	logger  *logger.Logger

	Status      StatusBar
	Palette     CommandPaletteState
	HelpVisible bool
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	Cursor int
	Focus  Field
	Dialog Dialog

	// Login: set when the checked email has no account yet.
	CreatePrompt bool
	PendingEmail string

	editID   string
	deleteID string
	inflight int
	width    int

	emailInput   textinput.Model
	titleInput   textinput.Model
	descArea     textarea.Model
	searchInput  textinput.Model
	commandInput textinput.Model
	editTitle    textinput.Model
	editDesc     textarea.Model
	editErr      string
	statusSeq    int
	statusTTL    time.Duration
	syncSpinner  spinner.Model
	helpModel    help.Model
}

// ClearStatusMsg empties the status bar if no newer status was set since
// the one numbered Seq.
type ClearStatusMsg struct {
	Seq int
}

type UserCheckedMsg struct {
	Email  string
	Result model.CheckUserResult
	Err    error
}

type UserCreatedMsg struct {
	User model.User
	Err  error
}

type TasksLoadedMsg struct {
	Err error
}

type TaskCreatedMsg struct {
	Task model.Task
	Err  error
}

type TaskUpdatedMsg struct {
	Task model.Task
	Err  error
}

type TaskDeletedMsg struct {
	ID  string
	Err error
}

type LoggedOutMsg struct{}

func NewModel(deps Deps) Model {
	log := deps.Logger
	if log == nil {
		log = logger.Noop()
	}
	m := Model{
		auth:    deps.Auth,
		tasks:   deps.Tasks,
		session: deps.Session,
		items:   deps.Items,
		logger:  log,
		Keys: GlobalKeyMap{
			Search:  "/",
			Help:    "?",
			Palette: ":",
			Quit:    "q",
		},
		width:     80,
		statusTTL: StatusTimeout,
	}
	m.initBubbleComponents()
	if m.CurrentScreen() == ScreenLogin {
		m.emailInput.Focus()
	}
	return m
}

func (m *Model) initBubbleComponents() {
	m.emailInput = textinput.New()
	m.emailInput.Prompt = "email> "
	m.emailInput.Placeholder = "you@example.com"
	m.emailInput.CharLimit = 254
	m.emailInput.Width = 42

	m.titleInput = textinput.New()
	m.titleInput.Prompt = "title> "
	m.titleInput.CharLimit = model.MaxTitleLength
	m.titleInput.Width = 48

	m.descArea = newDescriptionArea()

	m.searchInput = textinput.New()
	m.searchInput.Prompt = ""
	m.searchInput.Placeholder = "title or description"
	m.searchInput.CharLimit = 128
	m.searchInput.Width = 32

	m.commandInput = textinput.New()
	m.commandInput.Prompt = ":"
	m.commandInput.CharLimit = 256 + model.MaxDescriptionLength
	m.commandInput.Width = 60

	m.editTitle = textinput.New()
	m.editTitle.Prompt = "title> "
	m.editTitle.CharLimit = model.MaxTitleLength
	m.editTitle.Width = 48

	m.editDesc = newDescriptionArea()

	m.syncSpinner = spinner.New()
	m.syncSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
}

// newDescriptionArea builds a textarea where enter is left to the caller
// and alt+enter inserts a line break.
func newDescriptionArea() textarea.Model {
	ta := textarea.New()
	ta.SetWidth(54)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.Placeholder = "Description (markdown)"
	ta.CharLimit = model.MaxDescriptionLength
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))
	return ta
}

// CurrentScreen follows the session: authenticated users see their tasks.
func (m Model) CurrentScreen() Screen {
	if m.session.IsAuthenticated() {
		return ScreenTasks
	}
	return ScreenLogin
}

// Loading reports whether any service call is still in flight.
func (m Model) Loading() bool {
	return m.inflight > 0 || m.session.Loading() || m.items.Loading()
}

// SelectedTask returns the task under the cursor in the visible list.
func (m Model) SelectedTask() (model.Task, bool) {
	visible := m.items.Visible()
	if m.Cursor < 0 || m.Cursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[m.Cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.items.Visible())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}
