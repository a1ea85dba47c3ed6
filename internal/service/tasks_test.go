package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/taskdesk/internal/logger"
	"github.com/sandeepkv93/taskdesk/internal/mocks"
	"github.com/sandeepkv93/taskdesk/internal/model"
	"github.com/sandeepkv93/taskdesk/internal/state"
)

var created = time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)

type tasksFixture struct {
	repo    *mocks.TaskRepository
	tasks   *state.Tasks
	session *state.Session
	svc     *Tasks
}

func newTasksFixture(loggedIn bool) tasksFixture {
	f := tasksFixture{
		repo:    &mocks.TaskRepository{},
		tasks:   state.NewTasks(),
		session: state.NewSession(),
	}
	if loggedIn {
		u := sampleUser()
		f.session.SetUser(&u)
	}
	f.svc = NewTasks(f.repo, f.tasks, f.session, logger.Noop())
	return f
}

func TestTasks_Load(t *testing.T) {
	f := newTasksFixture(true)
	items := []model.Task{
		{ID: "1", Title: "a", Description: "a", CreatedAt: created, UserID: "u-1"},
		{ID: "2", Title: "b", Description: "b", CreatedAt: created.Add(time.Hour), UserID: "u-1"},
	}
	f.repo.On("ListTasks", mock.Anything, "u-1").Return(items, nil)
	f.tasks.SetError("stale")

	require.NoError(t, f.svc.Load(context.Background()))
	assert.Equal(t, items, f.tasks.All())
	assert.False(t, f.tasks.Loading())
	_, hasErr := f.tasks.Error()
	assert.False(t, hasErr)
}

func TestTasks_LoadFailureKeepsCollection(t *testing.T) {
	f := newTasksFixture(true)
	f.tasks.ReplaceAll([]model.Task{{ID: "keep"}})
	f.repo.On("ListTasks", mock.Anything, "u-1").Return(nil, errors.New("timeout"))

	err := f.svc.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, MsgLoadTasks, err.Error())

	msg, ok := f.tasks.Error()
	require.True(t, ok)
	assert.Equal(t, MsgLoadTasks, msg)
	assert.Equal(t, 1, f.tasks.Len())
	assert.False(t, f.tasks.Loading())
}

func TestTasks_RequiresSession(t *testing.T) {
	f := newTasksFixture(false)

	assert.ErrorIs(t, f.svc.Load(context.Background()), ErrNotAuthenticated)
	_, err := f.svc.Create(context.Background(), "t", "d")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	f.repo.AssertNotCalled(t, "ListTasks", mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
	_, hasErr := f.tasks.Error()
	assert.False(t, hasErr)
	assert.False(t, f.tasks.Loading())
}

func TestTasks_Create(t *testing.T) {
	f := newTasksFixture(true)
	f.tasks.ReplaceAll([]model.Task{{ID: "1", Title: "old", Description: "old", CreatedAt: created}})
	want := model.Task{ID: "2", Title: "Ship it", Description: "release", CreatedAt: created.Add(time.Hour), UserID: "u-1"}

	f.repo.On("CreateTask", mock.Anything, model.CreateTaskRequest{Title: "Ship it", Description: "release", UserID: "u-1"}).
		Return(want, nil)

	got, err := f.svc.Create(context.Background(), "Ship it", "release")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	all := f.tasks.All()
	require.Len(t, all, 2)
	assert.Equal(t, "2", all[1].ID, "created task is appended")
}

func TestTasks_CreateValidation(t *testing.T) {
	f := newTasksFixture(true)

	_, err := f.svc.Create(context.Background(), strings.Repeat("x", 101), "d")
	assert.ErrorIs(t, err, model.ErrTitleTooLong)
	_, err = f.svc.Create(context.Background(), "t", " ")
	assert.ErrorIs(t, err, model.ErrDescriptionRequired)
	f.repo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestTasks_CreateFailure(t *testing.T) {
	f := newTasksFixture(true)
	f.repo.On("CreateTask", mock.Anything, mock.Anything).Return(model.Task{}, errors.New("400"))

	_, err := f.svc.Create(context.Background(), "t", "d")
	require.Error(t, err)
	msg, _ := f.tasks.Error()
	assert.Equal(t, MsgCreateTask, msg)
	assert.Equal(t, 0, f.tasks.Len())
}

func TestTasks_ToggleCompletion(t *testing.T) {
	f := newTasksFixture(true)
	f.tasks.ReplaceAll([]model.Task{
		{ID: "1", Title: "a", Description: "a", CreatedAt: created},
		{ID: "2", Title: "b", Description: "b", CreatedAt: created},
	})
	done := true
	f.repo.On("UpdateTask", mock.Anything, model.UpdateTaskRequest{ID: "1", Completed: &done}).
		Return(model.Task{ID: "1", Title: "a", Description: "a", Completed: true, CreatedAt: created}, nil)

	got, err := f.svc.ToggleCompletion(context.Background(), "1", true)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	all := f.tasks.All()
	assert.Equal(t, "1", all[0].ID)
	assert.True(t, all[0].Completed)
}

func TestTasks_Edit(t *testing.T) {
	f := newTasksFixture(true)
	f.tasks.ReplaceAll([]model.Task{{ID: "1", Title: "a", Description: "a", CreatedAt: created}})
	title, desc := "renamed", "more detail"
	f.repo.On("UpdateTask", mock.Anything, model.UpdateTaskRequest{ID: "1", Title: &title, Description: &desc}).
		Return(model.Task{ID: "1", Title: title, Description: desc, CreatedAt: created}, nil)

	_, err := f.svc.Edit(context.Background(), "1", title, desc)
	require.NoError(t, err)
	got, _ := f.tasks.Get("1")
	assert.Equal(t, "renamed", got.Title)

	_, err = f.svc.Edit(context.Background(), "1", "", desc)
	assert.ErrorIs(t, err, model.ErrTitleRequired)
}

func TestTasks_UpdateUnknownIDIsDropped(t *testing.T) {
	f := newTasksFixture(true)
	f.tasks.ReplaceAll([]model.Task{{ID: "1"}})
	f.repo.On("UpdateTask", mock.Anything, mock.Anything).Return(model.Task{ID: "ghost"}, nil)

	_, err := f.svc.ToggleCompletion(context.Background(), "ghost", true)
	require.NoError(t, err)
	assert.Equal(t, []model.Task{{ID: "1"}}, f.tasks.All())
}

func TestTasks_UpdateFailure(t *testing.T) {
	f := newTasksFixture(true)
	f.repo.On("UpdateTask", mock.Anything, mock.Anything).Return(model.Task{}, errors.New("404"))

	_, err := f.svc.ToggleCompletion(context.Background(), "1", false)
	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, MsgUpdateTask, opErr.Message)
}

func TestTasks_Delete(t *testing.T) {
	f := newTasksFixture(true)
	f.tasks.ReplaceAll([]model.Task{{ID: "1"}, {ID: "2"}})
	f.repo.On("DeleteTask", mock.Anything, "1").Return(nil)
	f.repo.On("DeleteTask", mock.Anything, "2").Return(errors.New("500"))

	require.NoError(t, f.svc.Delete(context.Background(), "1"))
	assert.Equal(t, 1, f.tasks.Len())

	err := f.svc.Delete(context.Background(), "2")
	require.Error(t, err)
	msg, _ := f.tasks.Error()
	assert.Equal(t, MsgDeleteTask, msg)
	assert.Equal(t, 1, f.tasks.Len(), "failed delete keeps the task")
	f.repo.AssertExpectations(t)
}

func TestTasks_NextOperationClearsError(t *testing.T) {
	f := newTasksFixture(true)
	f.repo.On("DeleteTask", mock.Anything, "x").Return(errors.New("boom")).Once()
	f.repo.On("DeleteTask", mock.Anything, "x").Return(nil).Once()

	require.Error(t, f.svc.Delete(context.Background(), "x"))
	_, hasErr := f.tasks.Error()
	require.True(t, hasErr)

	require.NoError(t, f.svc.Delete(context.Background(), "x"))
	_, hasErr = f.tasks.Error()
	assert.False(t, hasErr)
}
