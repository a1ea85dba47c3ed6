package service

import (
	"context"

	"github.com/sandeepkv93/taskdesk/internal/logger"
	"github.com/sandeepkv93/taskdesk/internal/model"
	"github.com/sandeepkv93/taskdesk/internal/state"
)

type Tasks struct {
	repo    TaskRepository
	tasks   *state.Tasks
	session *state.Session
	logger  *logger.Logger
}

func NewTasks(repo TaskRepository, tasks *state.Tasks, session *state.Session, logger *logger.Logger) *Tasks {
	return &Tasks{
		repo:    repo,
		tasks:   tasks,
		session: session,
		logger:  logger,
	}
}

// begin marks an operation in flight and returns the matching finalizer.
func (s *Tasks) begin() func() {
	s.tasks.SetLoading(true)
	s.tasks.ClearError()
	return func() { s.tasks.SetLoading(false) }
}

func (s *Tasks) fail(msg string, err error, args ...any) error {
	s.logger.Error("Tasks service: "+msg, append(args, "error", err.Error())...)
	s.tasks.SetError(msg)
	return &OperationError{Message: msg, Err: err}
}

// Load replaces the collection with the current user's tasks.
func (s *Tasks) Load(ctx context.Context) error {
	userID, ok := s.session.UserID()
	if !ok {
		return ErrNotAuthenticated
	}

	s.logger.Debug("Tasks service: loading tasks",
		"user_id", userID)

	done := s.begin()
	defer done()

	items, err := s.repo.ListTasks(ctx, userID)
	if err != nil {
		return s.fail(MsgLoadTasks, err, "user_id", userID)
	}
	s.tasks.ReplaceAll(items)
	return nil
}

func (s *Tasks) Create(ctx context.Context, title, description string) (model.Task, error) {
	userID, ok := s.session.UserID()
	if !ok {
		return model.Task{}, ErrNotAuthenticated
	}
	if err := model.ValidateTaskInput(title, description); err != nil {
		return model.Task{}, err
	}

	done := s.begin()
	defer done()

	t, err := s.repo.CreateTask(ctx, model.CreateTaskRequest{
		Title:       title,
		Description: description,
		UserID:      userID,
	})
	if err != nil {
		return model.Task{}, s.fail(MsgCreateTask, err, "user_id", userID)
	}
	s.tasks.Insert(t)
	s.logger.Debug("Tasks service: task created",
		"task_id", t.ID)
	return t, nil
}

// Update sends a partial update and swaps the server's copy into the
// collection. A response for an id no longer held locally is dropped.
func (s *Tasks) Update(ctx context.Context, req model.UpdateTaskRequest) (model.Task, error) {
	done := s.begin()
	defer done()

	t, err := s.repo.UpdateTask(ctx, req)
	if err != nil {
		return model.Task{}, s.fail(MsgUpdateTask, err, "task_id", req.ID)
	}
	if !s.tasks.Replace(t) {
		s.logger.Debug("Tasks service: updated task not held locally",
			"task_id", t.ID)
	}
	return t, nil
}

func (s *Tasks) ToggleCompletion(ctx context.Context, id string, completed bool) (model.Task, error) {
	return s.Update(ctx, model.UpdateTaskRequest{ID: id, Completed: &completed})
}

// Edit changes title and description after applying the form rules.
func (s *Tasks) Edit(ctx context.Context, id, title, description string) (model.Task, error) {
	if err := model.ValidateTaskInput(title, description); err != nil {
		return model.Task{}, err
	}
	return s.Update(ctx, model.UpdateTaskRequest{ID: id, Title: &title, Description: &description})
}

func (s *Tasks) Delete(ctx context.Context, id string) error {
	done := s.begin()
	defer done()

	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return s.fail(MsgDeleteTask, err, "task_id", id)
	}
	s.tasks.RemoveByID(id)
	return nil
}
