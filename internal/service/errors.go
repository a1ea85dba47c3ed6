package service

import "errors"

// ErrNotAuthenticated is returned without touching any state when an
// operation needs a logged-in user and there is none.
var ErrNotAuthenticated = errors.New("service: not authenticated")

const (
	MsgCheckUser  = "Error checking user. Please try again."
	MsgCreateUser = "Error creating user. Please try again."
	MsgLoadTasks  = "Error loading tasks"
	MsgCreateTask = "Error creating task"
	MsgUpdateTask = "Error updating task"
	MsgDeleteTask = "Error deleting task"
)

// OperationError is the only failure callers observe from a repository
// call: a fixed message per operation. The cause is kept for logging and
// errors.Is checks only.
type OperationError struct {
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
