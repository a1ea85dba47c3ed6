package service

import (
	"context"

	"github.com/sandeepkv93/taskdesk/internal/model"
)

// UserRepository is the network side of authentication.
type UserRepository interface {
	CheckUserExists(ctx context.Context, email string) (model.CheckUserResult, error)
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
}

// TaskRepository is the network side of task management.
type TaskRepository interface {
	ListTasks(ctx context.Context, userID string) ([]model.Task, error)
	CreateTask(ctx context.Context, req model.CreateTaskRequest) (model.Task, error)
	UpdateTask(ctx context.Context, req model.UpdateTaskRequest) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// Store caches small values across runs. Callers treat it as best-effort.
type Store interface {
	Get(ctx context.Context, key string, dst any) error
	Set(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
}
