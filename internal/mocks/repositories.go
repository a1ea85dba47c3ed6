// Package mocks holds testify doubles for the service ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sandeepkv93/taskdesk/internal/model"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CheckUserExists(ctx context.Context, email string) (model.CheckUserResult, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.CheckUserResult), args.Error(1)
}

func (m *UserRepository) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.User), args.Error(1)
}

type TaskRepository struct {
	mock.Mock
}

func (m *TaskRepository) ListTasks(ctx context.Context, userID string) ([]model.Task, error) {
	args := m.Called(ctx, userID)
	var out []model.Task
	if v := args.Get(0); v != nil {
		out = v.([]model.Task)
	}
	return out, args.Error(1)
}

func (m *TaskRepository) CreateTask(ctx context.Context, req model.CreateTaskRequest) (model.Task, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *TaskRepository) UpdateTask(ctx context.Context, req model.UpdateTaskRequest) (model.Task, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *TaskRepository) DeleteTask(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
