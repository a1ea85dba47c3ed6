package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sandeepkv93/taskdesk/internal/model"
)

func (c *Client) ListTasks(ctx context.Context, userID string) ([]model.Task, error) {
	out := make([]model.Task, 0)
	if err := c.do(ctx, "list tasks", http.MethodGet, "/tasks", url.Values{"userId": {userID}}, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTask(ctx context.Context, req model.CreateTaskRequest) (model.Task, error) {
	var out model.Task
	if err := c.do(ctx, "create task", http.MethodPost, "/tasks", nil, req, &out); err != nil {
		return model.Task{}, err
	}
	return out, nil
}

func (c *Client) UpdateTask(ctx context.Context, req model.UpdateTaskRequest) (model.Task, error) {
	var out model.Task
	if err := c.do(ctx, "update task", http.MethodPut, "/tasks/"+url.PathEscape(req.ID), nil, req, &out); err != nil {
		return model.Task{}, err
	}
	return out, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, "delete task", http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil, nil)
}
