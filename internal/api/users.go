package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sandeepkv93/taskdesk/internal/model"
)

func (c *Client) CheckUserExists(ctx context.Context, email string) (model.CheckUserResult, error) {
	var out model.CheckUserResult
	err := c.do(ctx, "check user", http.MethodGet, "/users/check", url.Values{"email": {email}}, nil, &out)
	if err != nil {
		return model.CheckUserResult{}, err
	}
	return out, nil
}

func (c *Client) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	var out model.User
	if err := c.do(ctx, "create user", http.MethodPost, "/users", nil, req, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}
