package model

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

var (
	ErrEmailRequired = errors.New("model: email is required")
	ErrInvalidEmail  = errors.New("model: invalid email")
)

// User is the authenticated identity. It is replaced wholesale on login and
// cleared on logout, never mutated in place.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateUserRequest struct {
	Email string `json:"email"`
}

type CheckUserResult struct {
	Exists bool  `json:"exists"`
	User   *User `json:"user,omitempty"`
}

// ValidateEmail reports whether raw is a bare address such as a@b.co.
// Display names ("Ann <a@b.co>") are rejected.
func ValidateEmail(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ErrEmailRequired
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return ErrInvalidEmail
	}
	return nil
}
