package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

var (
	ErrTitleRequired       = errors.New("model: task title is required")
	ErrTitleTooLong        = errors.New("model: task title is too long")
	ErrDescriptionRequired = errors.New("model: task description is required")
	ErrDescriptionTooLong  = errors.New("model: task description is too long")
	ErrInvalidStatusFilter = errors.New("model: invalid status filter")
)

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	UserID      string     `json:"userId"`
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
}

// UpdateTaskRequest is a partial update; nil fields are left untouched by the
// server.
type UpdateTaskRequest struct {
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// ValidateTaskInput applies the form rules used before any create or edit.
func ValidateTaskInput(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	if n := utf8.RuneCountInString(title); n > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, n, MaxTitleLength)
	}
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionRequired
	}
	if n := utf8.RuneCountInString(description); n > MaxDescriptionLength {
		return fmt.Errorf("%w: %d > %d", ErrDescriptionTooLong, n, MaxDescriptionLength)
	}
	return nil
}

type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusPending   StatusFilter = "pending"
	StatusCompleted StatusFilter = "completed"
)

// StatusFilters lists the filters in tab order.
var StatusFilters = []StatusFilter{StatusAll, StatusPending, StatusCompleted}

func (f StatusFilter) IsValid() bool {
	switch f {
	case StatusAll, StatusPending, StatusCompleted:
		return true
	default:
		return false
	}
}

// Match reports whether t belongs to the subset selected by f.
func (f StatusFilter) Match(t Task) bool {
	switch f {
	case StatusPending:
		return !t.Completed
	case StatusCompleted:
		return t.Completed
	default:
		return true
	}
}

func ParseStatusFilter(raw string) (StatusFilter, error) {
	f := StatusFilter(strings.ToLower(strings.TrimSpace(raw)))
	if f == "" {
		return StatusAll, nil
	}
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatusFilter, raw)
	}
	return f, nil
}
