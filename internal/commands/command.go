package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/taskdesk/internal/model"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeSearch Type = "search"
	TypeFilter Type = "filter"
	TypeDone   Type = "done"
	TypeUndo   Type = "undo"
	TypeRemove Type = "rm"
	TypeReload Type = "reload"
	TypeLogout Type = "logout"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title       string
	Description string
}

type SearchArgs struct {
	Term string
}

type FilterArgs struct {
	Filter model.StatusFilter
}

// TargetArgs names the task a done, undo or rm command acts on.
type TargetArgs struct {
	ID string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Search *SearchArgs
	Filter *FilterArgs
	Target *TargetArgs
}

// Parse reads one palette line. A leading "/" is accepted and ignored.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head, rest, _ := strings.Cut(raw, " ")
	head = strings.ToLower(head)
	rest = strings.TrimSpace(rest)

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, rest)
	case TypeSearch:
		return Command{Type: TypeSearch, Raw: input, Search: &SearchArgs{Term: rest}}, nil
	case TypeFilter:
		return parseFilter(input, rest)
	case TypeDone, TypeUndo, TypeRemove:
		return parseTarget(input, Type(head), rest)
	case TypeReload, TypeLogout:
		return Command{Type: Type(head), Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw, rest string) (Command, error) {
	title, description, ok := strings.Cut(rest, "|")
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires <title> | <description>"}
	}
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if err := model.ValidateTaskInput(title, description); err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title, Description: description}}, nil
}

func parseFilter(raw, rest string) (Command, error) {
	f, err := model.ParseStatusFilter(rest)
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter must be one of all, pending, completed"}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Filter: f}}, nil
}

func parseTarget(raw string, typ Type, rest string) (Command, error) {
	fields := strings.Fields(rest)
	if len(fields) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task id", typ)}
	}
	return Command{Type: typ, Raw: raw, Target: &TargetArgs{ID: fields[0]}}, nil
}
