package commands

import (
	"errors"
	"strings"
	"testing"

	"github.com/sandeepkv93/taskdesk/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add pay rent | before friday", TypeAdd},
		{"search groceries", TypeSearch},
		{"filter pending", TypeFilter},
		{"done 42", TypeDone},
		{"UNDO 42", TypeUndo},
		{"rm 42", TypeRemove},
		{"reload", TypeReload},
		{"/logout", TypeLogout},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddSplitsOnPipe(t *testing.T) {
	cmd, err := Parse("add  Write docs |  cover the palette ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Title != "Write docs" || cmd.Add.Description != "cover the palette" {
		t.Fatalf("unexpected add args: %+v", *cmd.Add)
	}
}

func TestParseAddValidatesInput(t *testing.T) {
	inputs := []string{
		"add no separator",
		"add | description only",
		"add title only |",
		"add " + strings.Repeat("x", model.MaxTitleLength+1) + " | d",
	}
	for _, in := range inputs {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument, got %v", in, err)
		}
	}
}

func TestParseSearchKeepsBlankTerm(t *testing.T) {
	cmd, err := Parse("search")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Search.Term != "" {
		t.Fatalf("expected empty term, got %q", cmd.Search.Term)
	}
}

func TestParseFilter(t *testing.T) {
	cmd, err := Parse("filter Completed")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Filter.Filter != model.StatusCompleted {
		t.Fatalf("filter = %s", cmd.Filter.Filter)
	}

	_, err = Parse("filter later")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestParseTargetRequiresSingleID(t *testing.T) {
	for _, in := range []string{"done", "rm a b"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument, got %v", in, err)
		}
	}
}

func TestParseEmptyAndUnknown(t *testing.T) {
	cases := map[string]ErrorCode{
		"   ":            ErrCodeEmptyInput,
		"/":              ErrCodeEmptyInput,
		"/unknown do x":  ErrCodeUnknownCommand,
		"snooze overdue": ErrCodeUnknownCommand,
	}
	for in, want := range cases {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != want {
			t.Fatalf("parse %q: expected %s, got %v", in, want, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs | for the palette")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Title != "write docs" {
				t.Fatalf("unexpected title: %q", a.Title)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteRoutesTargets(t *testing.T) {
	var got []string
	record := func(name string) func(TargetArgs) (Result, error) {
		return func(a TargetArgs) (Result, error) {
			got = append(got, name+":"+a.ID)
			return Result{}, nil
		}
	}
	h := Handlers{Done: record("done"), Undo: record("undo"), Remove: record("rm")}

	for _, in := range []string{"done 1", "undo 2", "rm 3"} {
		cmd, err := Parse(in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", in, err)
		}
		if _, err := Execute(cmd, h); err != nil {
			t.Fatalf("execute %q failed: %v", in, err)
		}
	}
	want := "done:1,undo:2,rm:3"
	if strings.Join(got, ",") != want {
		t.Fatalf("got %v, want %s", got, want)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("reload")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
