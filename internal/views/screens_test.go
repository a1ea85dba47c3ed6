package views

import (
	"strings"
	"testing"
)

func TestRenderTaskListMarksSelectionAndCompletion(t *testing.T) {
	out := RenderTaskList([]TaskRowData{
		{ID: "1", Title: "Draft", CreatedAt: "2026-02-09"},
		{ID: "2", Title: "Shipped", Completed: true, Selected: true, CreatedAt: "2026-02-08"},
	}, "")

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "  [ ] ") {
		t.Fatalf("unexpected first row: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "> [x] ") || !strings.Contains(lines[1], "Shipped") {
		t.Fatalf("unexpected second row: %q", lines[1])
	}
}

func TestRenderTaskListEmptyStates(t *testing.T) {
	if got := RenderTaskList(nil, ""); got != "(no tasks)" {
		t.Fatalf("empty list = %q", got)
	}
	if got := RenderTaskList(nil, "  milk "); got != `(no tasks match "milk")` {
		t.Fatalf("empty search = %q", got)
	}
}

func TestRenderFilterTabsShowsCounts(t *testing.T) {
	out := RenderFilterTabs([]FilterTabData{
		{Label: "all", Count: 3, Active: true},
		{Label: "pending", Count: 2},
		{Label: "completed", Count: 1},
	})
	for _, want := range []string{"all (3)", "[2] pending (2)", "[3] completed (1)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("tabs missing %q: %q", want, out)
		}
	}
}

func TestRenderLoginScreenCreatePrompt(t *testing.T) {
	out := RenderLoginScreen(LoginData{EmailView: "> ana@example.com", Email: "ana@example.com", CreatePrompt: true})
	if !strings.Contains(out, "Create it? [y/n]") {
		t.Fatalf("missing create prompt: %q", out)
	}
	if strings.Contains(out, "[enter]continue") {
		t.Fatalf("prompt should replace the action hint: %q", out)
	}
}

func TestRenderCommandPaletteInactive(t *testing.T) {
	if got := RenderCommandPalette(false, "add"); got != "" {
		t.Fatalf("inactive palette rendered %q", got)
	}
	if got := RenderCommandPalette(true, "reload"); got != "command: reload" {
		t.Fatalf("palette = %q", got)
	}
}

func TestRenderMarkdownBlankAndPlain(t *testing.T) {
	if got := RenderMarkdown("   ", 40); got != "" {
		t.Fatalf("blank markdown rendered %q", got)
	}
	if got := RenderMarkdown("remember the **milk**", 40); !strings.Contains(got, "milk") {
		t.Fatalf("rendered markdown lost text: %q", got)
	}
}

func TestRenderTaskDetailIncludesMetadata(t *testing.T) {
	out := RenderTaskDetail(TaskDetailData{ID: "t-1", Title: "Plan", Description: "steps", CreatedAt: "2026-02-09 10:00", UpdatedAt: "2026-02-10 08:00", Width: 60})
	for _, want := range []string{"id: t-1", "created: 2026-02-09 10:00", "updated: 2026-02-10 08:00", "steps"} {
		if !strings.Contains(out, want) {
			t.Fatalf("detail missing %q: %q", want, out)
		}
	}
}
