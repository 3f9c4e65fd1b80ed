package report

import (
	"strings"
	"testing"

	"github.com/phobologic/nbquality/internal/profile"
)

func TestRender(t *testing.T) {
	t.Parallel()

	got, err := Render("{{.a}} and {{.b}}", map[string]any{"a": 1, "b": "two"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "1 and two" {
		t.Errorf("Render = %q", got)
	}
}

func TestRenderMissingFieldFails(t *testing.T) {
	t.Parallel()

	if _, err := Render("{{.absent}}", map[string]any{"present": 1}); err == nil {
		t.Fatal("missing field rendered silently")
	}
}

func TestRenderBadTemplate(t *testing.T) {
	t.Parallel()

	if _, err := Render("{{.unclosed", nil); err == nil {
		t.Fatal("malformed template accepted")
	}
}

func TestFeedstockCoversDefaultTemplate(t *testing.T) {
	t.Parallel()

	totals := profile.Totals{
		Notebooks:     3,
		MarkdownCells: 12,
		CodeCells:     20,
		Words:         4500,
		ScreenLines:   800,
		TotalCode:     300,
		CodeLines:     220,
		BlankCode:     50,
		CommentCode:   30,
		ReadingSecs:   2712.5,
		ReadingMins:   46,
	}

	got, err := Render(DirectoryTemplate, Feedstock("lessons/week1", totals))
	if err != nil {
		t.Fatalf("default template against full feedstock: %v", err)
	}

	for _, fragment := range []string{
		"`lessons/week1`",
		"3 notebooks",
		"4500 words across 12 markdown cells",
		"300 lines of code across 20 code cells",
		"220 code lines, 30 comment lines and 50 blank lines",
		"46 minutes",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("rendered report missing %q:\n%s", fragment, got)
		}
	}
}

func TestDirectoriesOrderedAndJoined(t *testing.T) {
	t.Parallel()

	dirs := profile.DirectoryReport{
		"b": {Notebooks: 2},
		"a": {Notebooks: 1},
	}

	got, err := Directories(dirs, "dir {{.path}}: {{.nb_count}}\n")
	if err != nil {
		t.Fatal(err)
	}
	want := "dir a: 1\n\ndir b: 2\n"
	if got != want {
		t.Errorf("Directories = %q, want %q", got, want)
	}
}

func TestDirectoriesPropagatesTemplateError(t *testing.T) {
	t.Parallel()

	dirs := profile.DirectoryReport{"a": {}}
	if _, err := Directories(dirs, "{{.no_such_field}}"); err == nil {
		t.Fatal("expected missing-field error")
	}
}
