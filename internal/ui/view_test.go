package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/nimbus-shell/launcher/internal/launcher"
)

func plainView(f *fixture) string {
	return ansi.Strip(f.harness.View())
}

func TestViewHiddenRendersNothing(t *testing.T) {
	f := newFixture(t)
	if view := f.harness.View(); view != "" {
		t.Fatalf("expected empty view while hidden, got:\n%s", view)
	}

	// Awaiting the first result batch still shows nothing; the panel appears
	// together with its contents.
	f.harness.Send(ActivateMsg{})
	if view := f.harness.View(); view != "" {
		t.Fatalf("expected empty view while awaiting results, got:\n%s", view)
	}
}

func TestViewShowsResultRowsWithHints(t *testing.T) {
	f := newFixture(t)
	f.open(t, someResults()...)

	view := plainView(f)
	for _, want := range []string{"Files", "Firefox", "Terminal", "Browse files", "Ctrl + 1", "Ctrl + 3"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
}

func TestViewTenthRowHintWrapsToZero(t *testing.T) {
	f := newFixture(t)
	results := make([]launcher.SearchResult, 10)
	for i := range results {
		results[i] = launcher.SearchResult{ID: uint32(i), Name: "App"}
	}
	f.open(t, results...)

	view := plainView(f)
	if !strings.Contains(view, "Ctrl + 0") {
		t.Fatalf("expected tenth row hint Ctrl + 0, got:\n%s", view)
	}
}

func TestViewWindowedResultLeadsWithTitle(t *testing.T) {
	f := newFixture(t)
	window := [2]uint32{1, 7}
	f.open(t,
		launcher.SearchResult{ID: 1, Name: "Editor", Description: "Open document", Window: &window},
	)

	view := plainView(f)
	title := strings.Index(view, "Open document")
	app := strings.Index(view, "Editor")
	if title == -1 || app == -1 {
		t.Fatalf("expected both lines in view, got:\n%s", view)
	}
	if title > app {
		t.Fatalf("expected window title before application name, got:\n%s", view)
	}
}

func TestViewEmptyResults(t *testing.T) {
	f := newFixture(t)
	f.open(t)

	if !strings.Contains(plainView(f), "No results") {
		t.Fatalf("expected empty-state text, got:\n%s", plainView(f))
	}
}

func TestViewMenuOverlay(t *testing.T) {
	f := newFixture(t)
	f.open(t, someResults()...)
	f.harness.Send(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionMotion})
	f.respond(launcher.ContextMenu{ID: 10, Options: []launcher.ContextOption{
		{ID: 0, Name: "Open"},
		{ID: 1, Name: "Remove"},
	}})

	view := plainView(f)
	if !strings.Contains(view, "Open") || !strings.Contains(view, "Remove") {
		t.Fatalf("expected menu options in view, got:\n%s", view)
	}
}
