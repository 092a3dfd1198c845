package desktop

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEntry(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	return path
}

const firefoxEntry = `[Desktop Entry]
Name=Firefox
Exec=/usr/lib/firefox/firefox %u
Icon=firefox
Terminal=false

[Desktop Action new-window]
Exec=/usr/lib/firefox/firefox --new-window
`

func TestLoadEntryReadsMainGroupOnly(t *testing.T) {
	path := writeEntry(t, t.TempDir(), "firefox.desktop", firefoxEntry)
	entry, err := LoadEntry(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if entry.Name != "Firefox" || entry.Icon != "firefox" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
	if entry.Exec != "/usr/lib/firefox/firefox %u" {
		t.Fatalf("exec from wrong group: %q", entry.Exec)
	}
}

func TestCommandLineStripsFieldCodes(t *testing.T) {
	entry := &Entry{Exec: `env FOO="a b" /usr/bin/app %U --flag %f`}
	argv, ok := entry.CommandLine()
	if !ok {
		t.Fatalf("expected executable command line")
	}
	want := []string{"env", "FOO=a b", "/usr/bin/app", "--flag"}
	if len(argv) != len(want) {
		t.Fatalf("argv %#v, want %#v", argv, want)
	}
	for i := range want {
		if argv[i] != want[i] {
			t.Fatalf("argv[%d] = %q, want %q", i, argv[i], want[i])
		}
	}
}

func TestCommandLineEscapedPercent(t *testing.T) {
	entry := &Entry{Exec: "app --ratio=100%%"}
	argv, ok := entry.CommandLine()
	if !ok || argv[1] != "--ratio=100%" {
		t.Fatalf("unexpected argv %#v", argv)
	}
}

func TestCommandLineWithoutExec(t *testing.T) {
	entry := &Entry{Name: "Broken"}
	if _, ok := entry.CommandLine(); ok {
		t.Fatalf("expected no command line for empty Exec")
	}
}

func TestResolveExistingPath(t *testing.T) {
	dir := t.TempDir()
	path := writeEntry(t, dir, "firefox.desktop", firefoxEntry)
	r := NewResolverWithDirs([]string{dir})
	argv, ok := r.Resolve(path)
	if !ok || argv[0] != "/usr/lib/firefox/firefox" {
		t.Fatalf("unexpected resolution: %#v (ok=%v)", argv, ok)
	}
}

func TestResolveFallsBackToFuzzyLookup(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "org.mozilla.firefox.desktop", firefoxEntry)
	r := NewResolverWithDirs([]string{dir})
	argv, ok := r.Resolve("/nonexistent/applications/firefox.desktop")
	if !ok || argv[0] != "/usr/lib/firefox/firefox" {
		t.Fatalf("fuzzy fallback failed: %#v (ok=%v)", argv, ok)
	}
}

func TestResolveUnresolvableIsNoOp(t *testing.T) {
	r := NewResolverWithDirs([]string{t.TempDir()})
	if _, ok := r.Resolve("/nonexistent/applications/ghost.desktop"); ok {
		t.Fatalf("expected resolution failure")
	}
}
