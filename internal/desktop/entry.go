// Package desktop resolves desktop-entry files into executable command lines
// and spawns them with the activation token injected. It is a collaborator of
// the session controller, triggered only as a side effect of a DesktopEntry
// response.
package desktop

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	shellwords "github.com/mattn/go-shellwords"
)

// Entry is the subset of a desktop-entry file the launcher cares about.
type Entry struct {
	Name      string
	Exec      string
	TryExec   string
	Icon      string
	Terminal  bool
	NoDisplay bool
}

// LoadEntry parses the [Desktop Entry] group of a .desktop file.
func LoadEntry(path string) (*Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load desktop entry: %w", err)
	}
	defer f.Close()

	entry := &Entry{}
	inGroup := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inGroup = line == "[Desktop Entry]"
			continue
		}
		if !inGroup {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "Name":
			entry.Name = value
		case "Exec":
			entry.Exec = value
		case "TryExec":
			entry.TryExec = value
		case "Icon":
			entry.Icon = value
		case "Terminal":
			entry.Terminal = value == "true"
		case "NoDisplay":
			entry.NoDisplay = value == "true"
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load desktop entry: %w", err)
	}
	return entry, nil
}

// CommandLine tokenizes the Exec value with field codes stripped. The second
// return is false when the entry declares nothing executable.
func (e *Entry) CommandLine() ([]string, bool) {
	cleaned := stripFieldCodes(e.Exec)
	if strings.TrimSpace(cleaned) == "" {
		return nil, false
	}
	argv, err := shellwords.Parse(cleaned)
	if err != nil || len(argv) == 0 {
		return nil, false
	}
	return argv, true
}

// stripFieldCodes removes the %f/%u style placeholders of the desktop-entry
// Exec format. The launcher never passes files or URLs, so the codes expand
// to nothing; %% unescapes to a literal percent.
func stripFieldCodes(exec string) string {
	var b strings.Builder
	runes := []rune(exec)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' || i+1 >= len(runes) {
			b.WriteRune(runes[i])
			continue
		}
		i++
		if runes[i] == '%' {
			b.WriteRune('%')
		}
	}
	return b.String()
}
