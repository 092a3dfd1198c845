package desktop

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/nimbus-shell/launcher/internal/logging/events"
)

// Resolver turns backend-reported desktop-entry paths into command lines. A
// stale index can reference files that no longer exist; the resolver then
// falls back to a fuzzy match on file names under the applications
// directories.
type Resolver struct {
	dataDirs []string
}

// NewResolver builds a resolver over $XDG_DATA_HOME and $XDG_DATA_DIRS,
// with the conventional defaults when unset.
func NewResolver() *Resolver {
	var dirs []string
	home := os.Getenv("XDG_DATA_HOME")
	if home == "" {
		if userHome, err := os.UserHomeDir(); err == nil {
			home = filepath.Join(userHome, ".local", "share")
		}
	}
	if home != "" {
		dirs = append(dirs, filepath.Join(home, "applications"))
	}
	data := os.Getenv("XDG_DATA_DIRS")
	if data == "" {
		data = "/usr/local/share:/usr/share"
	}
	for _, dir := range strings.Split(data, ":") {
		if dir == "" {
			continue
		}
		dirs = append(dirs, filepath.Join(dir, "applications"))
	}
	return &Resolver{dataDirs: dirs}
}

// NewResolverWithDirs is the test seam for a fixed directory list.
func NewResolverWithDirs(dirs []string) *Resolver {
	return &Resolver{dataDirs: dirs}
}

// Resolve loads the entry at path, falling back to a fuzzy file-name match
// when the path is gone. The second return is false when no executable
// command line can be derived; the caller treats that as a no-op.
func (r *Resolver) Resolve(path string) ([]string, bool) {
	entry, err := LoadEntry(path)
	if err != nil {
		fallback, ok := r.lookup(filepath.Base(path))
		if !ok {
			events.Exec.Unresolvable(path, err.Error())
			return nil, false
		}
		entry, err = LoadEntry(fallback)
		if err != nil {
			events.Exec.Unresolvable(path, err.Error())
			return nil, false
		}
		path = fallback
	}
	argv, ok := entry.CommandLine()
	if !ok {
		events.Exec.Unresolvable(path, "no executable field")
		return nil, false
	}
	events.Exec.Resolved(path, argv)
	return argv, true
}

// lookup fuzzy-matches a desktop file name against the known application
// directories and returns the best-ranked hit.
func (r *Resolver) lookup(name string) (string, bool) {
	target := strings.TrimSuffix(name, ".desktop")
	bestRank := -1
	bestPath := ""
	for _, dir := range r.dataDirs {
		listing, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		names := make([]string, 0, len(listing))
		for _, item := range listing {
			if item.IsDir() || !strings.HasSuffix(item.Name(), ".desktop") {
				continue
			}
			names = append(names, strings.TrimSuffix(item.Name(), ".desktop"))
		}
		for _, rank := range fuzzy.RankFindFold(target, names) {
			if bestRank == -1 || rank.Distance < bestRank {
				bestRank = rank.Distance
				bestPath = filepath.Join(dir, rank.Target+".desktop")
			}
		}
	}
	return bestPath, bestPath != ""
}
