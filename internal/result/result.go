// Package result holds the pure transformation applied to every raw backend
// update before it reaches the session state and the view.
package result

import (
	"github.com/nimbus-shell/launcher/internal/launcher"
)

// MaxVisible caps the stored result list. Insertion order is rank order.
const MaxVisible = 10

// Rank stable-partitions a raw update so results tied to an existing window
// come first, preserving the relative order inside each group, then truncates
// to MaxVisible entries. The input slice is not modified.
func Rank(list []launcher.SearchResult) []launcher.SearchResult {
	ranked := make([]launcher.SearchResult, 0, len(list))
	for _, item := range list {
		if item.Windowed() {
			ranked = append(ranked, item)
		}
	}
	for _, item := range list {
		if !item.Windowed() {
			ranked = append(ranked, item)
		}
	}
	if len(ranked) > MaxVisible {
		ranked = ranked[:MaxVisible]
	}
	return ranked
}
