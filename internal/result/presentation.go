package result

import (
	"github.com/mattn/go-runewidth"

	"github.com/nimbus-shell/launcher/internal/launcher"
)

const (
	primaryWidth   = 45
	secondaryWidth = 60
)

// Presentation is the display form of a single result row.
type Presentation struct {
	Primary   string
	Secondary string
	Icon      string
	Category  string
}

// Present derives row text from a result. Windowed results swap name and
// description so the window title leads. The primary line is clipped to 45
// cells with an ellipsis marker, the secondary to 60 cells without one.
func Present(item launcher.SearchResult) Presentation {
	primary, secondary := item.Name, item.Description
	if item.Windowed() {
		primary, secondary = secondary, primary
	}
	p := Presentation{
		Primary:   clip(primary, primaryWidth, "..."),
		Secondary: clip(secondary, secondaryWidth, ""),
	}
	if item.Icon != nil {
		p.Icon = item.Icon.Value()
	}
	if item.CategoryIcon != nil {
		p.Category = item.CategoryIcon.Value()
	}
	return p
}

func clip(s string, width int, marker string) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "") + marker
}
