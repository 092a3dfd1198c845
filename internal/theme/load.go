package theme

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	toml "github.com/pelletier/go-toml/v2"
)

// Overrides is the on-disk theme description. Every field is an ANSI color
// reference; empty fields keep the default.
type Overrides struct {
	Panel struct {
		Border string `toml:"border"`
	} `toml:"panel"`
	Results struct {
		Primary   string `toml:"primary"`
		Secondary string `toml:"secondary"`
		Selected  string `toml:"selected"`
		Hint      string `toml:"hint"`
	} `toml:"results"`
	Menu struct {
		Border string `toml:"border"`
		Option string `toml:"option"`
	} `toml:"menu"`
}

// Load reads a TOML theme file and applies it over the defaults. A missing
// path is not an error; the defaults stand.
func Load(path string) (*Styles, error) {
	styles := defaultStyles
	if path == "" {
		return &styles, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &styles, nil
		}
		return nil, fmt.Errorf("load theme: %w", err)
	}
	var o Overrides
	if err := toml.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	apply(&styles, o)
	return &styles, nil
}

func apply(styles *Styles, o Overrides) {
	if o.Panel.Border != "" {
		styles.Panel = ptr(styles.Panel.BorderForeground(lipgloss.Color(o.Panel.Border)))
	}
	if o.Results.Primary != "" {
		styles.Primary = ptr(styles.Primary.Foreground(lipgloss.Color(o.Results.Primary)))
	}
	if o.Results.Secondary != "" {
		styles.Secondary = ptr(styles.Secondary.Foreground(lipgloss.Color(o.Results.Secondary)))
	}
	if o.Results.Selected != "" {
		styles.Selected = ptr(styles.Selected.Background(lipgloss.Color(o.Results.Selected)))
	}
	if o.Results.Hint != "" {
		styles.Hint = ptr(styles.Hint.Foreground(lipgloss.Color(o.Results.Hint)))
	}
	if o.Menu.Border != "" {
		styles.Menu = ptr(styles.Menu.BorderForeground(lipgloss.Color(o.Menu.Border)))
	}
	if o.Menu.Option != "" {
		styles.MenuOption = ptr(styles.MenuOption.Foreground(lipgloss.Color(o.Menu.Option)))
	}
}
