package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nimbus-shell/launcher/internal/result"
	"github.com/nimbus-shell/launcher/internal/session"
)

const panelContentWidth = 72

// View implements tea.Model. A hidden session renders nothing; the terminal
// behind the launcher shows through, the closest a terminal gets to a
// destroyed layer surface.
func (m *Model) View() string {
	state := m.controller.State()
	if state.Phase() == session.PhaseHidden || state.Phase() == session.PhaseAwaitingResult {
		return ""
	}

	lines := make([]string, 0, 4+len(state.Results)*3)
	lines = append(lines, m.input.View(), "")
	lines = append(lines, m.resultLines(state)...)

	panel := m.styles.Panel.Render(strings.Join(lines, "\n"))
	if state.Menu == nil {
		return panel
	}
	return lipgloss.JoinVertical(lipgloss.Left, panel, m.menuView(state.Menu))
}

func (m *Model) resultLines(state *session.State) []string {
	if len(state.Results) == 0 {
		return []string{m.styles.Secondary.Render("No results")}
	}
	lines := make([]string, 0, len(state.Results)*3)
	for i, item := range state.Results {
		if i > 0 {
			lines = append(lines, m.styles.Divider.Render(strings.Repeat("─", panelContentWidth)))
		}
		p := result.Present(item)
		lines = append(lines, m.resultRow(i, p), m.secondaryRow(p))
	}
	return lines
}

func (m *Model) resultRow(index int, p result.Presentation) string {
	primaryStyle := m.styles.Primary
	if index == m.cursor {
		primaryStyle = m.styles.Selected
	}
	primary := p.Primary
	if p.Icon != "" {
		primary = p.Icon + "  " + primary
	}
	hint := m.styles.Hint.Render(fmt.Sprintf("Ctrl + %d", (index+1)%10))
	body := primaryStyle.Render(primary)
	pad := panelContentWidth - lipgloss.Width(body) - lipgloss.Width(hint)
	if pad < 1 {
		pad = 1
	}
	return body + strings.Repeat(" ", pad) + hint
}

func (m *Model) secondaryRow(p result.Presentation) string {
	if p.Secondary == "" {
		return ""
	}
	return "  " + m.styles.Secondary.Render(p.Secondary)
}

func (m *Model) menuView(menu *session.Menu) string {
	lines := make([]string, 0, len(menu.Options))
	for i, opt := range menu.Options {
		style := m.styles.MenuOption
		if i == m.menuCursor {
			style = m.styles.MenuSelected
		}
		lines = append(lines, style.Render(opt.Name))
	}
	return m.styles.Menu.Render(strings.Join(lines, "\n"))
}
