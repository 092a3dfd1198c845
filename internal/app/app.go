package app

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nimbus-shell/launcher/internal/bridge"
	"github.com/nimbus-shell/launcher/internal/logging"
	"github.com/nimbus-shell/launcher/internal/logging/events"
	"github.com/nimbus-shell/launcher/internal/theme"
	"github.com/nimbus-shell/launcher/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	BackendCommand []string
	ThemePath      string
}

// Run bootstraps and executes the Bubble Tea program. It owns the backend
// bridge lifecycle and the external activation signal.
func Run(cfg Config) error {
	styles, err := theme.Load(cfg.ThemePath)
	if err != nil {
		return err
	}

	b := bridge.New(cfg.BackendCommand)
	if err := b.Start(); err != nil {
		return fmt.Errorf("start backend: %w", err)
	}
	defer b.Stop()

	model := ui.NewModel(b, styles)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	// SIGUSR1 is the activation bus: the shell's keybinding delivers it to
	// toggle the launcher without touching stdin.
	activate := make(chan os.Signal, 1)
	signal.Notify(activate, syscall.SIGUSR1)
	defer signal.Stop(activate)
	go func() {
		for range activate {
			logging.Trace("app.activate-signal", nil)
			program.Send(ui.ActivateMsg{})
		}
	}()

	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err == nil {
		events.App.Exit("program finished")
	}
	return err
}
