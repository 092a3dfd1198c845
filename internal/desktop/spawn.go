package desktop

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/nimbus-shell/launcher/internal/logging/events"
)

// Spawn starts the resolved command line as a detached process. When a token
// is provided, both activation environment variables are injected so the new
// window may raise itself.
func Spawn(argv []string, token string) error {
	if len(argv) == 0 {
		return fmt.Errorf("spawn: empty command line")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = os.Environ()
	if token != "" {
		cmd.Env = append(cmd.Env,
			"XDG_ACTIVATION_TOKEN="+token,
			"DESKTOP_STARTUP_ID="+token,
		)
	}
	if err := cmd.Start(); err != nil {
		events.Exec.Error(err)
		return fmt.Errorf("spawn %s: %w", argv[0], err)
	}
	events.Exec.Spawned(argv, token != "")
	// The child outlives the launcher; release it so it is never reaped
	// through us.
	return cmd.Process.Release()
}
