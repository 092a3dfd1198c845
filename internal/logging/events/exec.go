package events

import "github.com/nimbus-shell/launcher/internal/logging"

type ExecTracer struct{}

var Exec = ExecTracer{}

func (ExecTracer) Resolved(path string, argv []string) {
	logging.Trace("exec.resolve", map[string]interface{}{"path": path, "argv": argv})
}

func (ExecTracer) Unresolvable(path, reason string) {
	logging.Trace("exec.unresolvable", map[string]interface{}{"path": path, "reason": reason})
}

func (ExecTracer) Spawned(argv []string, token bool) {
	logging.Trace("exec.spawn", map[string]interface{}{"argv": argv, "token": token})
}

func (ExecTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("exec.error", map[string]interface{}{"error": err.Error()})
}
