package events

import "github.com/nimbus-shell/launcher/internal/logging"

type InputTracer struct{}

var Input = InputTracer{}

func (InputTracer) Key(key, action string) {
	logging.Trace("input.key", map[string]interface{}{"key": key, "action": action})
}

func (InputTracer) Pointer(x, y int) {
	logging.Trace("input.pointer", map[string]interface{}{"x": x, "y": y})
}

func (InputTracer) Changed(text string) {
	logging.Trace("input.changed", map[string]interface{}{"text": text})
}
