package events

import "github.com/nimbus-shell/launcher/internal/logging"

type BridgeTracer struct{}

var Bridge = BridgeTracer{}

func (BridgeTracer) Started(command string) {
	logging.Trace("bridge.start", map[string]interface{}{"command": command})
}

func (BridgeTracer) Request(wire string) {
	logging.Trace("bridge.request", map[string]interface{}{"wire": wire})
}

func (BridgeTracer) Response(kind string) {
	logging.Trace("bridge.response", map[string]interface{}{"kind": kind})
}

func (BridgeTracer) Dropped(reason string) {
	logging.Trace("bridge.drop", map[string]interface{}{"reason": reason})
}

func (BridgeTracer) Malformed(line string, err error) {
	logging.Trace("bridge.malformed", map[string]interface{}{"line": line, "error": err.Error()})
}

func (BridgeTracer) Closed(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("bridge.closed", payload)
}
