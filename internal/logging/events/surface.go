package events

import "github.com/nimbus-shell/launcher/internal/logging"

type SurfaceTracer struct{}

var Surface = SurfaceTracer{}

func (SurfaceTracer) Created(kind string, id uint32) {
	logging.Trace("surface.create", map[string]interface{}{"kind": kind, "id": id})
}

func (SurfaceTracer) Destroyed(kind string, id uint32) {
	logging.Trace("surface.destroy", map[string]interface{}{"kind": kind, "id": id})
}

func (SurfaceTracer) Rejected(kind, reason string) {
	logging.Trace("surface.reject", map[string]interface{}{"kind": kind, "reason": reason})
}
