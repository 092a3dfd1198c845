package events

import "github.com/nimbus-shell/launcher/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Phase(from, to string) {
	logging.Trace("session.phase", map[string]interface{}{"from": from, "to": to})
}

func (SessionTracer) Search(query string) {
	logging.Trace("session.search", map[string]interface{}{"query": query})
}

func (SessionTracer) Activate(index int, id uint32) {
	logging.Trace("session.activate", map[string]interface{}{"index": index, "id": id})
}

func (SessionTracer) IndexOutOfRange(index, size int) {
	logging.Trace("session.index-out-of-range", map[string]interface{}{"index": index, "size": size})
}

func (SessionTracer) MenuOpened(id uint32, options int) {
	logging.Trace("session.menu-open", map[string]interface{}{"id": id, "options": options})
}

func (SessionTracer) MenuClosed(id uint32) {
	logging.Trace("session.menu-close", map[string]interface{}{"id": id})
}

func (SessionTracer) MenuDropped(reason string) {
	logging.Trace("session.menu-drop", map[string]interface{}{"reason": reason})
}

func (SessionTracer) Hide() {
	logging.Trace("session.hide", nil)
}

func (SessionTracer) Fill(text string) {
	logging.Trace("session.fill", map[string]interface{}{"text": text})
}
