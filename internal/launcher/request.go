package launcher

import (
	"encoding/json"
	"fmt"
)

// Request is a message from the session controller to the backend. Requests
// are plain values with no identity; the backend treats the newest Search as
// authoritative.
type Request interface {
	isRequest()
}

// Close asks the backend to reset its session state without exiting.
type Close struct{}

// Exit asks the backend process to terminate.
type Exit struct{}

// Search submits the current input text. Every keystroke issues one.
type Search string

// Activate launches the result with the given backend-scoped id.
type Activate uint32

// Context requests the context-menu options for a result.
type Context uint32

// ActivateContext invokes one context option of one result.
type ActivateContext struct {
	ID     uint32 `json:"id"`
	Option uint32 `json:"context"`
}

func (Close) isRequest()           {}
func (Exit) isRequest()            {}
func (Search) isRequest()          {}
func (Activate) isRequest()        {}
func (Context) isRequest()         {}
func (ActivateContext) isRequest() {}

// EncodeRequest renders a request as its wire form, without a trailing
// newline.
func EncodeRequest(req Request) ([]byte, error) {
	switch r := req.(type) {
	case Close:
		return json.Marshal("Close")
	case Exit:
		return json.Marshal("Exit")
	case Search:
		return json.Marshal(map[string]string{"Search": string(r)})
	case Activate:
		return json.Marshal(map[string]uint32{"Activate": uint32(r)})
	case Context:
		return json.Marshal(map[string]uint32{"Context": uint32(r)})
	case ActivateContext:
		return json.Marshal(map[string]ActivateContext{"ActivateContext": r})
	default:
		return nil, fmt.Errorf("encode request: unsupported type %T", req)
	}
}
