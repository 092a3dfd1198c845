package launcher

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Response is a message from the backend to the session controller,
// delivered in backend emission order.
type Response interface {
	isResponse()
}

// Update replaces the entire result list.
type Update []SearchResult

// Fill asks the front-end to replace the input text, typically for tab
// completion.
type Fill string

// Closed tells the front-end to hide itself.
type Closed struct{}

// DesktopEntry asks the front-end to launch the application described by a
// desktop-entry file.
type DesktopEntry struct {
	Path          string  `json:"path"`
	GpuPreference *string `json:"gpu_preference,omitempty"`
}

// ContextMenu carries the options for a previously requested context menu.
// It is assumed to answer the most recent Context request.
type ContextMenu struct {
	ID      uint32          `json:"id"`
	Options []ContextOption `json:"options"`
}

func (Update) isResponse()       {}
func (Fill) isResponse()         {}
func (Closed) isResponse()       {}
func (DesktopEntry) isResponse() {}
func (ContextMenu) isResponse()  {}

// DecodeResponse parses one line of backend output. Lines that are valid
// JSON but name no known variant are rejected so the transport layer can log
// and skip them.
func DecodeResponse(line []byte) (Response, error) {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("decode response: empty line")
	}
	if trimmed[0] == '"' {
		var unit string
		if err := json.Unmarshal(trimmed, &unit); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		if unit == "Close" {
			return Closed{}, nil
		}
		return nil, fmt.Errorf("decode response: unknown variant %q", unit)
	}

	var tagged struct {
		Update       *Update       `json:"Update"`
		Fill         *Fill         `json:"Fill"`
		DesktopEntry *DesktopEntry `json:"DesktopEntry"`
		Context      *ContextMenu  `json:"Context"`
	}
	if err := json.Unmarshal(trimmed, &tagged); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	switch {
	case tagged.Update != nil:
		return *tagged.Update, nil
	case tagged.Fill != nil:
		return *tagged.Fill, nil
	case tagged.DesktopEntry != nil:
		return *tagged.DesktopEntry, nil
	case tagged.Context != nil:
		return *tagged.Context, nil
	default:
		return nil, fmt.Errorf("decode response: unknown variant in %s", trimmed)
	}
}
