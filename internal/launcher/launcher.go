// Package launcher defines the typed request/response protocol spoken with
// the external search backend. Messages travel as one JSON document per line:
// unit variants encode as bare strings ("Close"), payload variants as a
// single-key object ({"Search":"firefox"}). Responses carry no correlation
// ids; callers infer context from their own most recent request.
package launcher

import (
	"encoding/json"
	"fmt"
)

// SearchResult is one ranked entry in a backend update. Results are immutable
// once decoded and replaced wholesale on every Update response.
type SearchResult struct {
	ID           uint32      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Icon         *IconSource `json:"icon,omitempty"`
	CategoryIcon *IconSource `json:"category_icon,omitempty"`
	Window       *[2]uint32  `json:"window,omitempty"`
	Exec         *string     `json:"exec,omitempty"`
}

// Windowed reports whether the result refers to an already-open window.
func (r SearchResult) Windowed() bool {
	return r.Window != nil
}

// ContextOption is a single entry of a result's context menu.
type ContextOption struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

// IconSource names an icon either by theme name or by mime type.
type IconSource struct {
	Name string
	Mime string
}

func (s IconSource) MarshalJSON() ([]byte, error) {
	if s.Mime != "" {
		return json.Marshal(map[string]string{"Mime": s.Mime})
	}
	return json.Marshal(map[string]string{"Name": s.Name})
}

func (s *IconSource) UnmarshalJSON(data []byte) error {
	var tagged map[string]string
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("icon source: %w", err)
	}
	if name, ok := tagged["Name"]; ok {
		s.Name = name
		return nil
	}
	if mime, ok := tagged["Mime"]; ok {
		s.Mime = mime
		return nil
	}
	return fmt.Errorf("icon source: unknown variant in %s", data)
}

// Value returns the icon reference regardless of variant.
func (s IconSource) Value() string {
	if s.Mime != "" {
		return s.Mime
	}
	return s.Name
}
