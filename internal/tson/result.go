package tson

import (
	"encoding/json"

	"github.com/Skyvern-AI/skyvern-sub008/internal/ctyconv"
)

// Result is the discriminated outcome shape the configuration editor
// consumes: {"success":true,"data":...} or {"success":false,"error":"..."}.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Check parses text and folds the outcome into a Result. The error string
// carries the taxonomy substring ("Unclosed", "Unmatched", or the
// strict-JSON violation) so callers can classify without a structured
// code.
func Check(text string) Result {
	v, err := Parse(text)
	if err != nil {
		return Result{Success: false, Error: err.Error()}
	}
	native, err := ctyconv.ToNative(v)
	if err != nil {
		return Result{Success: false, Error: err.Error()}
	}
	return Result{Success: true, Data: native}
}

// MarshalJSON emits the editor wire shape, keeping the data field present
// even when the parsed value is null.
func (r Result) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return json.Marshal(struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}{false, r.Error})
	}
	return json.Marshal(struct {
		Success bool `json:"success"`
		Data    any  `json:"data"`
	}{true, r.Data})
}
