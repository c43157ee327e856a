//go:build !((linux || darwin || windows) && (amd64 || arm64))

package json

import (
	"encoding/json"
	"io"
)

// NewEncoder creates a streaming encoder.
func NewEncoder(w io.Writer) Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}
