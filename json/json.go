//go:build (linux || darwin || windows) && (amd64 || arm64)

package json

import (
	"io"

	"github.com/bytedance/sonic"
)

// DefaultConfig sorts map keys so reports diff cleanly between runs, and
// leaves HTML characters of benchmark names unescaped.
var DefaultConfig = sonic.Config{
	SortMapKeys:      true,
	CompactMarshaler: true,
	ValidateString:   true,
}

var api = DefaultConfig.Froze()

// NewEncoder creates a streaming encoder using DefaultConfig.
func NewEncoder(w io.Writer) Encoder {
	return api.NewEncoder(w)
}
