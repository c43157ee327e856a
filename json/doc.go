// Package json encodes benchmark reports.
//
// On the platforms supported by [sonic] it uses sonic's JIT encoder; elsewhere
// it falls back to encoding/json with the same behavior: map keys sorted and
// HTML characters left unescaped.
package json

// Encoder is a streaming JSON encoder.
type Encoder interface {
	Encode(v any) error
	SetIndent(prefix, indent string)
}
