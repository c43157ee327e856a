// Package fixture generates the benchmark inputs: a random alphanumeric
// payload wrapped in a delimiter on both sides (always matches) or on the
// left only (never matches).
package fixture

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"go.dw1.io/regexbench/internal/wyhash"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Fixtures is one generated set of inputs. The strings are never modified
// after New returns.
type Fixtures struct {
	// Payload is the random body, without delimiters.
	Payload string
	// Match is delim + Payload + delim.
	Match string
	// NoMatch is delim + Payload, missing the closing delimiter.
	NoMatch string
}

// Payload returns n random characters from [A-Za-z0-9].
func Payload(rng *rand.Rand, n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(alphanumeric[rng.IntN(len(alphanumeric))])
	}
	return b.String()
}

// New builds the fixtures for a payload of size characters quoted with
// delim. The delimiter must not be alphanumeric, or it could appear in the
// payload.
func New(rng *rand.Rand, size int, delim rune) (*Fixtures, error) {
	if size < 0 {
		return nil, fmt.Errorf("fixture: negative size %d", size)
	}
	if strings.ContainsRune(alphanumeric, delim) {
		return nil, fmt.Errorf("fixture: delimiter %q is alphanumeric", delim)
	}

	payload := Payload(rng, size)
	d := string(delim)

	return &Fixtures{
		Payload: payload,
		Match:   d + payload + d,
		NoMatch: d + payload,
	}, nil
}

// NewSeeded is New with a PCG source seeded by seed. The same seed always
// yields the same payload.
func NewSeeded(seed uint64, size int, delim rune) (*Fixtures, error) {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), size, delim)
}

// Fingerprint returns a 64-bit hash of the payload, printed in reports so
// runs can be checked for identical inputs.
func (f *Fixtures) Fingerprint() uint64 {
	return wyhash.Sum64String(f.Payload)
}

// Size returns the payload length.
func (f *Fixtures) Size() int { return len(f.Payload) }
