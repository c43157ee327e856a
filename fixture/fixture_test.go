package fixture

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestPayloadLengthAndAlphabet(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for _, n := range []int{0, 1, 7, 500, 4096} {
		p := Payload(rng, n)
		if len(p) != n {
			t.Fatalf("len(Payload(%d)) = %d", n, len(p))
		}
		for i := 0; i < len(p); i++ {
			c := p[i]
			if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
				t.Fatalf("Payload(%d)[%d] = %q, not alphanumeric", n, i, c)
			}
		}
	}
}

func TestNewShapes(t *testing.T) {
	f, err := NewSeeded(42, 500, '\'')
	if err != nil {
		t.Fatalf("NewSeeded returned error: %v", err)
	}

	if f.Size() != 500 {
		t.Fatalf("Size() = %d, want 500", f.Size())
	}
	if f.Match != "'"+f.Payload+"'" {
		t.Fatalf("Match is not the quoted payload")
	}
	if f.NoMatch != "'"+f.Payload {
		t.Fatalf("NoMatch is not the left-quoted payload")
	}
	if strings.ContainsRune(f.Payload, '\'') {
		t.Fatalf("payload contains the delimiter")
	}
}

func TestNewSeededDeterministic(t *testing.T) {
	a, _ := NewSeeded(7, 64, '"')
	b, _ := NewSeeded(7, 64, '"')
	c, _ := NewSeeded(8, 64, '"')

	if a.Payload != b.Payload || a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("same seed produced different payloads: %q, %q", a.Payload, b.Payload)
	}
	if a.Payload == c.Payload || a.Fingerprint() == c.Fingerprint() {
		t.Fatalf("different seeds produced the same payload %q", a.Payload)
	}
}

func TestNewRejects(t *testing.T) {
	if _, err := NewSeeded(1, -1, '\''); err == nil {
		t.Fatalf("negative size: expected error")
	}
	if _, err := NewSeeded(1, 10, 'a'); err == nil {
		t.Fatalf("alphanumeric delimiter: expected error")
	}
}
