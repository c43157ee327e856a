// Package pattern builds the fixed set of single-quoted-string patterns the
// benchmarks compare: three quantifier variants, each with and without a
// capture group.
package pattern

import (
	"fmt"

	"go.dw1.io/regexbench/regexp"
)

// Family separates patterns that capture the quoted body from their
// non-capturing controls.
type Family uint8

const (
	Capturing Family = iota
	NonCapturing
)

// Families lists every family in reporting order.
var Families = [...]Family{Capturing, NonCapturing}

func (f Family) String() string {
	switch f {
	case Capturing:
		return "capturing"
	case NonCapturing:
		return "non-capturing"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// Variant is the quantifier strategy used for the quoted body.
type Variant uint8

const (
	// Greedy matches the body with a negated class, [^']*.
	Greedy Variant = iota
	// Possessive is Greedy without backtracking, [^']*+.
	Possessive
	// NonGreedy matches any character lazily, .*?.
	NonGreedy
)

// Variants lists every variant in reporting order.
var Variants = [...]Variant{Greedy, Possessive, NonGreedy}

// String returns the benchmark ID of the variant.
func (v Variant) String() string {
	switch v {
	case Greedy:
		return "normal"
	case Possessive:
		return "possessive"
	case NonGreedy:
		return "non-greedy"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// Source returns the pattern of family f and variant v for strings quoted
// with delim.
func Source(f Family, v Variant, delim rune) string {
	d := regexp.QuoteMeta(string(delim))

	var body string
	switch v {
	case Greedy:
		body = "[^" + classEscape(delim) + "]*"
	case Possessive:
		body = "[^" + classEscape(delim) + "]*+"
	case NonGreedy:
		body = ".*?"
	}

	if f == Capturing {
		body = "(" + body + ")"
	}

	return d + body + d
}

// classEscape escapes delim for use inside a character class.
func classEscape(delim rune) string {
	switch delim {
	case '\\', ']', '[', '^', '-':
		return `\` + string(delim)
	}
	return string(delim)
}

// Set holds the six compiled patterns. It is immutable once built and safe
// for concurrent use.
type Set struct {
	delim rune
	re    [len(Families)][len(Variants)]*regexp.Regexp
}

// Compile compiles every pattern for delim. It fails on the first pattern
// that does not compile; the error names that pattern.
func Compile(delim rune) (*Set, error) {
	s := &Set{delim: delim}
	for _, f := range Families {
		for _, v := range Variants {
			src := Source(f, v, delim)
			re, err := regexp.Compile(src)
			if err != nil {
				return nil, fmt.Errorf("pattern %s/%s: %w", f, v, err)
			}
			s.re[f][v] = re
		}
	}
	return s, nil
}

// Delimiter returns the quote character the set was built for.
func (s *Set) Delimiter() rune { return s.delim }

// Get returns the compiled pattern of family f and variant v.
func (s *Set) Get(f Family, v Variant) *regexp.Regexp {
	return s.re[f][v]
}
