package regexp

import (
	"fmt"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Engine identifies the backend a [Regexp] was compiled with.
type Engine uint8

const (
	// EngineCore is coregex, an RE2-compatible automaton engine.
	EngineCore Engine = iota + 1

	// EnginePCRE is regexp2, a backtracking engine with Perl/.NET syntax.
	EnginePCRE
)

// String returns the library name of the engine.
func (e Engine) String() string {
	switch e {
	case EngineCore:
		return "coregex"
	case EnginePCRE:
		return "regexp2"
	default:
		return fmt.Sprintf("Engine(%d)", uint8(e))
	}
}

// CompileError reports a pattern that the selected engine refused to
// compile.
type CompileError struct {
	Pattern string
	Engine  Engine
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("regexp: compiling %q with %s: %v", e.Pattern, e.Engine, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Regexp is a compiled regular expression that delegates to either coregex
// (fast, RE2-compatible) or regexp2 (backtracking, Perl-compatible) depending
// on the pattern features detected at compile time.
type Regexp struct {
	pattern string
	expr    string
	core    *coregex.Regex
	pcre    *regexp2.Regexp
}

// Compile parses a regular expression and returns a compiled Regexp.
//
// Possessive quantifiers (X*+, X++, X?+, X{n,m}+) are rewritten into atomic
// groups, (?>X*) and so on, and compiled with regexp2 together with every
// other pattern that needs Perl-only features (see needsPCRE). Capturing
// patterns with a dot repetition also go to regexp2: coregex reports wrong
// group bounds for them, e.g. '(.*?)' on 'abc' captures "abc'". Everything
// else uses coregex.
func Compile(pattern string) (*Regexp, error) {
	expr, possessive := rewritePossessive(pattern)

	if possessive || needsPCRE(pattern) || capturesDotRepeat(pattern) {
		re, err := regexp2.Compile(expr, regexp2.None)
		if err != nil {
			return nil, &CompileError{Pattern: pattern, Engine: EnginePCRE, Err: err}
		}
		return &Regexp{pattern: pattern, expr: expr, pcre: re}, nil
	}

	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Engine: EngineCore, Err: err}
	}

	return &Regexp{pattern: pattern, expr: pattern, core: re}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// QuoteMeta escapes all regular expression metacharacters in s.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// String returns the source pattern used to compile the Regexp.
func (r *Regexp) String() string {
	return r.pattern
}

// Expr returns the expression handed to the engine. It differs from String
// only when possessive quantifiers were rewritten.
func (r *Regexp) Expr() string {
	return r.expr
}

// Engine reports which backend executes the Regexp.
func (r *Regexp) Engine() Engine {
	if r.core != nil {
		return EngineCore
	}
	return EnginePCRE
}

// Match reports whether the byte slice b contains any match of the Regexp.
func (r *Regexp) Match(b []byte) bool {
	if r.core != nil {
		return r.core.Match(b)
	}

	matched, err := r.pcre.MatchString(string(b))
	return err == nil && matched
}

// MatchString reports whether the string s contains any match of the Regexp.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// FindStringSubmatch returns the leftmost match of the Regexp in s and its
// submatches as strings. A nil result indicates no match.
func (r *Regexp) FindStringSubmatch(s string) []string {
	if r.core != nil {
		return r.core.FindStringSubmatch(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return groupsToStrings(m.Groups())
}

// FindStringSubmatchIndex returns the byte index pairs identifying the
// leftmost match of the Regexp in s and its submatches. Unmatched groups are
// reported as -1, -1.
func (r *Regexp) FindStringSubmatchIndex(s string) []int {
	if r.core != nil {
		return r.core.FindStringSubmatchIndex(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return groupsToIndexes(s, m.Groups())
}

// NumSubexp returns the number of parenthesized subexpressions in this Regexp.
// Atomic groups introduced by the possessive rewrite do not capture and are
// not counted.
func (r *Regexp) NumSubexp() int {
	if r.core != nil {
		// coregex counts the whole match as a group.
		return max(r.core.NumSubexp()-1, 0)
	}

	n := 0
	for _, v := range r.pcre.GetGroupNumbers() {
		n = max(n, v)
	}
	return n
}

func groupsToStrings(groups []regexp2.Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		if len(g.Captures) == 0 {
			continue
		}
		out[i] = g.String()
	}
	return out
}

func groupsToIndexes(s string, groups []regexp2.Group) []int {
	out := make([]int, 0, len(groups)*2)
	for _, g := range groups {
		if len(g.Captures) == 0 {
			out = append(out, -1, -1)
			continue
		}
		start, end := runeRangeToByte(s, g.Index, g.Length)
		out = append(out, start, end)
	}
	return out
}
