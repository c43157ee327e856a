package pattern

import (
	"strings"
	"testing"

	"go.dw1.io/regexbench/regexp"
)

func mustCompile(t *testing.T, delim rune) *Set {
	t.Helper()

	s, err := Compile(delim)
	if err != nil {
		t.Fatalf("Compile(%q) returned error: %v", delim, err)
	}
	return s
}

func TestSource(t *testing.T) {
	tests := []struct {
		f    Family
		v    Variant
		want string
	}{
		{Capturing, Greedy, `'([^']*)'`},
		{Capturing, Possessive, `'([^']*+)'`},
		{Capturing, NonGreedy, `'(.*?)'`},
		{NonCapturing, Greedy, `'[^']*'`},
		{NonCapturing, Possessive, `'[^']*+'`},
		{NonCapturing, NonGreedy, `'.*?'`},
	}

	for _, tt := range tests {
		if got := Source(tt.f, tt.v, '\''); got != tt.want {
			t.Fatalf("Source(%s, %s) = %q, want %q", tt.f, tt.v, got, tt.want)
		}
	}
}

func TestSourceEscapesDelimiter(t *testing.T) {
	if got, want := Source(Capturing, Greedy, '^'), `\^([^\^]*)\^`; got != want {
		t.Fatalf("Source with ^ = %q, want %q", got, want)
	}
	if got, want := Source(NonCapturing, Possessive, '|'), `\|[^|]*+\|`; got != want {
		t.Fatalf("Source with | = %q, want %q", got, want)
	}
}

func TestCompileAll(t *testing.T) {
	for _, delim := range []rune{'\'', '"', '|', '^', '\\', '-', ']'} {
		s, err := Compile(delim)
		if err != nil {
			t.Fatalf("Compile(%q) returned error: %v", delim, err)
		}
		if s.Delimiter() != delim {
			t.Fatalf("Delimiter() = %q, want %q", s.Delimiter(), delim)
		}

		d := string(delim)
		for _, f := range Families {
			for _, v := range Variants {
				re := s.Get(f, v)
				if re == nil {
					t.Fatalf("Get(%s, %s) = nil", f, v)
				}
				if !re.MatchString(d + "abc" + d) {
					t.Fatalf("%s/%s for %q: expected match", f, v, delim)
				}
				if re.MatchString(d + "abc") {
					t.Fatalf("%s/%s for %q: unexpected match", f, v, delim)
				}
			}
		}
	}
}

func TestCompileIdempotent(t *testing.T) {
	a, b := mustCompile(t, '\''), mustCompile(t, '\'')

	inputs := []string{"'abc'", "'abc", "", "x'y'z", "''"}
	for _, f := range Families {
		for _, v := range Variants {
			ra, rb := a.Get(f, v), b.Get(f, v)
			if ra.Engine() != rb.Engine() || ra.Expr() != rb.Expr() {
				t.Fatalf("%s/%s: compiled twice to {%s %q} and {%s %q}", f, v, ra.Engine(), ra.Expr(), rb.Engine(), rb.Expr())
			}
			for _, in := range inputs {
				if ra.MatchString(in) != rb.MatchString(in) {
					t.Fatalf("%s/%s: matchers disagree on %q", f, v, in)
				}
			}
		}
	}
}

func TestEngines(t *testing.T) {
	s := mustCompile(t, '\'')

	for _, f := range Families {
		for _, v := range Variants {
			want := regexp.EngineCore
			if v == Possessive || (f == Capturing && v == NonGreedy) {
				want = regexp.EnginePCRE
			}
			if got := s.Get(f, v).Engine(); got != want {
				t.Fatalf("%s/%s engine = %s, want %s", f, v, got, want)
			}
		}
	}
}

func TestCapturesExcludeDelimiter(t *testing.T) {
	for _, delim := range []rune{'\'', '"', '|', '^', '\\', '-', ']'} {
		s := mustCompile(t, delim)
		d := string(delim)

		for _, v := range Variants {
			m := s.Get(Capturing, v).FindStringSubmatch(d + "abc" + d)
			if len(m) != 2 || m[1] != "abc" {
				t.Fatalf("capturing/%s for %q captured %q, want \"abc\"", v, delim, m)
			}
		}
	}
}

func TestCapturingSubexp(t *testing.T) {
	s := mustCompile(t, '\'')

	for _, v := range Variants {
		if n := s.Get(Capturing, v).NumSubexp(); n != 1 {
			t.Fatalf("capturing/%s NumSubexp = %d, want 1", v, n)
		}
		if n := s.Get(NonCapturing, v).NumSubexp(); n != 0 {
			t.Fatalf("non-capturing/%s NumSubexp = %d, want 0", v, n)
		}
	}
}

func TestNames(t *testing.T) {
	var names []string
	for _, f := range Families {
		for _, v := range Variants {
			names = append(names, f.String()+"/"+v.String())
		}
	}

	want := "capturing/normal capturing/possessive capturing/non-greedy " +
		"non-capturing/normal non-capturing/possessive non-capturing/non-greedy"
	if got := strings.Join(names, " "); got != want {
		t.Fatalf("names = %q, want %q", got, want)
	}
	if got := Variant(7).String(); got != "Variant(7)" {
		t.Fatalf("Variant(7).String() = %q", got)
	}
	if got := Family(7).String(); got != "Family(7)" {
		t.Fatalf("Family(7).String() = %q", got)
	}
}
