package regexp

import (
	"strings"
	"unicode/utf8"
)

// rewritePossessive turns every possessive quantifier of pattern into the
// equivalent atomic group: X*+ becomes (?>X*), X{2,5}+ becomes (?>X{2,5}).
// It reports whether any possessive quantifier was found; if none was, the
// pattern is returned unchanged.
//
// Quantifier characters inside character classes and escapes are literal and
// never rewritten. A quantifier with nothing to repeat is copied as is so the
// engine can reject it with its own message.
func rewritePossessive(pattern string) (string, bool) {
	if !strings.Contains(pattern, "+") {
		return pattern, false
	}

	var (
		out    = make([]byte, 0, len(pattern)+8)
		groups []int // output offsets of the open groups
		atom   = -1  // output offset of the last repeatable atom
		found  bool
	)

	for i := 0; i < len(pattern); {
		switch c := pattern[i]; c {
		case '\\':
			n := escapeLen(pattern[i:])
			atom = len(out)
			out = append(out, pattern[i:i+n]...)
			i += n
		case '[':
			n := classLen(pattern[i:])
			atom = len(out)
			out = append(out, pattern[i:i+n]...)
			i += n
		case '(':
			if strings.HasPrefix(pattern[i:], "(?#") {
				n := strings.IndexByte(pattern[i:], ')') + 1
				if n == 0 {
					n = len(pattern) - i
				}
				out = append(out, pattern[i:i+n]...)
				i += n
				continue
			}
			groups = append(groups, len(out))
			out = append(out, c)
			atom = -1
			i++
		case ')':
			out = append(out, c)
			i++
			atom = -1
			if n := len(groups); n > 0 {
				atom = groups[n-1]
				groups = groups[:n-1]
			}
		case '|':
			out = append(out, c)
			atom = -1
			i++
		case '*', '+', '?', '{':
			n := quantifierLen(pattern[i:])
			if n == 0 {
				// A brace that does not form {n}, {n,} or {n,m} is a literal.
				atom = len(out)
				out = append(out, c)
				i++
				continue
			}

			q := pattern[i : i+n]
			i += n
			if atom < 0 {
				out = append(out, q...)
				continue
			}

			switch {
			case i < len(pattern) && pattern[i] == '+':
				body := string(out[atom:])
				out = append(out[:atom], "(?>"...)
				out = append(out, body...)
				out = append(out, q...)
				out = append(out, ')')
				found = true
				i++
			case i < len(pattern) && pattern[i] == '?':
				out = append(out, q...)
				out = append(out, '?')
				i++
			default:
				out = append(out, q...)
			}
			atom = -1
		default:
			_, size := utf8.DecodeRuneInString(pattern[i:])
			atom = len(out)
			out = append(out, pattern[i:i+size]...)
			i += size
		}
	}

	if !found {
		return pattern, false
	}

	return string(out), true
}

// escapeLen returns the byte length of the escape sequence at the start of s,
// which begins with a backslash.
func escapeLen(s string) int {
	if len(s) < 2 {
		return len(s)
	}

	switch s[1] {
	case 'p', 'P', 'x', 'o', 'N':
		if len(s) > 2 && s[2] == '{' {
			if end := strings.IndexByte(s, '}'); end > 0 {
				return end + 1
			}
			return len(s)
		}
		if s[1] == 'p' || s[1] == 'P' {
			// One-letter property class such as \pL.
			return min(3, len(s))
		}
		if s[1] == 'x' {
			return min(4, len(s))
		}
	}

	_, size := utf8.DecodeRuneInString(s[1:])
	return 1 + size
}

// classLen returns the byte length of the character class at the start of s,
// which begins with '['. An unterminated class spans the rest of s.
func classLen(s string) int {
	i := 1
	if i < len(s) && s[i] == '^' {
		i++
	}
	if i < len(s) && s[i] == ']' {
		i++
	}

	for i < len(s) {
		switch s[i] {
		case '\\':
			i += escapeLen(s[i:])
		case '[':
			if end := strings.Index(s[i:], ":]"); i+1 < len(s) && s[i+1] == ':' && end > 0 {
				i += end + 2
				continue
			}
			i++
		case ']':
			return i + 1
		default:
			i++
		}
	}

	return len(s)
}

// quantifierLen returns the byte length of the greedy quantifier at the start
// of s, or 0 if s does not start with one.
func quantifierLen(s string) int {
	if s == "" {
		return 0
	}

	switch s[0] {
	case '*', '+', '?':
		return 1
	case '{':
	default:
		return 0
	}

	i := 1
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if digits == 0 {
		return 0
	}

	if i < len(s) && s[i] == ',' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}

	if i < len(s) && s[i] == '}' {
		return i + 1
	}

	return 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
