package regexp

import "strings"

// pcreOnly lists tokens of PCRE2-only features, based on pcre2syntax. Any of
// them routes a pattern to regexp2.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreOnly = [...]string{
	// Lookarounds
	"(?=", "(?!", "(?<=", "(?<!",
	"(*pla:", "(*positive_lookahead:",
	"(*nla:", "(*negative_lookahead:",
	"(*plb:", "(*positive_lookbehind:",
	"(*nlb:", "(*negative_lookbehind:",
	// Atomic groups
	"(?>", "(*atomic:",
	// Backtracking control verbs
	"(*ACCEPT)", "(*FAIL)", "(*F)", "(*COMMIT)", "(*PRUNE)", "(*SKIP)", "(*THEN)",
	// Branch reset, conditionals, comments
	"(?|", "(?(", "(?#",
	// Recursion and subroutine calls
	"(?R)", "(?P>", "(?&",
	// Named backreferences
	`(?P=`, `\k<`, `\k'`, `\k{`, `\g`,
	// Escapes Go does not accept
	`\h`, `\H`, `\R`, `\X`, `\K`, `\e`, `\o{`, `\N{U+`,
	// Anchors (Go supports ^ and $ only)
	`\G`, `\Z`,
}

// needsPCRE checks if the pattern contains PCRE2-only features.
func needsPCRE(pattern string) bool {
	for _, tok := range pcreOnly {
		if strings.Contains(pattern, tok) {
			return true
		}
	}

	// Numbered backreferences: \1 ... \9.
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' {
			escaped = false
			continue
		}
		if !escaped && i+1 < len(pattern) && pattern[i+1] >= '1' && pattern[i+1] <= '9' {
			return true
		}
		escaped = !escaped
	}

	// NOTE(dwisiswant0): Go supports (?P<name>...), but not (?'name'...) or
	// (?<name>...).
	return !strings.Contains(pattern, "(?P<") &&
		(strings.Contains(pattern, "(?<") || strings.Contains(pattern, "(?'"))
}

// capturesDotRepeat reports whether pattern has a capture group and repeats
// an unescaped dot with * or + outside character classes.
func capturesDotRepeat(pattern string) bool {
	var capture, dotRepeat, inClass bool

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; {
		case c == '\\':
			i++
		case inClass:
			inClass = c != ']'
		case c == '[':
			inClass = true
			if strings.HasPrefix(pattern[i+1:], "^") {
				i++
			}
			if strings.HasPrefix(pattern[i+1:], "]") {
				i++
			}
		case c == '(':
			rest := pattern[i+1:]
			if !strings.HasPrefix(rest, "?") || strings.HasPrefix(rest, "?P<") {
				capture = true
			}
		case c == '.':
			if strings.HasPrefix(pattern[i+1:], "*") || strings.HasPrefix(pattern[i+1:], "+") {
				dotRepeat = true
			}
		}
	}

	return capture && dotRepeat
}

// runeRangeToByte converts a regexp2 rune span into byte offsets of s.
func runeRangeToByte(s string, startRune, length int) (int, int) {
	if startRune < 0 || length < 0 {
		return -1, -1
	}

	start := runeToByteOffset(s, startRune)
	end := start + runeToByteOffset(s[start:], length)
	return start, end
}

func runeToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}

	count := 0
	for i := range s {
		if count == runeIndex {
			return i
		}
		count++
	}

	return len(s)
}
