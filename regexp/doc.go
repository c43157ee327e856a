// Package regexp selects a regex engine for a pattern.
//
// By default it compiles patterns with coregex (an accelerated RE2-compatible
// engine). When the pattern requires PCRE/Perl features that RE2/coregex
// cannot execute, the package falls back to [regexp2], a backtracking engine.
//
// Possessive quantifiers are one of those features. Neither engine accepts
// the X*+ spelling, so Compile rewrites it into the equivalent atomic group
// (?>X*) before handing the pattern to regexp2. [Regexp.String] keeps the
// pattern as written; [Regexp.Expr] shows what the engine received.
//
// Capturing patterns that repeat a dot, such as '(.*?)', also run on regexp2
// because coregex reports wrong submatch bounds for them.
package regexp
