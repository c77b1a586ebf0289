// Package match implements affix and exception matching for identifier
// names. Matchers are built once from configuration and reused across
// every identifier in a run.
package match

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher matches a configured affix or exception against identifier
// text. It is either a literal string, compared for exact equality, or a
// compiled regular expression, matched anywhere in the text. Matchers
// are immutable after construction.
type Matcher struct {
	literal string
	re      *regexp.Regexp
}

// Literal returns a matcher comparing against s for exact equality.
func Literal(s string) Matcher {
	return Matcher{literal: s}
}

// Pattern returns a matcher backed by a compiled regular expression.
func Pattern(re *regexp.Regexp) Matcher {
	return Matcher{re: re}
}

// Compile builds a pattern matcher from a pattern string and a set of
// JavaScript-style flags. The i, m and s flags map to the Go inline
// equivalents; u is a no-op since Go patterns are UTF-8 native. Any
// other flag, or a pattern that does not compile, yields a
// *PatternError.
func Compile(pattern, flags string) (Matcher, error) {
	var inline strings.Builder
	for _, flag := range flags {
		switch flag {
		case 'i', 'm', 's':
			inline.WriteRune(flag)
		case 'u':
		default:
			return Matcher{}, &PatternError{Pattern: pattern, Err: fmt.Errorf("unsupported flag %q", string(flag))}
		}
	}
	expr := pattern
	if inline.Len() > 0 {
		expr = "(?" + inline.String() + ")" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return Matcher{}, &PatternError{Pattern: pattern, Err: err}
	}
	return Pattern(re), nil
}

// IsPattern reports whether the matcher is backed by a regular
// expression.
func (m Matcher) IsPattern() bool {
	return m.re != nil
}

// String returns the literal text or the pattern source.
func (m Matcher) String() string {
	if m.re != nil {
		return m.re.String()
	}
	return m.literal
}

// Matches reports whether the matcher accepts value: exact equality for
// a literal, a match anywhere in value for a pattern.
func (m Matcher) Matches(value string) bool {
	if m.re != nil {
		return m.re.MatchString(value)
	}
	return m.literal == value
}

// StripPrefix removes the matcher from the front of value. A literal
// must be a proper prefix leaving a non-empty remainder; a pattern must
// match starting at the first byte. The second result reports whether a
// strip occurred.
func (m Matcher) StripPrefix(value string) (string, bool) {
	if m.re != nil {
		loc := m.re.FindStringIndex(value)
		if loc == nil || loc[0] != 0 {
			return value, false
		}
		return value[loc[1]:], true
	}
	if len(m.literal) >= len(value) || !strings.HasPrefix(value, m.literal) {
		return value, false
	}
	return value[len(m.literal):], true
}

// StripSuffix removes the matcher from the end of value. A literal must
// be a proper suffix leaving a non-empty remainder; a pattern match must
// extend to the final byte.
func (m Matcher) StripSuffix(value string) (string, bool) {
	if m.re != nil {
		locs := m.re.FindAllStringIndex(value, -1)
		if n := len(locs); n > 0 && locs[n-1][1] == len(value) {
			return value[:locs[n-1][0]], true
		}
		return value, false
	}
	if len(m.literal) >= len(value) || !strings.HasSuffix(value, m.literal) {
		return value, false
	}
	return value[:len(value)-len(m.literal)], true
}

// StripFirstMatchingPrefix applies the first matcher able to strip a
// prefix from value, in declaration order, and returns value unchanged
// when none applies. At most one prefix is consumed.
func StripFirstMatchingPrefix(value string, matchers []Matcher) string {
	for _, m := range matchers {
		if stripped, ok := m.StripPrefix(value); ok {
			return stripped
		}
	}
	return value
}

// StripFirstMatchingSuffix is the trailing-edge analogue of
// StripFirstMatchingPrefix.
func StripFirstMatchingSuffix(value string, matchers []Matcher) string {
	for _, m := range matchers {
		if stripped, ok := m.StripSuffix(value); ok {
			return stripped
		}
	}
	return value
}

// AnyMatches reports whether any matcher accepts value. An empty or nil
// matcher list matches nothing.
func AnyMatches(value string, matchers []Matcher) bool {
	for _, m := range matchers {
		if m.Matches(value) {
			return true
		}
	}
	return false
}
