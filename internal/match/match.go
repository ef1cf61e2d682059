package match

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Matches reports whether encoded begins with target.
// With ignoreCase both sides are ASCII-lowercased before comparison.
// An empty target matches every input.
func Matches(encoded, target string, ignoreCase bool) bool {
	if !ignoreCase {
		return strings.HasPrefix(encoded, target)
	}
	return New(target, true).Match(encoded)
}

// Matcher is a prefix predicate with its target normalized once up front.
// Safe for concurrent use; it holds no mutable state.
type Matcher struct {
	target     string // Lowercased when ignoreCase is set
	ignoreCase bool
}

// New builds a Matcher for target. When ignoreCase is set the target is
// folded here so that Match only has to fold the encoded side.
func New(target string, ignoreCase bool) Matcher {
	if ignoreCase {
		target = Fold(target)
	}
	return Matcher{target: target, ignoreCase: ignoreCase}
}

// Target returns the normalized target.
func (m Matcher) Target() string {
	return m.target
}

// Match reports whether encoded begins with the target.
// The case-insensitive path folds byte by byte and does not allocate.
func (m Matcher) Match(encoded string) bool {
	if len(encoded) < len(m.target) {
		return false
	}
	if !m.ignoreCase {
		return encoded[:len(m.target)] == m.target
	}
	for i := 0; i < len(m.target); i++ {
		if lower(encoded[i]) != m.target[i] {
			return false
		}
	}
	return true
}

// Fold lowercases the ASCII letters of s and leaves every other byte alone.
func Fold(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				b[j] = lower(b[j])
			}
			return string(b)
		}
	}
	return s
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Unreachable returns the distinct characters of target that can never appear
// in a string drawn from alphabet, sorted. With ignoreCase a character is
// reachable when either of its ASCII cases is in the alphabet.
//
// A non-empty result means the search can never succeed. Callers use it to
// warn; the target is still searched.
func Unreachable(target, alphabet string, ignoreCase bool) []rune {
	symbols := []rune(alphabet)
	var missing []rune
	for _, r := range target {
		if slices.Contains(symbols, r) {
			continue
		}
		if ignoreCase && r < 0x80 {
			c := byte(r)
			if slices.Contains(symbols, rune(lower(c))) || slices.Contains(symbols, rune(upper(c))) {
				continue
			}
		}
		missing = append(missing, r)
	}
	slices.Sort(missing)
	return slices.Compact(missing)
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
