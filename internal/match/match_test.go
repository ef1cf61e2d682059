package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name       string
		encoded    string
		target     string
		ignoreCase bool
		want       bool
	}{
		{name: "empty target", encoded: "abc", target: "", want: true},
		{name: "empty target and input", encoded: "", target: "", want: true},
		{name: "exact prefix", encoded: "Sol123", target: "Sol", want: true},
		{name: "case differs", encoded: "Sol123", target: "sol", want: false},
		{name: "case folded", encoded: "Sol123", target: "sOL", ignoreCase: true, want: true},
		{name: "not at start", encoded: "xSol", target: "Sol", want: false},
		{name: "target longer than input", encoded: "ab", target: "abc", want: false},
		{name: "whole string", encoded: "AB12", target: "ab12", ignoreCase: true, want: true},
		{name: "digits unaffected by folding", encoded: "12ab", target: "12AB", ignoreCase: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.encoded, tt.target, tt.ignoreCase))
		})
	}
}

// TestMatchesAgreesWithStrings checks the predicate against the strings
// package over every pair drawn from a small ASCII corpus.
func TestMatchesAgreesWithStrings(t *testing.T) {
	corpus := []string{"", "a", "A", "ab", "AB", "aB1", "Ab12", "xyz", "XYZzy", "9", "AB12", "ab"}

	for _, s := range corpus {
		for _, target := range corpus {
			assert.Equal(t, strings.HasPrefix(s, target), Matches(s, target, false),
				"exact %q/%q", s, target)
			assert.Equal(t, strings.HasPrefix(strings.ToLower(s), strings.ToLower(target)), Matches(s, target, true),
				"folded %q/%q", s, target)
		}
	}
}

func TestMatcherNormalizesTargetOnce(t *testing.T) {
	m := New("AbC", true)
	assert.Equal(t, "abc", m.Target())
	assert.True(t, m.Match("ABCdef"))
	assert.False(t, m.Match("AB"))

	exact := New("AbC", false)
	assert.Equal(t, "AbC", exact.Target())
	assert.False(t, exact.Match("ABCdef"))
	assert.True(t, exact.Match("AbCdef"))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "abc123", Fold("AbC123"))
	assert.Equal(t, "already", Fold("already"))
	assert.Equal(t, "", Fold(""))
}

func TestUnreachable(t *testing.T) {
	const base58 = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	tests := []struct {
		name       string
		target     string
		ignoreCase bool
		want       []rune
	}{
		{name: "all reachable", target: "So1", want: nil},
		{name: "lowercase l in word exact", target: "Sol", want: []rune{'l'}},
		{name: "lowercase l in word folded", target: "Sol", ignoreCase: true, want: nil},
		{name: "zero and capital o", target: "0Oops0", want: []rune{'0', 'O'}},
		{name: "lowercase l exact", target: "lol", want: []rune{'l'}},
		{name: "lowercase l folded", target: "lol", ignoreCase: true, want: nil},
		{name: "zero never folds", target: "0", ignoreCase: true, want: []rune{'0'}},
		{name: "non ascii", target: "é", ignoreCase: true, want: []rune{'é'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unreachable(tt.target, base58, tt.ignoreCase)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
