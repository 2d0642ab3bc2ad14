package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"phone", "phoen", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein(tt.a, tt.b), "levenshtein(%q, %q)", tt.a, tt.b)
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("acme phone", "acme phone"))
	assert.Equal(t, 1.0, similarity("", ""))
	assert.Equal(t, 0.0, similarity("abc", "xyz"))

	// (5+6-1)/(5+6)
	assert.InDelta(t, 10.0/11.0, similarity("phone", "phones"), 1e-9)
}

func TestBestMatch(t *testing.T) {
	m := New(0.4)
	candidates := []string{"Acme Phone X", "Bolt Laptop Pro", "Cosmo Tablet S"}

	name, ok := m.BestMatch("acme phone x", candidates)
	assert.True(t, ok)
	assert.Equal(t, "Acme Phone X", name)

	// typo still resolves
	name, ok = m.BestMatch("acme phoen x", candidates)
	assert.True(t, ok)
	assert.Equal(t, "Acme Phone X", name)

	// nothing close enough
	_, ok = m.BestMatch("zzzzzzzzzzzz", candidates)
	assert.False(t, ok)
}

func TestBestMatchEmptyInputs(t *testing.T) {
	m := New(0.4)

	_, ok := m.BestMatch("", []string{"Acme Phone X"})
	assert.False(t, ok)

	_, ok = m.BestMatch("   ", []string{"Acme Phone X"})
	assert.False(t, ok)

	_, ok = m.BestMatch("acme", nil)
	assert.False(t, ok)
}

func TestBestMatchTieKeepsFirstCandidate(t *testing.T) {
	m := New(0.1)

	// both candidates are one edit away from the query
	name, ok := m.BestMatch("phone", []string{"phonea", "phoneb"})
	assert.True(t, ok)
	assert.Equal(t, "phonea", name)
}
