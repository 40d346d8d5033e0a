package qmc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerm(t *testing.T) {
	tests := []struct {
		pattern string
		width   int
		want    string
	}{
		{"0-1", 3, "A'C"},
		{"-1", 2, "B"},
		{"1", 3, "A'B'C"},
		{"101", 3, "AB'C"},
		{"0", 1, "A'"},
		{"--", 2, "1"},
		{"-", 3, "A'B'"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Term(tt.pattern, tt.width), "Term(%q, %d)", tt.pattern, tt.width)
	}
}

func TestExpression_DescendingOrder(t *testing.T) {
	selected := []*Implicant{
		{Pattern: "-"},
		{Pattern: "-00"},
	}
	assert.Equal(t, "B'C' + A'B'", Expression(selected))
}

func TestExpression_Empty(t *testing.T) {
	assert.Equal(t, "", Expression(nil))
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		name     string
		minterms []int
		want     string
		passes   int
	}{
		{"pair", []int{1, 3}, "B", 1},
		{"tautology", []int{0, 1, 2, 3}, "1", 2},
		{"mixed widths", []int{0, 1, 4}, "B'C' + A'B'", 1},
		{"single", []int{5}, "AB'C", 0},
		{"zero", []int{0}, "A'", 0},
		{"no merge", []int{0, 3}, "AB + A'B'", 0},
		{"three", []int{0, 1, 3}, "B + A'", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Simplify(tt.minterms, nil)
			assert.Equal(t, tt.want, res.Expression)
			assert.Len(t, res.Passes, tt.passes)
		})
	}
}
