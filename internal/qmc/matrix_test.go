package qmc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func cells(m Matrix) [][]bool {
	out := make([][]bool, m.Rows())
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

func TestMatrix_PerPass(t *testing.T) {
	var got [][][]bool
	NewEngine([]int{0, 1, 2, 3}).Run(func(_ int, m Matrix) {
		got = append(got, cells(m))
	})
	want := [][][]bool{
		{
			{true, true, false, false},
			{true, false, true, false},
			{false, true, false, true},
			{false, false, true, true},
		},
		{
			{true, true, true, true},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("matrix mismatch (-want +got):\n%s", diff)
	}
}

func TestMatrix_IgnoresUnknownMinterms(t *testing.T) {
	m := NewMatrix([]*Implicant{{Pattern: "1-", Minterms: []int{2, 3}}}, []int{1, 3})
	assert.Equal(t, []int{1, 3}, m.Minterms)
	assert.Equal(t, []string{"1-"}, m.Patterns)
	assert.False(t, m.Cell(0, 0))
	assert.True(t, m.Cell(0, 1))
}
