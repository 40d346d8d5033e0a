package qmc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectCover_FirstFit(t *testing.T) {
	imps := []*Implicant{
		{Pattern: "-", Minterms: []int{0, 1}},
		{Pattern: "-00", Minterms: []int{0, 4}},
	}
	got := SelectCover(imps, []int{0, 1, 4})
	assert.Equal(t, []string{"-", "-00"}, patterns(got))
}

func TestSelectCover_SkipsRedundant(t *testing.T) {
	// The middle implicant only covers minterms already taken by the first.
	imps := []*Implicant{
		{Pattern: "0-", Minterms: []int{0, 1}},
		{Pattern: "00", Minterms: []int{0}},
		{Pattern: "-1", Minterms: []int{1, 3}},
	}
	got := SelectCover(imps, []int{0, 1, 3})
	assert.Equal(t, []string{"0-", "-1"}, patterns(got))
}

func TestSelectCover_IsNotMinimal(t *testing.T) {
	// Greedy first-fit takes the two edge implicants before reaching the one
	// that alone would have covered everything.
	imps := []*Implicant{
		{Pattern: "0-", Minterms: []int{0, 1}},
		{Pattern: "1-", Minterms: []int{2, 3}},
		{Pattern: "--", Minterms: []int{0, 1, 2, 3}},
	}
	got := SelectCover(imps, []int{0, 1, 2, 3})
	assert.Equal(t, []string{"0-", "1-"}, patterns(got))
}

func TestSelectCover_StopsWhenUncoverable(t *testing.T) {
	imps := []*Implicant{{Pattern: "0", Minterms: []int{0}}}
	got := SelectCover(imps, []int{0, 5})
	assert.Equal(t, []string{"0"}, patterns(got))
	assert.Empty(t, SelectCover(nil, []int{1}))
}

func TestSelectCover_Complete(t *testing.T) {
	for _, ms := range sampleInputs() {
		final := NewEngine(ms).Run(nil)
		selected := SelectCover(final, ms)
		for _, m := range ms {
			covered := false
			for _, imp := range selected {
				if imp.Covers(m) {
					covered = true
					break
				}
			}
			assert.True(t, covered, "minterm %d of %v not covered", m, ms)
		}
	}
}
