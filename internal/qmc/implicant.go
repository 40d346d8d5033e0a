package qmc

import (
	"fmt"

	"github.com/pborges/qmc/internal/pattern"
)

// Implicant is a product term in the simplification: a pattern over
// '0', '1' and '-' plus the input minterms it was built from.
// Implicants are never modified once created.
type Implicant struct {
	Pattern  string
	Minterms []int
}

// newImplicant returns the initial implicant for a single minterm.
func newImplicant(m int) *Implicant {
	return &Implicant{Pattern: pattern.FromInt(m), Minterms: []int{m}}
}

// merge fuses two implicants at distance one. Minterms keep a's order then
// b's, skipping any already present.
func merge(a, b *Implicant) *Implicant {
	minterms := make([]int, 0, len(a.Minterms)+len(b.Minterms))
	seen := make(map[int]bool, cap(minterms))
	for _, src := range [][]int{a.Minterms, b.Minterms} {
		for _, m := range src {
			if seen[m] {
				continue
			}
			seen[m] = true
			minterms = append(minterms, m)
		}
	}
	return &Implicant{
		Pattern:  pattern.Mask(a.Pattern, b.Pattern),
		Minterms: minterms,
	}
}

// Ones is the implicant's population count.
func (i *Implicant) Ones() int { return pattern.Ones(i.Pattern) }

// Equal reports structural equality: identical patterns after padding.
func (i *Implicant) Equal(o *Implicant) bool {
	return pattern.Equal(i.Pattern, o.Pattern)
}

// Covers reports whether m is one of the implicant's minterms.
func (i *Implicant) Covers(m int) bool {
	for _, x := range i.Minterms {
		if x == m {
			return true
		}
	}
	return false
}

func (i *Implicant) String() string {
	return fmt.Sprintf("%s%v", i.Pattern, i.Minterms)
}

// Relationship pairs two implicants eligible to merge during one pass.
type Relationship struct {
	A, B *Implicant
}
