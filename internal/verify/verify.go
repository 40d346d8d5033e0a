// Package verify checks a simplified expression against the truth table it
// was derived from with a SAT solver.
//
// Both sides are encoded into one And-Inverter circuit over the same inputs:
// the reference function is the disjunction of the minterms and the candidate
// is the disjunction of the selected patterns. The two are equivalent exactly
// when their exclusive or is unsatisfiable.
package verify

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"

	"github.com/pborges/qmc/internal/pattern"
)

// MismatchError reports an input assignment on which the expression and the
// minterm list disagree.
type MismatchError struct {
	// Assignment is the counterexample read as an integer, variable A being
	// the most significant bit.
	Assignment int
	// Expected is whether Assignment is one of the minterms.
	Expected bool
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("expression is %t for %d, truth table says %t", !e.Expected, e.Assignment, e.Expected)
}

// Equivalent checks that the sum of products described by patterns (each
// padded to width) is true on exactly the given minterms. It returns a
// *MismatchError with a counterexample when it is not.
func Equivalent(minterms []int, patterns []string, width int) error {
	for _, m := range minterms {
		if m < 0 || len(pattern.FromInt(m)) > width {
			return errors.Errorf("minterm %d does not fit in %d variables", m, width)
		}
	}
	for _, p := range patterns {
		if len(p) > width {
			return errors.Errorf("pattern %q is wider than %d variables", p, width)
		}
	}

	c := logic.NewC()
	vars := make([]z.Lit, width)
	for i := range vars {
		vars[i] = c.Lit()
	}

	ref := c.F
	for _, m := range minterms {
		ref = c.Or(ref, product(c, vars, pattern.Pad(pattern.FromInt(m), width)))
	}
	cand := c.F
	for _, p := range patterns {
		cand = c.Or(cand, product(c, vars, pattern.Pad(p, width)))
	}
	miter := c.Xor(ref, cand)

	g := gini.New()
	c.ToCnf(g)
	// the constant is an ordinary variable to the solver
	g.Add(c.T)
	g.Add(0)
	g.Add(miter)
	g.Add(0)

	switch g.Solve() {
	case -1:
		return nil
	case 1:
		n := 0
		for _, v := range vars {
			n <<= 1
			if g.Value(v) {
				n |= 1
			}
		}
		expected := false
		for _, m := range minterms {
			if m == n {
				expected = true
				break
			}
		}
		return &MismatchError{Assignment: n, Expected: expected}
	}
	return errors.New("solver returned no answer")
}

// product is the conjunction of the literals fixed by p.
func product(c *logic.C, vars []z.Lit, p string) z.Lit {
	t := c.T
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case pattern.One:
			t = c.And(t, vars[i])
		case pattern.Zero:
			t = c.And(t, vars[i].Not())
		}
	}
	return t
}
