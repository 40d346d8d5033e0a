package qmc

import "github.com/sirupsen/logrus"

// Pass is the state of the working set after a pass that merged.
type Pass struct {
	Number int
	Matrix Matrix
}

// Result is everything produced by one simplification.
type Result struct {
	Minterms   []int
	Passes     []Pass
	Implicants []*Implicant
	Selected   []*Implicant
	Expression string
}

// Width is the number of variables in the rendered expression.
func (r *Result) Width() int { return Width(r.Selected) }

// Simplify runs the merge engine to a fixed point, selects a cover and
// renders it. minterms must already be validated.
func Simplify(minterms []int, log logrus.FieldLogger) *Result {
	e := NewEngine(minterms)
	e.SetLogger(log)

	res := &Result{Minterms: e.Minterms()}
	res.Implicants = e.Run(func(n int, m Matrix) {
		res.Passes = append(res.Passes, Pass{Number: n, Matrix: m})
	})
	res.Selected = SelectCover(res.Implicants, res.Minterms)
	res.Expression = Expression(res.Selected)

	if log != nil {
		log.WithFields(logrus.Fields{
			"passes":     e.Passes(),
			"implicants": len(res.Implicants),
			"selected":   len(res.Selected),
		}).Debug("simplified")
	}
	return res
}
