package qmc

import (
	"io"
	"sort"

	"github.com/sirupsen/logrus"
)

// Engine owns the working set of implicants across simplification passes.
type Engine struct {
	minterms []int
	working  []*Implicant
	passes   int
	log      logrus.FieldLogger
}

// NewEngine seeds a working set with one implicant per minterm. minterms
// must be non-negative and free of duplicates; they are copied and sorted.
func NewEngine(minterms []int) *Engine {
	sorted := append([]int(nil), minterms...)
	sort.Ints(sorted)
	e := &Engine{
		minterms: sorted,
		working:  make([]*Implicant, 0, len(sorted)),
		log:      discardLogger(),
	}
	for _, m := range sorted {
		e.working = append(e.working, newImplicant(m))
	}
	return e
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger sets where per-pass statistics are logged at debug level.
func (e *Engine) SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = discardLogger()
	}
	e.log = l
}

// Minterms returns the sorted input minterms.
func (e *Engine) Minterms() []int { return append([]int(nil), e.minterms...) }

// Implicants returns a copy of the working set in its current order.
func (e *Engine) Implicants() []*Implicant {
	return append([]*Implicant(nil), e.working...)
}

// Passes is the number of passes that produced at least one merge.
func (e *Engine) Passes() int { return e.passes }

// Step runs one pass: relationships are found over a snapshot of the working
// set, then applied in order. It reports whether anything merged.
func (e *Engine) Step() bool {
	snapshot := e.Implicants()
	groups := groupByOnes(snapshot)
	rels := relate(groups)

	added := 0
	for _, r := range rels {
		e.remove(r.A)
		e.remove(r.B)
		imp := merge(r.A, r.B)
		if e.contains(imp) {
			continue
		}
		e.working = append(e.working, imp)
		added++
	}

	if len(rels) > 0 {
		e.passes++
	}
	e.log.WithFields(logrus.Fields{
		"pass":          e.passes,
		"groups":        len(groups),
		"relationships": len(rels),
		"added":         added,
		"implicants":    len(e.working),
	}).Debug("simplification pass")
	return len(rels) > 0
}

// Run repeats Step until a pass merges nothing. After every pass that merged,
// observe (if non-nil) receives the pass number and the coverage matrix.
func (e *Engine) Run(observe func(pass int, m Matrix)) []*Implicant {
	for e.Step() {
		if observe != nil {
			observe(e.passes, e.Matrix())
		}
	}
	return e.Implicants()
}

// Matrix returns the coverage matrix of the current working set.
func (e *Engine) Matrix() Matrix {
	return NewMatrix(e.working, e.minterms)
}

// remove drops imp from the working set by identity. Absent is a no-op.
func (e *Engine) remove(imp *Implicant) {
	for i, w := range e.working {
		if w == imp {
			e.working = append(e.working[:i], e.working[i+1:]...)
			return
		}
	}
}

func (e *Engine) contains(imp *Implicant) bool {
	for _, w := range e.working {
		if w.Equal(imp) {
			return true
		}
	}
	return false
}
