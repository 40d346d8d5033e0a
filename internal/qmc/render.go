package qmc

import (
	"strings"

	"github.com/pborges/qmc/internal/pattern"
)

// Negation is the suffix marking a complemented variable.
const Negation = "'"

// Term renders p padded to width as a product of literals. Position 0 is
// variable A. A '0' gives the complemented letter, a '1' the plain letter and
// a don't-care nothing. A pattern without literals is the constant "1".
func Term(p string, width int) string {
	p = pattern.Pad(p, width)
	var b strings.Builder
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case pattern.Zero:
			b.WriteRune(Variable(i))
			b.WriteString(Negation)
		case pattern.One:
			b.WriteRune(Variable(i))
		}
	}
	if b.Len() == 0 {
		return "1"
	}
	return b.String()
}

// Variable returns the letter for pattern position i.
func Variable(i int) rune {
	return rune('A' + i)
}

// Width is the longest pattern among imps.
func Width(imps []*Implicant) int {
	w := 0
	for _, imp := range imps {
		if len(imp.Pattern) > w {
			w = len(imp.Pattern)
		}
	}
	return w
}

// Expression renders the selected implicants as a sum of products. Every
// term is padded to the longest selected pattern and terms are joined from
// the last selected to the first.
func Expression(selected []*Implicant) string {
	width := Width(selected)
	terms := make([]string, 0, len(selected))
	for i := len(selected) - 1; i >= 0; i-- {
		terms = append(terms, Term(selected[i].Pattern, width))
	}
	return strings.Join(terms, " + ")
}
