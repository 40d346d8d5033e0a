package qmc

import "github.com/bits-and-blooms/bitset"

// Matrix is the coverage table between implicants (rows) and input
// minterms (columns, ascending). It is produced for reporting only.
type Matrix struct {
	Minterms []int
	Patterns []string
	rows     []*bitset.BitSet
}

// NewMatrix marks, for every implicant, the columns of the minterms it covers.
func NewMatrix(imps []*Implicant, minterms []int) Matrix {
	col := columns(minterms)
	m := Matrix{
		Minterms: append([]int(nil), minterms...),
		Patterns: make([]string, len(imps)),
		rows:     make([]*bitset.BitSet, len(imps)),
	}
	for i, imp := range imps {
		m.Patterns[i] = imp.Pattern
		m.rows[i] = coverage(imp, col)
	}
	return m
}

// Rows is the number of implicants in the matrix.
func (m Matrix) Rows() int { return len(m.rows) }

// Cell reports whether implicant row covers minterm column.
func (m Matrix) Cell(row, column int) bool {
	return m.rows[row].Test(uint(column))
}

// Row returns the row as a slice of cells.
func (m Matrix) Row(row int) []bool {
	out := make([]bool, len(m.Minterms))
	for i := range out {
		out[i] = m.Cell(row, i)
	}
	return out
}

func columns(minterms []int) map[int]uint {
	col := make(map[int]uint, len(minterms))
	for i, m := range minterms {
		col[m] = uint(i)
	}
	return col
}

// coverage returns imp's minterms as a set of column indices. Minterms that
// are not columns are ignored.
func coverage(imp *Implicant, col map[int]uint) *bitset.BitSet {
	b := bitset.New(uint(len(col)))
	for _, m := range imp.Minterms {
		if c, ok := col[m]; ok {
			b.Set(c)
		}
	}
	return b
}
