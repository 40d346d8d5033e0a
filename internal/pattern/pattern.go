// Package pattern implements the string form of an implicant: one symbol per
// input variable, '0', '1' or the don't-care '-'. Patterns of different
// lengths are always compared after left-padding the shorter one with '0'.
package pattern

import (
	"strconv"
	"strings"
)

const (
	Zero     = '0'
	One      = '1'
	DontCare = '-'
)

// FromInt returns the minimal binary representation of n ("0" for zero).
// n must not be negative.
func FromInt(n int) string {
	return strconv.FormatInt(int64(n), 2)
}

// Pad left-pads p with '0' up to width. Longer patterns are returned as is.
func Pad(p string, width int) string {
	if len(p) >= width {
		return p
	}
	return strings.Repeat(string(Zero), width-len(p)) + p
}

// Balance returns a and b padded to the same length.
// Given a=010 and b=10101 it returns 00010 and 10101.
func Balance(a, b string) (string, string) {
	switch {
	case len(a) < len(b):
		return Pad(a, len(b)), b
	case len(b) < len(a):
		return a, Pad(b, len(a))
	}
	return a, b
}

// Equal reports whether a and b are identical once balanced.
func Equal(a, b string) bool {
	a, b = Balance(a, b)
	return a == b
}

// Distance returns the number of positions at which the balanced patterns
// differ. The don't-care symbol is compared like any other symbol.
func Distance(a, b string) int {
	a, b = Balance(a, b)
	n := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

// Ones returns the number of '1' symbols in p.
func Ones(p string) int {
	return strings.Count(p, string(One))
}

// Mask fuses two patterns: positions where the balanced patterns agree keep
// their symbol, all others become don't-care.
// For example a=1001 and b=1101 gives 1-01.
func Mask(a, b string) string {
	a, b = Balance(a, b)
	out := make([]byte, len(a))
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			out[i] = DontCare
		} else {
			out[i] = a[i]
		}
	}
	return string(out)
}

// Expand returns every integer matched by p padded to width, ascending.
// Don't-care positions take both values.
func Expand(p string, width int) []int {
	p = Pad(p, width)
	var base int
	var dcBits []uint
	for i := 0; i < len(p); i++ {
		bit := uint(len(p) - 1 - i)
		switch p[i] {
		case One:
			base |= 1 << bit
		case DontCare:
			dcBits = append(dcBits, bit)
		}
	}

	n := 1 << len(dcBits)
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		m := base
		// dcBits is most significant first; walk it backwards so i counts up
		// in the natural order of the matched integers.
		for j := range dcBits {
			if i&(1<<j) != 0 {
				m |= 1 << dcBits[len(dcBits)-1-j]
			}
		}
		out = append(out, m)
	}
	return out
}
