package qmc

import "github.com/bits-and-blooms/bitset"

// SelectCover picks implicants until every minterm is covered.
//
// This is a greedy first-fit heuristic, not a minimum cover: each round scans
// imps from the start and takes the first implicant that covers at least one
// minterm still uncovered. The result depends on the order of imps and is not
// guaranteed to have the fewest terms or literals.
//
// If imps cannot cover every minterm, selection stops at the first round
// that finds nothing and returns the implicants chosen so far.
func SelectCover(imps []*Implicant, minterms []int) []*Implicant {
	col := columns(minterms)
	covers := make([]*bitset.BitSet, len(imps))
	for i, imp := range imps {
		covers[i] = coverage(imp, col)
	}

	uncovered := bitset.New(uint(len(col)))
	for _, c := range col {
		uncovered.Set(c)
	}

	var selected []*Implicant
	for uncovered.Any() {
		pick := -1
		for i, c := range covers {
			if c.IntersectionCardinality(uncovered) > 0 {
				pick = i
				break
			}
		}
		if pick < 0 {
			break
		}
		selected = append(selected, imps[pick])
		uncovered.InPlaceDifference(covers[pick])
	}
	return selected
}
