package qmc

import (
	"sort"

	"github.com/pborges/qmc/internal/pattern"
)

// Group holds the implicants sharing a population count.
type Group struct {
	Ones       int
	Implicants []*Implicant
}

// groupByOnes partitions imps by population count. Groups come back in
// ascending key order; implicants keep their order within a group.
func groupByOnes(imps []*Implicant) []Group {
	idx := make(map[int]int)
	var groups []Group
	for _, imp := range imps {
		n := imp.Ones()
		gi, ok := idx[n]
		if !ok {
			gi = len(groups)
			idx[n] = gi
			groups = append(groups, Group{Ones: n})
		}
		groups[gi].Implicants = append(groups[gi].Implicants, imp)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Ones < groups[j].Ones })
	return groups
}

// relate finds every pair at distance one between groups whose population
// counts differ by exactly one.
func relate(groups []Group) []Relationship {
	var rels []Relationship
	for i := 0; i+1 < len(groups); i++ {
		this, next := groups[i], groups[i+1]
		if next.Ones != this.Ones+1 {
			continue
		}
		for _, a := range this.Implicants {
			for _, b := range next.Implicants {
				if pattern.Distance(a.Pattern, b.Pattern) == 1 {
					rels = append(rels, Relationship{A: a, B: b})
				}
			}
		}
	}
	return rels
}
