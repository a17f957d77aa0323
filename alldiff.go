package subiso

import (
	"sort"

	"github.com/ciaranm/restarting-sip-paper/internal/bitgraph"
)

// tiebreakKey is the pattern-degree tiebreak key: (deg(v), sum of deg(u)
// over neighbours u of v), both computed against layer 0 of the (reordered)
// pattern graph. A larger key is preferred, so the pattern vertex with more
// local structure branches first.
//
// This is computed exactly once per solver instance, at construction, and
// never reaccumulated; reusing a solver value across unrelated solves is
// not supported (there is no such reuse path in this package, since a fresh
// solver is built for every Solve call).
type tiebreakKey struct {
	degree       int
	neighbourSum int
}

// greaterThan reports whether a should be preferred over b (a's key is larger).
func (a tiebreakKey) greaterThan(b tiebreakKey) bool {
	if a.degree != b.degree {
		return a.degree > b.degree
	}
	return a.neighbourSum > b.neighbourSum
}

// patternDegreeTiebreak computes the tiebreak key for every vertex of the
// (already reordered) pattern graph's base layer.
func patternDegreeTiebreak(patternBase bitgraph.BitGraph, patternSize int) []tiebreakKey {
	keys := make([]tiebreakKey, patternSize)
	for j := 0; j < patternSize; j++ {
		keys[j].degree = patternBase.Degree(j)
	}
	for i := 0; i < patternSize; i++ {
		for j := 0; j < patternSize; j++ {
			if patternBase.Adjacent(i, j) {
				keys[j].neighbourSum += keys[i].degree
			}
		}
	}
	return keys
}

// cheapAllDifferent prunes domains using a Hall-interval sweep. It is sound
// but incomplete all-different reasoning: it only finds tight Hall sets in
// the chosen (smallest-domain-first, tiebreak descending) order, not via a
// full bipartite matching.
func cheapAllDifferent(domains []domain, tiebreak []tiebreakKey, targetSize int) bool {
	order := make([]int, len(domains))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		da, db := domains[order[a]], domains[order[b]]
		if da.popcount != db.popcount {
			return da.popcount < db.popcount
		}
		return tiebreak[da.v].greaterThan(tiebreak[db.v])
	})

	domainsSoFar := bitgraph.NewSet(targetSize)
	hall := bitgraph.NewSet(targetSize)
	neighboursSoFar := 0

	for _, idx := range order {
		d := &domains[idx]

		d.values.IntersectWithComplement(hall)
		d.popcount = d.values.Popcount()
		if d.popcount == 0 {
			return false
		}

		domainsSoFar.UnionWith(d.values)
		neighboursSoFar++

		switch count := domainsSoFar.Popcount(); {
		case count < neighboursSoFar:
			return false
		case count == neighboursSoFar:
			hall.UnionWith(domainsSoFar)
			domainsSoFar.UnsetAll()
			neighboursSoFar = 0
		}
	}

	return true
}
