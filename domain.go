package subiso

import (
	"sort"

	"github.com/ciaranm/restarting-sip-paper/internal/bitgraph"
)

// domain holds a pattern vertex v, its current candidate set, and that
// set's cached popcount (kept in sync by every caller that mutates values).
type domain struct {
	v        int
	popcount int
	values   bitgraph.Set
}

// neighbourhoodDegreeSequence returns, for every vertex of g, the sorted
// (descending) multiset of its neighbours' degrees.
func neighbourhoodDegreeSequence(g bitgraph.BitGraph) [][]int {
	n := g.Size()
	degrees := make([]int, n)
	for i := 0; i < n; i++ {
		degrees[i] = g.Degree(i)
	}
	nds := make([][]int, n)
	for i := 0; i < n; i++ {
		var seq []int
		for j := 0; j < n; j++ {
			if g.Adjacent(i, j) {
				seq = append(seq, degrees[j])
			}
		}
		sort.Sort(sort.Reverse(sort.IntSlice(seq)))
		nds[i] = seq
	}
	return nds
}

// initialiseDomains builds the initial candidate set for every pattern
// vertex. A target vertex j is admitted into domain i iff, for every
// supplemental layer g < gEnd:
//
//  1. i having a self-loop in layer g implies j has one too;
//  2. j's NDS in layer g is at least as long as i's;
//  3. j's NDS in layer g dominates i's entrywise (both sorted descending).
//
// After every domain is filled, it returns false if the union of all
// domain value sets has fewer than patternSize members (the
// Hall necessary condition: an all-different assignment needs at least as
// many candidate values as variables).
func initialiseDomains(patternGraphs, targetGraphs []bitgraph.BitGraph, patternSize, targetSize, gEnd int) ([]domain, bool) {
	patternNDS := make([][][]int, gEnd)
	targetNDS := make([][][]int, gEnd)
	for g := 0; g < gEnd; g++ {
		patternNDS[g] = neighbourhoodDegreeSequence(patternGraphs[g])
		targetNDS[g] = neighbourhoodDegreeSequence(targetGraphs[g])
	}

	domains := make([]domain, patternSize)
	for i := 0; i < patternSize; i++ {
		domains[i].v = i
		domains[i].values = bitgraph.NewSet(targetSize)

		for j := 0; j < targetSize; j++ {
			ok := true
			for g := 0; g < gEnd && ok; g++ {
				pi, tj := patternNDS[g][i], targetNDS[g][j]
				switch {
				case patternGraphs[g].Adjacent(i, i) && !targetGraphs[g].Adjacent(j, j):
					ok = false
				case len(tj) < len(pi):
					ok = false
				default:
					for x := 0; ok && x < len(pi); x++ {
						if tj[x] < pi[x] {
							ok = false
						}
					}
				}
			}
			if ok {
				domains[i].values.Set(j)
			}
		}
		domains[i].popcount = domains[i].values.Popcount()
	}

	union := bitgraph.NewSet(targetSize)
	for i := range domains {
		union.UnionWith(domains[i].values)
	}
	return domains, union.Popcount() >= patternSize
}
