package subiso

import "github.com/ciaranm/restarting-sip-paper/internal/bitgraph"

// buildSupplementalGraphs derives up to k auxiliary adjacency layers from
// base. Layer 0 is base itself. For l >= 2, layers 1..k are populated by
// walking every length-2 path v -> c -> w (v >= w, so each unordered pair
// is visited once) and promoting the pair (v, w) one band upward each time
// such a path is found, saturating at band k:
//
//	currently at band b (the highest g in [1,k] with layer g adjacent(v,w),
//	or 0 if none) -> move to band min(b+1, k)
//
// Layer g therefore ends up holding exactly the pairs with at least g
// common neighbours in base, capped at k, a cheap homomorphism invariant
// that sharpens the domain filter in initialiseDomains.
//
// l > 2 (additional walk passes, higher-order neighbourhoods) is not
// implemented; Params clamps l to [1, 2] before this is called.
func buildSupplementalGraphs(base bitgraph.BitGraph, k, l int) []bitgraph.BitGraph {
	n := base.Size()
	maxGraphs := 1 + (l-1)*k
	layers := make([]bitgraph.BitGraph, maxGraphs)
	layers[0] = base
	for g := 1; g < maxGraphs; g++ {
		layers[g] = bitgraph.New(n)
	}

	if l < 2 {
		return layers
	}

	for v := 0; v < n; v++ {
		nv := base.Neighbourhood(v)
		for c := nv.FirstSetBit(); c != -1; c = nv.FirstSetBit() {
			nv.Unset(c)
			nc := base.Neighbourhood(c)
			for w := nc.FirstSetBit(); w != -1 && w <= v; w = nc.FirstSetBit() {
				nc.Unset(w)
				promoteBand(layers, v, w, k)
			}
		}
	}
	return layers
}

// promoteBand moves the pair (v, w) one band up from wherever it currently
// sits: it looks for the highest band-1 in [1, k-1] already adjacent and
// sets the band above it, falling back to band 1 if none is set yet.
// Once a pair reaches band k, layers[k-1] stays adjacent on every later
// call, so this keeps re-setting (harmlessly) the already-set layers[k]
// bit instead of promoting further; that is how saturation at k happens.
func promoteBand(layers []bitgraph.BitGraph, v, w, k int) {
	for band := k; band >= 2; band-- {
		if layers[band-1].Adjacent(v, w) {
			layers[band].AddEdge(v, w)
			return
		}
	}
	if k >= 1 {
		layers[1].AddEdge(v, w)
	}
}
