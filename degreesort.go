package subiso

import "sort"

// degreeSort reorders order (initially 0..n-1) by descending degree in g,
// breaking ties by original (ascending) index. The target graph is
// reordered this way before being bit-encoded so that
// low bit positions in each BitGraph row tend to be high-degree target
// vertices; this has no bearing on correctness, only on the locality of the
// domain-filtering scans in initialiseDomains.
func degreeSort(g Graph, order []int) {
	sort.SliceStable(order, func(i, j int) bool {
		return g.Degree(order[i]) > g.Degree(order[j])
	})
}
