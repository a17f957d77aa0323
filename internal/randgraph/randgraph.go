// Package randgraph generates random simple graphs for the property tests
// of the subiso package. The generators are adapted from the Gnp and Gnm
// algorithms of Batagelj and Brandes, "Efficient Generation of Large Random
// Networks" (this package's ancestor carries the same two algorithms, cited
// the same way, for its own random-graph generation).
package randgraph

import (
	"math"
	"math/rand"

	"github.com/ciaranm/restarting-sip-paper"
)

// Gnp builds a random simple undirected graph on n vertices under the
// Gilbert model: every one of the n(n-1)/2 possible edges is present
// independently with probability p.
func Gnp(n int, p float64, r *rand.Rand) *subiso.SimpleGraph {
	g := subiso.NewSimpleGraph(n)
	if n < 2 || p <= 0 {
		return g
	}
	if p >= 1 {
		for v := 1; v < n; v++ {
			for w := 0; w < v; w++ {
				g.AddEdge(v, w)
			}
		}
		return g
	}

	c := 1 / math.Log(1-p)
	v, w := 1, -1
	for v < n {
		w += 1 + int(c*math.Log(1-r.Float64()))
		for {
			if w < v {
				g.AddEdge(v, w)
				break
			}
			w -= v
			v++
			if v == n {
				break
			}
		}
	}
	return g
}

// Gnm builds a random simple undirected graph on n vertices with exactly m
// of the n(n-1)/2 possible edges, chosen uniformly at random without
// replacement.
func Gnm(n, m int, r *rand.Rand) *subiso.SimpleGraph {
	g := subiso.NewSimpleGraph(n)
	re := n * (n - 1) / 2
	if re == 0 || m <= 0 {
		return g
	}
	if m > re {
		m = re
	}

	ml := m
	invert := m*2 > re
	if invert {
		ml = re - m
	}

	picked := map[int]struct{}{}
	for len(picked) < ml {
		picked[r.Intn(re)] = struct{}{}
	}

	if invert {
		i := 0
		for v := 1; v < n; v++ {
			for w := 0; w < v; w++ {
				if _, skip := picked[i]; !skip {
					g.AddEdge(v, w)
				}
				i++
			}
		}
		return g
	}

	for i := range picked {
		v := 1 + int(math.Sqrt(.25+float64(2*i))-.5)
		w := i - (v * (v - 1) / 2)
		g.AddEdge(v, w)
	}
	return g
}

// InducedSubgraph returns the subgraph of g induced by the given vertex
// labels (which must be distinct and within range), with vertices renumbered
// 0..len(vertices)-1 in the order given.
func InducedSubgraph(g *subiso.SimpleGraph, vertices []int) *subiso.SimpleGraph {
	sub := subiso.NewSimpleGraph(len(vertices))
	index := make(map[int]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}
	for i, v := range vertices {
		for j := i; j < len(vertices); j++ {
			w := vertices[j]
			if g.Adjacent(v, w) {
				sub.AddEdge(i, j)
			}
		}
	}
	return sub
}
