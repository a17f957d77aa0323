package subiso

import (
	"testing"

	"github.com/ciaranm/restarting-sip-paper/internal/bitgraph"
)

func triangleBitGraph() bitgraph.BitGraph {
	g := bitgraph.New(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	return g
}

func k4BitGraph() bitgraph.BitGraph {
	g := bitgraph.New(4)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			g.AddEdge(i, j)
		}
	}
	return g
}

func TestNeighbourhoodDegreeSequence(t *testing.T) {
	g := k4BitGraph()
	nds := neighbourhoodDegreeSequence(g)
	for v, seq := range nds {
		if len(seq) != 3 {
			t.Fatalf("vertex %d: len(NDS) = %d, want 3", v, len(seq))
		}
		for _, d := range seq {
			if d != 3 {
				t.Fatalf("vertex %d: NDS entry = %d, want 3 (K4 is 3-regular)", v, d)
			}
		}
	}
}

func TestInitialiseDomainsTriangleIntoK4(t *testing.T) {
	pattern := []bitgraph.BitGraph{triangleBitGraph()}
	target := []bitgraph.BitGraph{k4BitGraph()}

	domains, ok := initialiseDomains(pattern, target, 3, 4, 1)
	if !ok {
		t.Fatal("Hall precheck should pass: every triangle vertex can map to any K4 vertex")
	}
	for i, d := range domains {
		if d.popcount != 4 {
			t.Fatalf("domain %d popcount = %d, want 4", i, d.popcount)
		}
	}
}

func TestInitialiseDomainsFailsWhenTargetTooSparse(t *testing.T) {
	// A triangle (every vertex has two degree-2 neighbours) cannot map into
	// a path (NDS [2], [1 1], [2]): every per-vertex NDS check fails, so
	// every domain is empty.
	pattern := []bitgraph.BitGraph{triangleBitGraph()}

	path := bitgraph.New(3)
	path.AddEdge(0, 1)
	path.AddEdge(1, 2)
	target := []bitgraph.BitGraph{path}

	_, ok := initialiseDomains(pattern, target, 3, 3, 1)
	if ok {
		t.Fatal("Hall precheck should fail: no path vertex has degree >= 2 neighbours of degree >= 2")
	}
}

func TestInitialiseDomainsSelfLoop(t *testing.T) {
	pattern := bitgraph.New(1)
	pattern.AddEdge(0, 0)

	target := bitgraph.New(2)
	target.AddEdge(1, 1) // only vertex 1 carries a loop

	domains, ok := initialiseDomains([]bitgraph.BitGraph{pattern}, []bitgraph.BitGraph{target}, 1, 2, 1)
	if !ok {
		t.Fatal("expected a feasible (if narrow) domain")
	}
	if domains[0].popcount != 1 || !domains[0].values.Test(1) {
		t.Fatalf("domain should admit only target vertex 1 (the only one with a loop)")
	}
}
