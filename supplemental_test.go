package subiso

import (
	"testing"

	"github.com/ciaranm/restarting-sip-paper/internal/bitgraph"
)

func TestBuildSupplementalGraphsLayerCount(t *testing.T) {
	base := bitgraph.New(3)
	layers := buildSupplementalGraphs(base, 4, 2)
	if len(layers) != 5 {
		t.Fatalf("len(layers) = %d, want 1+(l-1)*k = 5", len(layers))
	}
}

func TestBuildSupplementalGraphsWalkLengthOneIsJustBase(t *testing.T) {
	base := bitgraph.New(3)
	base.AddEdge(0, 1)
	layers := buildSupplementalGraphs(base, 4, 1)
	if len(layers) != 1 {
		t.Fatalf("len(layers) = %d, want 1 for l=1", len(layers))
	}
	if !layers[0].Adjacent(0, 1) {
		t.Fatal("layer 0 must be the base graph unchanged")
	}
}

func TestBuildSupplementalGraphsPath(t *testing.T) {
	// 0 - 1 - 2
	base := bitgraph.New(3)
	base.AddEdge(0, 1)
	base.AddEdge(1, 2)

	layers := buildSupplementalGraphs(base, 4, 2)

	// The walk v -> c -> w with w <= v always finds w == v itself (c is a
	// real neighbour of v, and v is therefore always a neighbour of c), so
	// every non-isolated vertex picks up a "common neighbour with itself"
	// band. Vertex 1 is reached this way twice (once via each of its two
	// neighbours), so it alone is promoted to band 2.
	if !layers[1].Adjacent(0, 0) {
		t.Fatal("vertex 0 should reach band 1 with itself")
	}
	if !layers[1].Adjacent(2, 2) {
		t.Fatal("vertex 2 should reach band 1 with itself")
	}
	if !layers[2].Adjacent(1, 1) {
		t.Fatal("vertex 1 should be promoted to band 2 with itself")
	}

	// 0 and 2 share common neighbour 1: promoted to band 1.
	if !layers[1].Adjacent(0, 2) {
		t.Fatal("0 and 2 share neighbour 1, should be promoted to band 1")
	}
	if layers[3].Degree(0) != 0 || layers[3].Degree(1) != 0 || layers[3].Degree(2) != 0 {
		t.Fatal("band 3 should be empty for this small a graph")
	}
}
