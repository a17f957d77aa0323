package subiso

// Graph is the input contract the solver consumes: an undirected simple
// graph with vertices numbered 0..Size()-1. Self-loops are permitted, and
// significant: a loop at u forces any isomorphism to map u to a vertex
// that also carries a loop.
//
// Graph is the only interface the core package depends on; callers may
// adapt any existing graph representation rather than build a SimpleGraph.
type Graph interface {
	// Size returns the number of vertices.
	Size() int
	// Degree returns the degree of vertex v: the number of incident edges,
	// with a self-loop at v counted once (see SimpleGraph.Degree for the
	// same convention applied to an adjacency-list graph).
	Degree(v int) int
	// Adjacent reports whether u and v are connected by an edge. Adjacent(v, v)
	// reports whether v carries a self-loop.
	Adjacent(u, v int) bool
}

// SimpleGraph is an adjacency-list backed Graph, the reference
// implementation used by the parser, the CLI and the tests. The "node ID"
// of a node is simply its slice index, following the convention of this
// package's ancestor (soniakeys/graph's AdjacencyList).
type SimpleGraph struct {
	adj [][]int
}

// NewSimpleGraph returns an edgeless SimpleGraph on n vertices.
func NewSimpleGraph(n int) *SimpleGraph {
	return &SimpleGraph{adj: make([][]int, n)}
}

// AddEdge adds the edge (u, v). Adding the same edge twice produces a
// parallel edge in the adjacency list, which this package's degree and
// adjacency queries tolerate but which a caller should otherwise avoid.
// u == v adds a self-loop.
func (g *SimpleGraph) AddEdge(u, v int) {
	g.adj[u] = append(g.adj[u], v)
	if u != v {
		g.adj[v] = append(g.adj[v], u)
	}
}

// Size returns the number of vertices.
func (g *SimpleGraph) Size() int { return len(g.adj) }

// Degree returns len(adj[v]), i.e. the number of incident edges with a
// self-loop at v counted once (a loop contributes exactly one entry to
// adj[v] by construction of AddEdge).
func (g *SimpleGraph) Degree(v int) int { return len(g.adj[v]) }

// Adjacent reports whether u and v share an edge.
func (g *SimpleGraph) Adjacent(u, v int) bool {
	for _, w := range g.adj[u] {
		if w == v {
			return true
		}
	}
	return false
}

// Neighbours returns the raw neighbour list of v. The returned slice is
// owned by g and must not be mutated.
func (g *SimpleGraph) Neighbours(v int) []int { return g.adj[v] }
