package bitgraph

// BitGraph is an adjacency matrix stored as one Set (bitset row) per
// vertex. Row i holds the neighbours of vertex i; self-loops are permitted
// (both the (i,i) bit and the normal adjacency bits are ordinary bits of
// the row).
type BitGraph struct {
	rows []Set
	n    int
}

// New returns a BitGraph with n vertices and no edges.
func New(n int) BitGraph {
	g := BitGraph{rows: make([]Set, n), n: n}
	for i := range g.rows {
		g.rows[i] = NewSet(n)
	}
	return g
}

// Size returns the number of vertices.
func (g BitGraph) Size() int { return g.n }

// AddEdge marks i and j adjacent, in both directions. A loop (i == j) sets
// just the one diagonal bit.
func (g BitGraph) AddEdge(i, j int) {
	g.rows[i].Set(j)
	g.rows[j].Set(i)
}

// Adjacent reports whether i and j are adjacent (or, for i == j, whether i
// carries a self-loop).
func (g BitGraph) Adjacent(i, j int) bool {
	return g.rows[i].Test(j)
}

// Degree returns the population count of row i.
func (g BitGraph) Degree(i int) int {
	return g.rows[i].Popcount()
}

// Row returns the live row for vertex v. Callers that intend to mutate it
// must clone first; Neighbourhood does that for them.
func (g BitGraph) Row(v int) Set { return g.rows[v] }

// Neighbourhood returns a mutable copy of row v.
func (g BitGraph) Neighbourhood(v int) Set { return g.rows[v].Clone() }

// IntersectWithRow computes out ← out ∧ row(v) in place.
func (g BitGraph) IntersectWithRow(v int, out Set) {
	out.IntersectWith(g.rows[v])
}
