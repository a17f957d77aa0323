// Copyright 2026 restarting-sip-paper contributors
// License MIT: http://opensource.org/licenses/MIT

// subiso solves the (non-induced) subgraph isomorphism problem: given a
// pattern graph P and a target graph T, find an injective mapping
// f: V(P) -> V(T) such that every edge of P maps to an edge of T.
//
// The package implements a constraint-satisfaction search: the input graphs
// are recoded into bit-parallel adjacency matrices, supplemental graphs
// encoding common-neighbour counts tighten each pattern vertex's candidate
// set before search starts, a cheap all-different propagator prunes using
// Hall's theorem at every node, and a smallest-domain-first backtracking
// search assigns one pattern vertex at a time.
//
// Terminology follows the graph-search idiom of this package's ancestor
// (soniakeys/graph): a "node" is a graph vertex, and "degree" counts
// incident edges, with a self-loop at v counted once toward v's own degree.
//
// Solve is the single entry point:
//
//	result := subiso.Solve(pattern, target, subiso.NewParams())
//	if result.Complete && len(result.Isomorphism) > 0 {
//		// result.Isomorphism maps pattern vertex -> target vertex
//	}
//
// Enumerating all solutions, parallel search, induced-subgraph matching,
// labelled/colour-constrained matching and persistent storage are out of
// scope.
package subiso
