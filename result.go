package subiso

// Result is the outcome of a Solve call.
type Result struct {
	// Isomorphism maps pattern vertex labels to target vertex labels. Empty
	// if no isomorphism was found, or the search was aborted.
	Isomorphism map[int]int

	// Nodes is the number of recursive search entries.
	Nodes uint64

	// Propagations is the number of cheapAllDifferent invocations.
	Propagations uint64

	// SolutionCount is always 0 or 1 in this core; enumerating every
	// isomorphism is out of scope.
	SolutionCount uint64

	// Complete is true iff the search concluded (Satisfiable or
	// Unsatisfiable); false if Aborted, or if Solve returned early because
	// the pattern has more vertices than the target.
	Complete bool

	// ExtraStats holds free-form diagnostic lines, in the order appended.
	ExtraStats []string
}

// emptyResult is what Solve returns for the |V(P)| > |V(T)| early exit: no
// isomorphism, zero counters, Complete = false.
func emptyResult() Result {
	return Result{Isomorphism: map[int]int{}}
}

// Merge folds other into r, prefixing each of other's ExtraStats lines with
// prefix. It sums the counters and keeps r's own Isomorphism/Complete
// untouched: Merge is for combining statistics across multiple attempts
// (e.g. a restart driver outside this package's scope), not for combining
// outcomes.
func (r *Result) Merge(prefix string, other Result) {
	r.Nodes += other.Nodes
	r.Propagations += other.Propagations
	r.SolutionCount += other.SolutionCount
	for _, line := range other.ExtraStats {
		r.ExtraStats = append(r.ExtraStats, prefix+line)
	}
}
