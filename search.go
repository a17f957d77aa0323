package subiso

import "github.com/ciaranm/restarting-sip-paper/internal/bitgraph"

// outcome is the three-way result of a search node: there are no partial
// results and no exceptions, only these three terminal states.
type outcome int

const (
	unsatisfiable outcome = iota
	satisfiable
	aborted
)

// solver holds everything a single Solve call builds once, at construction,
// and never mutates afterwards: the reordered, bit-encoded pattern and
// target graphs (plus their supplemental layers), the label permutations
// needed to translate results back, and the tiebreak keys used throughout
// search. One solver is built per Solve call; nothing about it is reused
// across calls (see tiebreakKey's doc comment on why that matters).
type solver struct {
	params Params

	patternGraphs []bitgraph.BitGraph // layer 0..gEnd-1, reordered pattern
	targetGraphs  []bitgraph.BitGraph // layer 0..gEnd-1, reordered target

	patternOrder     []int // patternOrder[i] = original pattern label of reordered index i
	targetOrder      []int // targetOrder[j] = original target label of reordered index j
	isolatedVertices []int // original pattern labels with degree 0

	tiebreak []tiebreakKey

	patternSize     int
	fullPatternSize int
	targetSize      int
}

// newSolver strips isolated pattern vertices, bit-encodes the pattern, and
// degree-sorts then bit-encodes the target.
func newSolver(pattern, target Graph, params Params) *solver {
	s := &solver{
		params:          params,
		fullPatternSize: pattern.Size(),
		targetSize:      target.Size(),
	}

	for v := 0; v < s.fullPatternSize; v++ {
		if pattern.Degree(v) == 0 {
			s.isolatedVertices = append(s.isolatedVertices, v)
		} else {
			s.patternOrder = append(s.patternOrder, v)
		}
	}
	s.patternSize = len(s.patternOrder)

	patternBase := bitgraph.New(s.patternSize)
	for i := 0; i < s.patternSize; i++ {
		for j := 0; j < s.patternSize; j++ {
			if pattern.Adjacent(s.patternOrder[i], s.patternOrder[j]) {
				patternBase.AddEdge(i, j)
			}
		}
	}

	s.targetOrder = make([]int, s.targetSize)
	for j := range s.targetOrder {
		s.targetOrder[j] = j
	}
	degreeSort(target, s.targetOrder)

	targetBase := bitgraph.New(s.targetSize)
	for i := 0; i < s.targetSize; i++ {
		for j := 0; j < s.targetSize; j++ {
			if target.Adjacent(s.targetOrder[i], s.targetOrder[j]) {
				targetBase.AddEdge(i, j)
			}
		}
	}

	s.tiebreak = patternDegreeTiebreak(patternBase, s.patternSize)
	s.patternGraphs = buildSupplementalGraphs(patternBase, params.k, params.l)
	s.targetGraphs = buildSupplementalGraphs(targetBase, params.k, params.l)

	return s
}

// Solve is the single entry point for the package. If the pattern has more
// vertices than the target, it returns immediately with an empty,
// incomplete result.
func Solve(pattern, target Graph, params Params) Result {
	if pattern.Size() > target.Size() {
		return emptyResult()
	}

	s := newSolver(pattern, target, params)
	gEnd := params.maxGraphs()

	domains, ok := initialiseDomains(s.patternGraphs, s.targetGraphs, s.patternSize, s.targetSize, gEnd)
	if !ok {
		return Result{Isomorphism: map[int]int{}, Complete: true}
	}
	if !cheapAllDifferent(domains, s.tiebreak, s.targetSize) {
		return Result{Isomorphism: map[int]int{}, Propagations: 1, Complete: true}
	}

	assignments := make([]int, s.patternSize)
	for i := range assignments {
		assignments[i] = -1
	}

	var nodes uint64
	propagations := uint64(1) // the pre-search cheapAllDifferent sweep above
	result := Result{Isomorphism: map[int]int{}}
	switch s.search(assignments, domains, &nodes, &propagations, gEnd) {
	case satisfiable:
		result.Isomorphism = s.saveResult(assignments)
		result.Complete = true
		result.SolutionCount = 1
	case unsatisfiable:
		result.Complete = true
	case aborted:
		result.Complete = false
	}
	result.Nodes = nodes
	result.Propagations = propagations
	return result
}

// search performs smallest-domain-first branching with the pattern-degree
// tiebreak, propagating and recursing on each candidate value in turn. It
// polls the abort flag on every entry.
func (s *solver) search(assignments []int, domains []domain, nodes, propagations *uint64, gEnd int) outcome {
	if s.params.aborted() {
		return aborted
	}
	*nodes++

	branch := -1
	for i := range domains {
		if branch == -1 ||
			domains[i].popcount < domains[branch].popcount ||
			(domains[i].popcount == domains[branch].popcount &&
				s.tiebreak[domains[i].v].greaterThan(s.tiebreak[domains[branch].v])) {
			branch = i
		}
	}
	if branch == -1 {
		return satisfiable
	}

	branchV := domains[branch].v
	remaining := domains[branch].values.Clone()

	for fv := remaining.FirstSetBit(); fv != -1; fv = remaining.FirstSetBit() {
		remaining.Unset(fv)
		assignments[branchV] = fv

		newDomains := make([]domain, 0, len(domains)-1)
		for i := range domains {
			if i == branch {
				continue
			}
			newDomains = append(newDomains, domain{
				v:        domains[i].v,
				popcount: domains[i].popcount,
				values:   domains[i].values.Clone(),
			})
		}

		if !s.assign(newDomains, branchV, fv, gEnd, propagations) {
			continue
		}

		switch result := s.search(assignments, newDomains, nodes, propagations, gEnd); result {
		case satisfiable, aborted:
			return result
		}
	}

	return unsatisfiable
}

// assign propagates the choice f_v for branchV into every remaining domain:
// injectivity (f_v removed from every other domain) and, for every
// supplemental layer where branchV and d.v are adjacent in the pattern,
// adjacency (d.values restricted to f_v's neighbours in that layer of the
// target). It finishes with a cheapAllDifferent sweep.
func (s *solver) assign(newDomains []domain, branchV, fv, gEnd int, propagations *uint64) bool {
	for i := range newDomains {
		d := &newDomains[i]
		d.values.Unset(fv)

		for g := 0; g < gEnd; g++ {
			if s.patternGraphs[g].Adjacent(branchV, d.v) {
				s.targetGraphs[g].IntersectWithRow(fv, d.values)
			}
		}

		d.popcount = d.values.Popcount()
		if d.popcount == 0 {
			return false
		}
	}

	*propagations++
	return cheapAllDifferent(newDomains, s.tiebreak, s.targetSize)
}

// saveResult maps the reordered assignment back to original vertex labels
// and appends the isolated pattern vertices, each given the lowest unused
// target label.
func (s *solver) saveResult(assignments []int) map[int]int {
	iso := make(map[int]int, s.fullPatternSize)
	used := make(map[int]bool, s.patternSize)
	for v := 0; v < s.patternSize; v++ {
		t := s.targetOrder[assignments[v]]
		iso[s.patternOrder[v]] = t
		used[t] = true
	}

	next := 0
	for _, v := range s.isolatedVertices {
		for used[next] {
			next++
		}
		iso[v] = next
		used[next] = true
	}
	return iso
}
