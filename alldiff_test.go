package subiso

import (
	"testing"

	"github.com/ciaranm/restarting-sip-paper/internal/bitgraph"
)

func domainFrom(v int, targetSize int, values ...int) domain {
	d := domain{v: v, values: bitgraph.NewSet(targetSize)}
	for _, x := range values {
		d.values.Set(x)
	}
	d.popcount = d.values.Popcount()
	return d
}

func TestPatternDegreeTiebreak(t *testing.T) {
	g := triangleBitGraph()
	keys := patternDegreeTiebreak(g, 3)
	for i, k := range keys {
		if k.degree != 2 {
			t.Fatalf("vertex %d degree = %d, want 2", i, k.degree)
		}
		if k.neighbourSum != 4 {
			t.Fatalf("vertex %d neighbourSum = %d, want 4 (two degree-2 neighbours)", i, k.neighbourSum)
		}
	}
}

func TestTiebreakKeyOrdering(t *testing.T) {
	a := tiebreakKey{degree: 3, neighbourSum: 1}
	b := tiebreakKey{degree: 2, neighbourSum: 100}
	if !a.greaterThan(b) {
		t.Fatal("higher degree should win regardless of neighbourSum")
	}
	c := tiebreakKey{degree: 2, neighbourSum: 5}
	if !b.greaterThan(c) {
		t.Fatal("equal degree should break on neighbourSum")
	}
}

func TestCheapAllDifferentHallFailure(t *testing.T) {
	// Three pattern vertices, but their domains only ever cover two target
	// values between them: a tight Hall violation.
	domains := []domain{
		domainFrom(0, 4, 0, 1),
		domainFrom(1, 4, 0, 1),
		domainFrom(2, 4, 0, 1),
	}
	tiebreak := []tiebreakKey{{}, {}, {}}
	if cheapAllDifferent(domains, tiebreak, 4) {
		t.Fatal("three domains sharing only two values cannot be all-different")
	}
}

func TestCheapAllDifferentPrunesHallSet(t *testing.T) {
	// domains 0 and 1 form a tight Hall pair on {0,1}; domain 2 must have
	// {0,1} removed from its otherwise-wider candidate set.
	domains := []domain{
		domainFrom(0, 4, 0, 1),
		domainFrom(1, 4, 0, 1),
		domainFrom(2, 4, 0, 1, 2, 3),
	}
	tiebreak := []tiebreakKey{{}, {}, {}}
	if !cheapAllDifferent(domains, tiebreak, 4) {
		t.Fatal("should remain satisfiable: domain 2 still has {2,3} after pruning")
	}
	var pruned domain
	for _, d := range domains {
		if d.v == 2 {
			pruned = d
		}
	}
	if pruned.values.Test(0) || pruned.values.Test(1) {
		t.Fatal("domain 2 should have had the Hall set {0,1} removed")
	}
	if pruned.popcount != 2 {
		t.Fatalf("domain 2 popcount = %d, want 2", pruned.popcount)
	}
}

func TestCheapAllDifferentAllowsOverlappingWideDomains(t *testing.T) {
	domains := []domain{
		domainFrom(0, 4, 0, 1, 2, 3),
		domainFrom(1, 4, 0, 1, 2, 3),
	}
	tiebreak := []tiebreakKey{{}, {}}
	if !cheapAllDifferent(domains, tiebreak, 4) {
		t.Fatal("two wide domains over four values should trivially be satisfiable")
	}
}
