// Package bitgraph provides the bit-parallel graph representation the
// solver is built on: a fixed-capacity bitset and an adjacency matrix of
// such bitsets (one row per vertex).
//
// The bitset here is a thin wrapper around github.com/bits-and-blooms/bitset
// rather than a hand-rolled word array. gaissmai-bart and admpub-bart both
// carry a stripped-down copy of that library's word-parallel set/clear/
// test/count/union/intersect/difference operations for exactly this reason:
// fixed-capacity, allocate-once bitsets are the natural representation for
// dense combinatorial search, and there is no benefit to reimplementing
// what the ecosystem already gets right.
package bitgraph

import "github.com/bits-and-blooms/bitset"

// Set is a fixed-capacity bitset, sized once at construction and never
// resized afterwards.
type Set struct {
	bits *bitset.BitSet
	n    uint
}

// NewSet returns a Set with capacity for n bits, all initially unset.
func NewSet(n int) Set {
	return Set{bits: bitset.New(uint(n)), n: uint(n)}
}

// Cap returns the fixed bit capacity of the set.
func (s Set) Cap() int { return int(s.n) }

// Set sets bit i.
func (s Set) Set(i int) { s.bits.Set(uint(i)) }

// Unset clears bit i.
func (s Set) Unset(i int) { s.bits.Clear(uint(i)) }

// UnsetAll clears every bit.
func (s Set) UnsetAll() { s.bits.ClearAll() }

// SetAll sets every bit up to the set's capacity.
func (s Set) SetAll() {
	for i := uint(0); i < s.n; i++ {
		s.bits.Set(i)
	}
}

// Test reports whether bit i is set.
func (s Set) Test(i int) bool { return s.bits.Test(uint(i)) }

// FirstSetBit returns the index of the lowest set bit, or -1 if the set is
// empty.
func (s Set) FirstSetBit() int {
	if i, ok := s.bits.NextSet(0); ok {
		return int(i)
	}
	return -1
}

// Popcount returns the number of set bits.
func (s Set) Popcount() int { return int(s.bits.Count()) }

// IsEmpty reports whether no bit is set.
func (s Set) IsEmpty() bool { return s.bits.None() }

// IntersectWith computes s &= other.
func (s Set) IntersectWith(other Set) { s.bits.InPlaceIntersection(other.bits) }

// IntersectWithComplement computes s &= ^other, i.e. s ← s \ other.
func (s Set) IntersectWithComplement(other Set) { s.bits.InPlaceDifference(other.bits) }

// UnionWith computes s |= other.
func (s Set) UnionWith(other Set) { s.bits.InPlaceUnion(other.bits) }

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	return Set{bits: s.bits.Clone(), n: s.n}
}

// Each calls f for every set bit, in ascending order, stopping early if f
// returns false.
func (s Set) Each(f func(i int) bool) {
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		if !f(int(i)) {
			return
		}
	}
}
