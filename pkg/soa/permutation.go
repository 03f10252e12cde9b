package soa

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Permutation is a rearrangement of the positions [0, n). Applying it moves
// the element at position i to position Target(i).
type Permutation struct {
	target []int
}

// Oneline builds a permutation from its one-line form, where indices[i] is
// the position of the element that should end up at position i. Oneline
// panics when indices is not a permutation of [0, len(indices)).
//
// The returned value moves elements according to indices itself; use
// Inverse to obtain the permutation that realises the one-line form.
func Oneline(indices []int) *Permutation {
	seen := bitset.New(uint(len(indices)))
	for _, idx := range indices {
		if idx < 0 || idx >= len(indices) {
			panic(fmt.Sprintf("soa: %d is not a position of a permutation of length %d", idx, len(indices)))
		}
		if seen.Test(uint(idx)) {
			panic(fmt.Sprintf("soa: position %d appears twice in permutation", idx))
		}
		seen.Set(uint(idx))
	}
	return &Permutation{target: slices.Clone(indices)}
}

// Len returns the number of positions p permutes.
func (p *Permutation) Len() int {
	return len(p.target)
}

// Target returns the position the element at i moves to.
func (p *Permutation) Target(i int) int {
	return p.target[i]
}

// Inverse returns the permutation q with q.Target(p.Target(i)) == i.
func (p *Permutation) Inverse() *Permutation {
	inverse := make([]int, len(p.target))
	for i, t := range p.target {
		inverse[t] = i
	}
	return &Permutation{target: inverse}
}

// Apply rearranges a sequence of p.Len() elements in place, using swap to
// exchange two positions. Every cycle of p is walked once from its smallest
// position, so Apply performs at most Len()-1 swaps.
func (p *Permutation) Apply(swap func(i, j int)) {
	visited := bitset.New(uint(len(p.target)))
	for i := range p.target {
		if visited.Test(uint(i)) {
			continue
		}
		visited.Set(uint(i))
		for j := p.target[i]; j != i; j = p.target[j] {
			swap(i, j)
			visited.Set(uint(j))
		}
	}
}

// SortPermutation sorts the positions [0, n) with compare and returns the
// permutation that moves every element to its sorted position. The sort is
// stable: positions comparing equal keep their relative order.
func SortPermutation(n int, compare func(i, j int) int) *Permutation {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, compare)
	return (&Permutation{target: order}).Inverse()
}
