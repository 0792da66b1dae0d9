package model

import "log"

// Factorial of positions above this value overflows uint64
const MaxIndexablePositions = 20

// indexer interface is design to give a unique index to a permutation of positions and vice versa.
// Indices follow the same lexicographic order the permutation generator enumerates in, starting at 0
type indexer interface {
	// Returns the unique index of a permutation of positions 0..n-1
	Index(permutation []uint64) uint64
	// Returns the permutation of positions 0..n-1 with the given index
	Permutation(index uint64) []uint64
	// Returns the amount of permutations (i.e. n!)
	Count() uint64
}

func newIndexer(positions uint64) indexer {
	if positions > MaxIndexablePositions {
		log.Panicf("cannot index permutations of more than %v positions", MaxIndexablePositions)
	}

	factorials := make([]uint64, positions+1)
	factorials[0] = 1
	for i := uint64(1); i <= positions; i++ {
		factorials[i] = factorials[i-1] * i
	}

	return &indexerImplementation{
		positions:  positions,
		factorials: factorials,
	}
}
