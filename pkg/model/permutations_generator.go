package model

import "iter"

type permutationGenerator interface {
	// Returns a lazy sequence with every ordering of the positions 0..n-1 in lexicographic order (i.e. the first position varies slowest).
	// The sequence can be ranged over as many times as needed and each yielded slice is owned by the consumer
	//
	// Example:
	//
	//	generator := newPermutationGenerator(3)
	//
	//	for permutation := range generator.Permutations() {
	//		// [0 1 2], [0 2 1], [1 0 2], [1 2 0], [2 0 1], [2 1 0]
	//	}
	Permutations() iter.Seq[[]uint64]
}

func newPermutationGenerator(positions uint64) permutationGenerator {
	return &permutationGeneratorImplementation{positions}
}
