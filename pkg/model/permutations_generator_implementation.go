package model

import "iter"

type permutationGeneratorImplementation struct {
	positions uint64
}

func (generator *permutationGeneratorImplementation) Permutations() iter.Seq[[]uint64] {
	return func(yield func([]uint64) bool) {
		generator.permutations(
			make([]uint64, 0, generator.positions),
			make([]bool, generator.positions),
			yield,
		)
	}
}

// Extends the permutation with every unused position in ascending order. Returns false as soon as the consumer stops the iteration
func (generator *permutationGeneratorImplementation) permutations(
	permutation []uint64,
	used []bool,
	yield func([]uint64) bool) bool {

	if uint64(len(permutation)) >= generator.positions {
		permutationCopy := make([]uint64, len(permutation))
		copy(permutationCopy, permutation)
		return yield(permutationCopy)
	}

	for position := range generator.positions {
		if used[position] {
			continue
		}

		used[position] = true
		proceed := generator.permutations(append(permutation, position), used, yield)
		used[position] = false

		if !proceed {
			return false
		}
	}

	return true
}
