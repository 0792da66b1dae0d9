package model

import (
	"fmt"

	"github.com/samber/lo"
)

type permutationSearcher struct{}

func (searcher *permutationSearcher) Search(values []int64, predicate Predicate) (Solution, error) {
	generator := newPermutationGenerator(uint64(len(values)))

	evaluated := uint64(0)
	for permutation := range generator.Permutations() {
		tuple := lo.Map(permutation, func(position uint64, _ int) int64 { return values[position] })

		evaluated++
		satisfied, err := predicate(tuple)
		if err != nil {
			return NoSolution(), fmt.Errorf("cannot evaluate permutation %v: %w", tuple, err)
		} else if satisfied {
			return Solution{
				values:    tuple,
				found:     true,
				rank:      evaluated - 1,
				evaluated: evaluated,
			}, nil
		}
	}

	return Solution{evaluated: evaluated}, nil
}

func (searcher *permutationSearcher) Verify(values []int64, predicate Predicate, solution Solution) bool {
	return verify(values, predicate, solution)
}
