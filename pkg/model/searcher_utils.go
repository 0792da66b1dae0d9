package model

import (
	"slices"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

func verify(values []int64, predicate Predicate, solution Solution) bool {
	if len(values) > MaxIndexablePositions {
		return false
	}

	// A solution that's not an arrangement of values is rejected before replaying the enumeration
	if solution.Found() && !isPermutationOf(solution.values, values) {
		return false
	}

	indexer := newIndexer(uint64(len(values)))

	//** Every permutation ranked before the solution (all of them if it's absent) must not satisfy the predicate
	earlier := indexer.Count()
	if solution.Found() {
		if solution.rank >= earlier {
			return false
		}
		earlier = solution.rank
	}

	for rank := range earlier {
		satisfied, err := predicate(tupleAt(values, indexer, rank))
		if err != nil || satisfied {
			return false
		}
	}

	if !solution.Found() {
		return true
	}

	//** The solution must be the permutation it claims to be and satisfy the predicate
	if !slices.Equal(tupleAt(values, indexer, solution.rank), solution.values) {
		return false
	}

	satisfied, err := predicate(solution.values)
	return err == nil && satisfied
}

func tupleAt(values []int64, indexer indexer, rank uint64) []int64 {
	return lo.Map(indexer.Permutation(rank), func(position uint64, _ int) int64 { return values[position] })
}

// Checks whether tuple and values hold the same multiset, that is, whether each tuple's value can be matched to a distinct equal value
func isPermutationOf(tuple, values []int64) bool {
	if len(tuple) != len(values) {
		return false
	} else if len(tuple) == 0 {
		return true
	}

	// Build neighbors predicate based on equality
	neighbors := func(tupleValueAny any, valueAny any) (bool, error) {
		return tupleValueAny.(int64) == valueAny.(int64), nil
	}

	// Transform tuple and values to slices of any
	tupleAny, valuesAny := lo.Map(tuple, func(value int64, _ int) any { return value }), lo.Map(values, func(value int64, _ int) any { return value })

	graph, err := bipartitegraph.NewBipartiteGraph(tupleAny, valuesAny, neighbors)
	if err != nil {
		return false
	}

	// Check the matching is a perfect one
	return len(graph.LargestMatching()) == len(tuple)
}
