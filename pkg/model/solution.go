package model

import (
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Solution holds either the first tuple that satisfied a search's predicate or the absence of one.
// The zero value is the absent solution
type Solution struct {
	values    []int64
	found     bool
	rank      uint64 // Lexicographic index of the matching permutation
	evaluated uint64 // Amount of predicate evaluations the search performed
}

func NoSolution() Solution {
	return Solution{}
}

func (solution Solution) Found() bool {
	return solution.found
}

// Returns a copy of the matching tuple and true, or nil and false if the solution is absent
func (solution Solution) Values() ([]int64, bool) {
	if !solution.found {
		return nil, false
	}
	return slices.Clone(solution.values), true
}

// Returns the lexicographic index of the matching permutation. Meaningless for an absent solution
func (solution Solution) Rank() uint64 {
	return solution.rank
}

func (solution Solution) Evaluated() uint64 {
	return solution.evaluated
}

func (solution Solution) String() string {
	if !solution.found {
		return "None"
	}

	values := lo.Map(solution.values, func(value int64, _ int) string {
		return strconv.FormatInt(value, 10)
	})
	return "(" + strings.Join(values, ", ") + ")"
}
