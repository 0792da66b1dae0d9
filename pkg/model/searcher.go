package model

// Returns the numbers searched by default. Each call builds a new slice so callers are free to modify it
func DefaultNumbers() []int64 {
	return []int64{2, 3, 5, 7, 9}
}

// Predicate tells whether a candidate tuple is a match. An error aborts the search
type Predicate func(tuple []int64) (bool, error)

type Searcher interface {
	// Evaluates the predicate over every permutation of values in lexicographic order and returns the first match.
	// Exhausting all permutations without a match is not an error: the absent solution is returned instead
	Search(values []int64, predicate Predicate) (Solution, error)

	// Checks whether the solution is exactly what Search must return for the given values and predicate
	Verify(values []int64, predicate Predicate, solution Solution) bool
}

func NewPermutationSearcher() Searcher {
	return &permutationSearcher{}
}

// Searches the permutations of values for the first one that evaluates to DefaultTarget
func SolveEquation(values []int64) (Solution, error) {
	evaluator := NewEquationEvaluator(DefaultTarget)
	searcher := NewPermutationSearcher()
	return searcher.Search(values, evaluator.Satisfied)
}
