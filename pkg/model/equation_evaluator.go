package model

import "fmt"

const (
	EquationArity       = 5   // Number of positional variables (v0..v4) the equation is defined over
	DefaultTarget int64 = 399 // Value the equation must equal for a tuple to be a solution
)

type EquationEvaluator interface {
	// Returns v0 + v1*(v2^2) + v3^3 - v4 where v0..v4 are the tuple's values in order
	Evaluate(tuple []int64) (int64, error)

	// Checks whether the tuple evaluates to the evaluator's target
	Satisfied(tuple []int64) (bool, error)
}

func NewEquationEvaluator(target int64) EquationEvaluator {
	return &equationEvaluatorStandard{
		target: target,
	}
}

// Computes the equation over its five positional variables. Exponents are expanded into integer products so v1*(v2^2) is never read as (v1*v2)^2.
// Arithmetic is int64 and wraps silently on overflow (e.g. v3^3 once |v3| exceeds 2097151)
func EvalEquation(v0, v1, v2, v3, v4 int64) int64 {
	return v0 + v1*(v2*v2) + (v3 * v3 * v3) - v4
}

type malformedTupleError struct {
	length int
}

func (err malformedTupleError) Error() string {
	return fmt.Sprintf("equation expects a tuple of %d values but got %d", EquationArity, err.length)
}
