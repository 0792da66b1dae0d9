package model

type equationEvaluatorStandard struct {
	target int64
}

func (evaluator *equationEvaluatorStandard) Evaluate(tuple []int64) (int64, error) {
	if len(tuple) != EquationArity {
		return 0, malformedTupleError{length: len(tuple)}
	}
	return EvalEquation(tuple[0], tuple[1], tuple[2], tuple[3], tuple[4]), nil
}

func (evaluator *equationEvaluatorStandard) Satisfied(tuple []int64) (bool, error) {
	result, err := evaluator.Evaluate(tuple)
	if err != nil {
		return false, err
	}
	return result == evaluator.target, nil
}
