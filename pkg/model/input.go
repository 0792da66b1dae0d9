package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

type RawScenario struct {
	Numbers  []int64
	Target   *int64
	Solution []int64
}

// Scenario is a puzzle instance together with the first tuple a search over its numbers must find (nil if none)
type Scenario struct {
	Numbers  []int64
	Target   int64
	Solution []int64
}

func ScenarioFromJson(file string) (Scenario, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Scenario{}, err
	}

	var inputJson map[string]any
	err = json.Unmarshal(bytes, &inputJson)
	if err != nil {
		return Scenario{}, err
	}

	var rawScenario RawScenario
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: integralNumberHook,
		Result:     &rawScenario,
	})
	if err != nil {
		return Scenario{}, err
	}
	if err := decoder.Decode(inputJson); err != nil {
		return Scenario{}, fmt.Errorf("cannot decode scenario \"%v\": %w", file, err)
	}
	return ProcessRawScenario(rawScenario)
}

func ProcessRawScenario(rawScenario RawScenario) (Scenario, error) {
	scenario := Scenario{
		Numbers:  rawScenario.Numbers,
		Target:   DefaultTarget,
		Solution: rawScenario.Solution,
	}

	if rawScenario.Target != nil {
		scenario.Target = *rawScenario.Target
	}

	if len(scenario.Numbers) == 0 {
		return Scenario{}, fmt.Errorf("scenario must have at least one number")
	} else if scenario.Solution == nil {
		return scenario, nil
	}

	// Make sure the expected solution is an arrangement of the scenario's numbers
	if len(scenario.Solution) != len(scenario.Numbers) {
		return Scenario{}, fmt.Errorf("solution %v does not have as many values as numbers %v", scenario.Solution, scenario.Numbers)
	} else if !isPermutationOf(scenario.Solution, scenario.Numbers) {
		return Scenario{}, fmt.Errorf("solution %v is not a permutation of numbers %v", scenario.Solution, scenario.Numbers)
	}

	return scenario, nil
}

// JSON numbers arrive as float64. Decoding one with a fractional part into an integer would silently truncate it
func integralNumberHook(from reflect.Kind, to reflect.Kind, data any) (any, error) {
	if from != reflect.Float64 || to != reflect.Int64 {
		return data, nil
	}

	if value := data.(float64); value != math.Trunc(value) {
		return nil, fmt.Errorf("%v is not an integer", value)
	}
	return data, nil
}
