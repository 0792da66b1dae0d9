package main

import (
	"fmt"
	"log"

	"github.com/limaJavier/coinsolver/pkg/model"
)

func main() {
	solution, err := model.SolveEquation(model.DefaultNumbers())
	if err != nil {
		log.Fatalf("an error occurred while searching for a solution: %v", err)
	}

	// An absent solution is a valid outcome and is printed as such
	fmt.Println(solution)
}
