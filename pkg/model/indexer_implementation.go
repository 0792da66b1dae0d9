package model

import (
	"log"
	"slices"
)

type indexerImplementation struct {
	positions  uint64
	factorials []uint64 // factorials[i] = i!
}

// The index is the permutation's Lehmer code read as a number in the factorial number system
func (indexer *indexerImplementation) Index(permutation []uint64) uint64 {
	if uint64(len(permutation)) != indexer.positions {
		log.Panicf("permutation %v does not have %v positions", permutation, indexer.positions)
	}

	index := uint64(0)
	for i, position := range permutation {
		smaller := uint64(0) // Amount of positions to the right that are smaller than the current one
		for _, next := range permutation[i+1:] {
			if next < position {
				smaller++
			}
		}
		index += smaller * indexer.factorials[indexer.positions-uint64(i)-1]
	}
	return index
}

func (indexer *indexerImplementation) Permutation(index uint64) []uint64 {
	if index >= indexer.Count() {
		log.Panicf("index %v is out of range for %v positions", index, indexer.positions)
	}

	remaining := make([]uint64, 0, indexer.positions)
	for position := range indexer.positions {
		remaining = append(remaining, position)
	}

	permutation := make([]uint64, 0, indexer.positions)
	for i := range indexer.positions {
		factorial := indexer.factorials[indexer.positions-i-1]
		digit := index / factorial
		index = index % factorial

		permutation = append(permutation, remaining[digit])
		remaining = slices.Delete(remaining, int(digit), int(digit)+1)
	}
	return permutation
}

func (indexer *indexerImplementation) Count() uint64 {
	return indexer.factorials[indexer.positions]
}
