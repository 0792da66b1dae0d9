package model

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermutationsLexicographicOrder(t *testing.T) {
	generator := newPermutationGenerator(3)

	permutations := slices.Collect(generator.Permutations())

	assert.Equal(t, [][]uint64{
		{0, 1, 2},
		{0, 2, 1},
		{1, 0, 2},
		{1, 2, 0},
		{2, 0, 1},
		{2, 1, 0},
	}, permutations)
}

func TestPermutationsCount(t *testing.T) {
	scenarios := map[uint64]int{
		0: 1,
		1: 1,
		2: 2,
		3: 6,
		4: 24,
		5: 120,
		6: 720,
	}

	for positions, expected := range scenarios {
		// Arrange
		generator := newPermutationGenerator(positions)
		seen := make(map[string]bool)

		// Act
		count := 0
		for permutation := range generator.Permutations() {
			count++
			seen[fmt.Sprint(permutation)] = true
			assert.Len(t, permutation, int(positions))
		}

		// Assert
		assert.Equal(t, expected, count)
		assert.Len(t, seen, expected) // Every permutation is distinct
	}
}

func TestPermutationsAreRestartable(t *testing.T) {
	generator := newPermutationGenerator(4)

	first := slices.Collect(generator.Permutations())
	second := slices.Collect(generator.Permutations())

	assert.Equal(t, first, second)
}

func TestPermutationsStopEarly(t *testing.T) {
	generator := newPermutationGenerator(5)

	count := 0
	for range generator.Permutations() {
		count++
		if count == 7 {
			break
		}
	}

	assert.Equal(t, 7, count)
}

func TestPermutationsAreOwnedByConsumer(t *testing.T) {
	generator := newPermutationGenerator(3)

	permutations := make([][]uint64, 0)
	for permutation := range generator.Permutations() {
		permutations = append(permutations, permutation)
		permutation[0] = 99 // Must not affect the following permutations
	}

	assert.Equal(t, []uint64{99, 1, 0}, permutations[5])
	assert.Equal(t, []uint64{99, 0, 2}, permutations[2])
}

func TestPermutationsMatchIndexer(t *testing.T) {
	for positions := range uint64(7) {
		generator := newPermutationGenerator(positions)
		indexer := newIndexer(positions)

		rank := uint64(0)
		for permutation := range generator.Permutations() {
			assert.Equal(t, rank, indexer.Index(permutation))
			assert.Equal(t, permutation, indexer.Permutation(rank))
			rank++
		}
		assert.Equal(t, indexer.Count(), rank)
	}
}
