package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelIDs(t *testing.T) {
	tests := []struct {
		testName string
		count    int
		excluded []int
		expected []int
	}{
		{
			testName: "no_exclusions",
			count:    4,
			expected: []int{0, 1, 2, 3},
		},
		{
			testName: "default_exclusions",
			count:    DefaultModelCount,
			excluded: DefaultExcludedModels,
			expected: []int{0, 1, 2, 3, 4, 5, 6, 8, 9, 10, 11, 12, 13, 14, 15, 16, 18, 19},
		},
		{
			testName: "exclusion_out_of_range",
			count:    2,
			excluded: []int{5},
			expected: []int{0, 1},
		},
		{
			testName: "empty",
			count:    0,
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			assert.Equal(t, test.expected, ModelIDs(test.count, test.excluded))
		})
	}
}

func TestModelName(t *testing.T) {
	assert.Equal(t, "3-model", ModelName(3))
}

func TestMinMaxOf(t *testing.T) {
	assert.Equal(t, 1, MinOf(3, 1, 2))
	assert.Equal(t, 3, MaxOf(3, 1, 2))
	assert.Equal(t, 0.5, MinOf(0.5, 2.0))
	assert.Equal(t, 2.0, MaxOf(0.5, 2.0))
}
