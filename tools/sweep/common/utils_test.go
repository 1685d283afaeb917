package common

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vhive-serverless/orcbench/pkg/config"
	"github.com/vhive-serverless/orcbench/tools/sweep/types"
)

func TestNextProduct(t *testing.T) {
	ints := []int{2, 1}
	nextProduct := NextCProduct(ints)
	expectedArrs := [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}
	curI := 0

	for {
		product := nextProduct()
		if len(product) == 0 {
			if curI != len(expectedArrs) {
				t.Fatalf("Expected %d products, got %d", len(expectedArrs), curI)
			}
			break
		}
		if len(product) != len(ints) {
			t.Fatalf("Expected product length %d, got %d", len(ints), len(product))
		}
		for i, v := range product {
			if v != expectedArrs[curI][i] {
				t.Fatalf("Expected %v, got %v", expectedArrs[curI], product)
			}
		}
		curI++
	}
}

func TestNextProductEmpty(t *testing.T) {
	nextProduct := NextCProduct(nil)
	assert.Empty(t, nextProduct())
	assert.Nil(t, nextProduct())
}

func TestSweepOptionsToPostfix(t *testing.T) {
	result := SweepOptionsToPostfix(
		[]types.SweepOptions{
			{Field: "Scale", Values: []interface{}{0.5, 1.0}},
			{Field: "JobSize", Values: []interface{}{10, 100, 1000}},
		},
		[]int{0, 2},
	)
	assert.Equal(t, "_Scale_0.5_JobSize_1000", result)
}

func TestApplySweepValue(t *testing.T) {
	tests := []struct {
		testName string
		field    string
		value    interface{}
		check    func(t *testing.T, cfg config.OrcBenchConfiguration)
		fails    bool
	}{
		{
			testName: "seed",
			field:    "Seed",
			value:    7.0,
			check:    func(t *testing.T, cfg config.OrcBenchConfiguration) { assert.Equal(t, int64(7), cfg.Seed) },
		},
		{
			testName: "job_size",
			field:    "JobSize",
			value:    25,
			check:    func(t *testing.T, cfg config.OrcBenchConfiguration) { assert.Equal(t, 25, cfg.JobSize) },
		},
		{
			testName: "scale",
			field:    "Scale",
			value:    0.25,
			check:    func(t *testing.T, cfg config.OrcBenchConfiguration) { assert.Equal(t, 0.25, cfg.Scale) },
		},
		{
			testName: "horizon",
			field:    "Horizon",
			value:    60.0,
			check:    func(t *testing.T, cfg config.OrcBenchConfiguration) { assert.Equal(t, 60.0, cfg.Horizon) },
		},
		{
			testName: "function_kind",
			field:    "FunctionKind",
			value:    "go",
			check:    func(t *testing.T, cfg config.OrcBenchConfiguration) { assert.Equal(t, "go", cfg.FunctionKind) },
		},
		{testName: "wrong_type", field: "Scale", value: "big", fails: true},
		{testName: "kind_not_string", field: "FunctionKind", value: 3.0, fails: true},
		{testName: "unknown_field", field: "ModelDirectory", value: 1.0, fails: true},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			cfg := config.DefaultConfiguration()
			err := ApplySweepValue(&cfg, test.field, test.value)

			if test.fails {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			test.check(t, cfg)
		})
	}
}
