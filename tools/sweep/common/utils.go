package common

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/vhive-serverless/orcbench/pkg/config"
	"github.com/vhive-serverless/orcbench/tools/sweep/types"
)

func ReadSweepConfigurationFile(path string) types.SweepConfiguration {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	var sweepConfig types.SweepConfiguration
	err = json.Unmarshal(byteValue, &sweepConfig)
	if err != nil {
		log.Fatal(err)
	}

	return sweepConfig
}

/**
 * NextCProduct generates the next Cartesian product of the given limits
 **/
func NextCProduct(limits []int) func() []int {
	permutations := make([]int, len(limits))
	indices := make([]int, len(limits))
	done := false

	return func() []int {
		// Check if there are more permutations
		if done {
			return nil
		}

		// Generate the current permutation
		copy(permutations, indices)

		// Generate the next permutation
		for i := len(indices) - 1; i >= 0; i-- {
			indices[i]++
			if indices[i] <= limits[i] {
				break
			}
			indices[i] = 0
			if i == 0 {
				// All permutations have been generated
				done = true
			}
		}
		if len(indices) == 0 {
			done = true
		}

		return permutations
	}
}

func SweepOptionsToPostfix(sweepOptions []types.SweepOptions, selectedSweepValues []int) string {
	var postfix string
	for i, sweepOption := range sweepOptions {
		postfix += fmt.Sprintf("_%s_%v", sweepOption.Field, sweepOption.Values[selectedSweepValues[i]])
	}
	return postfix
}

func toFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("expected a number, got %v", value)
	}
}

// ApplySweepValue overrides one field of an orcbench configuration.
func ApplySweepValue(cfg *config.OrcBenchConfiguration, field string, value interface{}) error {
	if field == "FunctionKind" {
		kind, ok := value.(string)
		if !ok {
			return fmt.Errorf("FunctionKind expects a string, got %v", value)
		}
		cfg.FunctionKind = kind
		return nil
	}

	number, err := toFloat(value)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}

	switch field {
	case "Seed":
		cfg.Seed = int64(number)
	case "JobSize":
		cfg.JobSize = int(number)
	case "Scale":
		cfg.Scale = number
	case "Horizon":
		cfg.Horizon = number
	default:
		return fmt.Errorf("unknown sweep field %s", field)
	}

	return nil
}
