package generator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vhive-serverless/orcbench/pkg/model"
)

type namedDefinition struct {
	name       string
	definition *model.Definition
}

type memoryRepository struct {
	ready       bool
	definitions []namedDefinition
}

func (r *memoryRepository) IsReady() bool {
	return r.ready
}

func (r *memoryRepository) LoadAll(seeds *model.SeedSequence) ([]*model.WorkloadModel, error) {
	var result []*model.WorkloadModel
	for _, d := range r.definitions {
		m, err := model.NewWorkloadModel(d.name, d.definition, seeds.Next())
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}

	return result, nil
}

func definition(interarrival []float64, weight int) *model.Definition {
	return &model.Definition{
		InverseECDF:  interarrival,
		MBs:          []float64{0.01, 0.002, 0.001},
		CPU:          []float64{2, 4, 8},
		NumFunctions: weight,
	}
}

func newTestModel(t *testing.T, interarrival []float64) *model.WorkloadModel {
	m, err := model.NewWorkloadModel("test-model", definition(interarrival, 1), 7)
	require.NoError(t, err)

	return m
}

func newTestJob(t *testing.T, interarrival []float64, functions int) *Job {
	job, err := NewJob(newTestModel(t, interarrival), functions, 11)
	require.NoError(t, err)

	return job
}
