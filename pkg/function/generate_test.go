package function

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vhive-serverless/orcbench/pkg/generator"
	"github.com/vhive-serverless/orcbench/pkg/model"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		testName string
		input    string
		expected Kind
		fails    bool
	}{
		{testName: "python", input: "python", expected: Python},
		{testName: "python_upper", input: "Python", expected: Python},
		{testName: "go", input: "go", expected: Go},
		{testName: "golang", input: "golang", expected: Go},
		{testName: "empty", input: "", expected: Unsupported, fails: true},
		{testName: "unknown", input: "rust", expected: Unsupported, fails: true},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			kind, err := ParseKind(test.input)

			assert.Equal(t, test.expected, kind)
			if test.fails {
				assert.True(t, errors.Is(err, ErrUnsupportedKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, strings.ToLower(test.expected.String()), test.expected.String())
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	spec := Specification{Name: "f-1", Runtime: 0.25, Memory: 128.7}

	program, err := Generate(Python, spec)
	require.NoError(t, err)
	assert.Contains(t, program, "(time.time() - t) < 0.250000")
	assert.Contains(t, program, "MEMORY_MIB = 128")
	assert.Contains(t, program, "f-1")

	program, err = Generate(Go, spec)
	require.NoError(t, err)
	assert.Contains(t, program, "package main")
	assert.Contains(t, program, "runtimeSeconds = 0.250000")
	assert.Contains(t, program, "memoryMiB      = 128")
}

func TestGenerateClampsMemory(t *testing.T) {
	program, err := Generate(Python, Specification{Name: "big", Runtime: 1, Memory: 1e9})
	require.NoError(t, err)
	assert.Contains(t, program, "MEMORY_MIB = 10240")

	program, err = Generate(Python, Specification{Name: "small", Runtime: 1, Memory: 0.1})
	require.NoError(t, err)
	assert.Contains(t, program, "MEMORY_MIB = 1\n")
}

func TestGenerateUnsupported(t *testing.T) {
	program, err := Generate(Unsupported, Specification{Name: "x"})
	assert.Empty(t, program)
	assert.True(t, errors.Is(err, ErrUnsupportedKind))

	_, err = Generate(Kind(42), Specification{Name: "x"})
	assert.True(t, errors.Is(err, ErrUnsupportedKind))
}

func testModel(t *testing.T) *model.WorkloadModel {
	m, err := model.NewWorkloadModel("5-model", &model.Definition{
		InverseECDF:  []float64{1, 1},
		MBs:          []float64{0.0078125},
		CPU:          []float64{2},
		NumFunctions: 3,
	}, 1)
	require.NoError(t, err)

	return m
}

func TestCreate(t *testing.T) {
	program, err := Create(testModel(t), Python)
	require.NoError(t, err)

	assert.Contains(t, program, "MEMORY_MIB = 128")
	assert.Contains(t, program, "< 0.500000")
}

func TestGenerateForJob(t *testing.T) {
	job, err := generator.NewJob(testModel(t), 3, 9)
	require.NoError(t, err)

	programs, err := GenerateForJob(job, Go)
	require.NoError(t, err)
	require.Len(t, programs, 3)

	for _, id := range job.Identities() {
		assert.Contains(t, programs[id], "// "+id)
		assert.Contains(t, programs[id], "runtimeSeconds = 0.500000")
	}

	_, err = GenerateForJob(job, Unsupported)
	assert.True(t, errors.Is(err, ErrUnsupportedKind))
}
