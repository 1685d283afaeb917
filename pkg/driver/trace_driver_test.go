package driver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vhive-serverless/orcbench/pkg/config"
	"github.com/vhive-serverless/orcbench/pkg/generator"
	"github.com/vhive-serverless/orcbench/pkg/metric"
	"github.com/vhive-serverless/orcbench/pkg/model"
)

func createTestDriver(t *testing.T) *Driver {
	modelDir := t.TempDir()
	repository := model.NewRepository(modelDir, []int{0, 1, 2})

	weights := []int{7, 0, 3}
	for id, weight := range weights {
		require.NoError(t, repository.WriteDefinition(id, &model.Definition{
			InverseECDF:  []float64{0.5, 1.0, 2.0},
			MBs:          []float64{0.0078125, 0.00390625},
			CPU:          []float64{4, 8},
			NumFunctions: weight,
		}))
	}

	cfg := config.DefaultConfiguration()
	cfg.ModelDirectory = modelDir
	cfg.ModelCount = 3
	cfg.ExcludedModels = nil
	cfg.JobSize = 4
	cfg.Horizon = 30
	cfg.OutputPathPrefix = filepath.Join(t.TempDir(), "out", "experiment")

	return NewDriver(&cfg)
}

func TestRunExperiment(t *testing.T) {
	driver := createTestDriver(t)
	driver.Configuration.GenerateFunctions = true
	driver.Configuration.FunctionKind = "go"
	driver.Configuration.PlotArrivals = true
	driver.Configuration.PlotBinSeconds = 5

	result, err := driver.RunExperiment()
	require.NoError(t, err)

	assert.Equal(t, []string{"0-model", "2-model"}, result.Jobs.Names())
	assert.Equal(t, 10, result.Jobs.TotalFunctions())
	require.NotEmpty(t, result.Trace)

	prefix := driver.Configuration.OutputPathPrefix
	for _, suffix := range []string{"_trace.csv", "_jobs.csv", "_summary.csv", "_arrivals.png"} {
		_, err := os.Stat(prefix + suffix)
		assert.NoError(t, err, suffix)
	}

	trace, err := metric.ReadTrace(metric.TracePath(prefix))
	require.NoError(t, err)
	assert.Len(t, trace, len(result.Trace))

	for _, name := range result.Jobs.Names() {
		for _, job := range result.Jobs[name] {
			for _, id := range job.Identities() {
				_, err := os.Stat(filepath.Join(driver.FunctionsDirectory(), name, id+".go"))
				assert.NoError(t, err)
			}
		}
	}
}

func TestRunExperimentReproducible(t *testing.T) {
	first := createTestDriver(t)
	second := createTestDriver(t)

	a, err := first.RunExperiment()
	require.NoError(t, err)
	b, err := second.RunExperiment()
	require.NoError(t, err)

	assert.Equal(t, a.Trace, b.Trace)
}

func TestRunExperimentNotReady(t *testing.T) {
	driver := createTestDriver(t)
	driver.Configuration.ModelCount = 5
	driver.repository = model.NewRepository(driver.Configuration.ModelDirectory, driver.Configuration.ModelIDs())

	_, err := driver.RunExperiment()
	assert.True(t, errors.Is(err, generator.ErrNotReady))
	assert.Contains(t, err.Error(), "3-model")
}

func TestRunExperimentInvalidConfiguration(t *testing.T) {
	driver := createTestDriver(t)
	driver.Configuration.JobSize = 0

	_, err := driver.RunExperiment()
	assert.Error(t, err)
}
