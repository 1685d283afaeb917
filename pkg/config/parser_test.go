package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigParser(t *testing.T) {
	var pathToConfigFile = ""
	wd, _ := os.Getwd()

	if strings.HasSuffix(wd, "pkg/config") {
		pathToConfigFile = "../../"
	}
	pathToConfigFile += "cmd/config.json"

	config := ReadConfigurationFile(pathToConfigFile)

	if config.Seed != 42 ||
		config.ModelDirectory != "data/models" ||
		config.ModelCount != 20 ||
		len(config.ExcludedModels) != 2 ||
		config.JobSize != 100 ||
		config.Scale != 1.0 ||
		config.Horizon != 3600 ||
		config.OutputPathPrefix != "data/out/orcbench" ||
		config.FunctionKind != "python" ||
		config.GenerateFunctions != false ||
		config.PlotArrivals != false {

		t.Error("Unexpected configuration read.")
	}

	assert.NoError(t, config.Validate())
}

func TestYAMLConfigParser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "Seed: 7\nJobSize: 5\nScale: 0.5\nFunctionKind: go\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config := ReadConfigurationFile(path)

	assert.Equal(t, int64(7), config.Seed)
	assert.Equal(t, 5, config.JobSize)
	assert.Equal(t, 0.5, config.Scale)
	assert.Equal(t, "go", config.FunctionKind)
	// untouched fields keep their defaults
	assert.Equal(t, 3600.0, config.Horizon)
	assert.Equal(t, []int{7, 17}, config.ExcludedModels)
	assert.NoError(t, config.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		testName string
		mutate   func(c *OrcBenchConfiguration)
		valid    bool
	}{
		{testName: "defaults", mutate: func(c *OrcBenchConfiguration) {}, valid: true},
		{testName: "zero_job_size", mutate: func(c *OrcBenchConfiguration) { c.JobSize = 0 }},
		{testName: "negative_scale", mutate: func(c *OrcBenchConfiguration) { c.Scale = -1 }},
		{testName: "zero_scale", mutate: func(c *OrcBenchConfiguration) { c.Scale = 0 }, valid: true},
		{testName: "negative_horizon", mutate: func(c *OrcBenchConfiguration) { c.Horizon = -0.1 }},
		{testName: "unknown_kind", mutate: func(c *OrcBenchConfiguration) { c.FunctionKind = "cobol" }},
		{testName: "no_models", mutate: func(c *OrcBenchConfiguration) { c.ModelCount = 0 }},
		{testName: "plot_without_bins", mutate: func(c *OrcBenchConfiguration) {
			c.PlotArrivals = true
			c.PlotBinSeconds = 0
		}},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			config := DefaultConfiguration()
			test.mutate(&config)

			err := config.Validate()
			if test.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
