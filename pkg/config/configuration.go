package config

import (
	"errors"
	"fmt"

	"github.com/vhive-serverless/orcbench/pkg/common"
	"github.com/vhive-serverless/orcbench/pkg/function"
)

func DefaultConfiguration() OrcBenchConfiguration {
	return OrcBenchConfiguration{
		Seed:           42,
		ModelDirectory: "data/models",
		ModelCount:     common.DefaultModelCount,
		ExcludedModels: append([]int(nil), common.DefaultExcludedModels...),

		JobSize: common.DefaultJobSize,
		Scale:   common.DefaultScale,
		Horizon: common.DefaultHorizon,

		OutputPathPrefix: "data/out/orcbench",
		FunctionKind:     function.Python.String(),

		PlotBinSeconds: common.DefaultPlotBinSeconds,
	}
}

func (c *OrcBenchConfiguration) Validate() error {
	switch {
	case c.ModelDirectory == "":
		return errors.New("model directory not set")
	case c.ModelCount <= 0:
		return fmt.Errorf("model count must be positive, got %d", c.ModelCount)
	case c.JobSize <= 0:
		return fmt.Errorf("job size must be positive, got %d", c.JobSize)
	case c.Scale < 0:
		return fmt.Errorf("scale must be non-negative, got %f", c.Scale)
	case c.Horizon < 0:
		return fmt.Errorf("horizon must be non-negative, got %f", c.Horizon)
	case c.PlotArrivals && c.PlotBinSeconds <= 0:
		return fmt.Errorf("plot bin width must be positive, got %f", c.PlotBinSeconds)
	}

	if _, err := function.ParseKind(c.FunctionKind); err != nil {
		return err
	}

	return nil
}

func (c *OrcBenchConfiguration) ModelIDs() []int {
	return common.ModelIDs(c.ModelCount, c.ExcludedModels)
}
