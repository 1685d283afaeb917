package runner

import (
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/vhive-serverless/orcbench/pkg/config"
	"github.com/vhive-serverless/orcbench/pkg/driver"
	sweep_common "github.com/vhive-serverless/orcbench/tools/sweep/common"
	"github.com/vhive-serverless/orcbench/tools/sweep/types"
)

type Experiment struct {
	Name   string
	Config config.OrcBenchConfiguration
}

type SweepRunner struct {
	SweepConfig   types.SweepConfiguration
	BaseConfig    config.OrcBenchConfiguration
	DryRunSuccess bool
	FailFast      bool
}

func NewSweepRunner(sweepConfig types.SweepConfiguration, baseConfig config.OrcBenchConfiguration, failFast bool) (*SweepRunner, error) {
	for i := range sweepConfig.Studies {
		if err := sweepConfig.Studies[i].Validate(); err != nil {
			return nil, err
		}
	}

	return &SweepRunner{
		SweepConfig:   sweepConfig,
		BaseConfig:    baseConfig,
		DryRunSuccess: true,
		FailFast:      failFast,
	}, nil
}

// RunDryRun validates every unpacked experiment without synthesizing any trace.
func (r *SweepRunner) RunDryRun() {
	log.Info("Running dry runs")
	for _, study := range r.SweepConfig.Studies {
		experiments, err := r.UnpackStudy(study)
		if err != nil {
			log.Errorf("Study %s cannot be unpacked: %v", study.Name, err)
			r.DryRunSuccess = false
			continue
		}

		for _, experiment := range experiments {
			if err := experiment.Config.Validate(); err != nil {
				log.Errorf("Experiment %s is invalid: %v", experiment.Name, err)
				r.DryRunSuccess = false
			}
		}
	}
}

// RunActual executes all studies and returns the number of failed experiments.
func (r *SweepRunner) RunActual() int {
	log.Info("Running actual experiments")
	failed := 0

	for _, study := range r.SweepConfig.Studies {
		experiments, err := r.UnpackStudy(study)
		if err != nil {
			log.Errorf("Study %s cannot be unpacked: %v", study.Name, err)
			failed++
			continue
		}

		for _, experiment := range experiments {
			log.Infof("Running experiment %s", experiment.Name)

			cfg := experiment.Config
			_, err := driver.NewDriver(&cfg).RunExperiment()
			if err != nil {
				log.Errorf("Experiment %s failed: %v", experiment.Name, err)
				failed++

				if r.FailFast {
					log.Error("Skipping remaining experiments in study ", study.Name)
					break
				}
			}
		}

		log.Info("All experiments for ", study.Name, " completed")
	}

	return failed
}

/**
* UnpackStudy expands the Cartesian product of a study's sweep values into
* experiments, each overriding the base configuration
 */
func (r *SweepRunner) UnpackStudy(study types.Study) ([]Experiment, error) {
	limits := make([]int, len(study.Sweep))
	for i, option := range study.Sweep {
		limits[i] = len(option.Values) - 1
	}

	var experiments []Experiment
	nextProduct := sweep_common.NextCProduct(limits)
	for {
		product := nextProduct()
		if product == nil {
			break
		}

		cfg := r.BaseConfig
		cfg.ExcludedModels = append([]int(nil), r.BaseConfig.ExcludedModels...)

		for i, option := range study.Sweep {
			err := sweep_common.ApplySweepValue(&cfg, option.Field, option.Values[product[i]])
			if err != nil {
				return nil, fmt.Errorf("study %s: %w", study.Name, err)
			}
		}

		name := study.Name + sweep_common.SweepOptionsToPostfix(study.Sweep, product)
		cfg.OutputPathPrefix = filepath.Join(study.OutputDir, name)

		experiments = append(experiments, Experiment{Name: name, Config: cfg})
	}

	return experiments, nil
}
