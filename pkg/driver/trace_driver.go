/*
 * MIT License
 *
 * Copyright (c) 2023 EASL and the vHive community
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/vhive-serverless/orcbench/pkg/common"
	"github.com/vhive-serverless/orcbench/pkg/config"
	"github.com/vhive-serverless/orcbench/pkg/function"
	"github.com/vhive-serverless/orcbench/pkg/generator"
	"github.com/vhive-serverless/orcbench/pkg/metric"
	"github.com/vhive-serverless/orcbench/pkg/model"
)

type Driver struct {
	Configuration *config.OrcBenchConfiguration

	repository *model.Repository
	exporter   *metric.Exporter
}

func NewDriver(cfg *config.OrcBenchConfiguration) *Driver {
	return &Driver{
		Configuration: cfg,
		repository:    model.NewRepository(cfg.ModelDirectory, cfg.ModelIDs()),
		exporter:      metric.NewExporter(),
	}
}

// Result what one experiment produced.
type Result struct {
	Jobs  generator.JobMap
	Trace []common.TraceEvent
}

// RunExperiment partitions the models, generates the trace and writes every
// configured artifact under the output prefix.
func (d *Driver) RunExperiment() (*Result, error) {
	cfg := d.Configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	jobs, err := generator.NewPartitioner(d.repository).Partition(cfg.JobSize, cfg.Scale, cfg.Seed)
	if errors.Is(err, generator.ErrNotReady) {
		return nil, fmt.Errorf("%w: missing %v in %s", err, d.repository.Missing(), cfg.ModelDirectory)
	} else if err != nil {
		return nil, err
	}

	log.Infof("Generating a %.0fs trace for %d models", cfg.Horizon, len(jobs))

	trace, err := generator.TraceAll(jobs, cfg.Horizon)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.OutputPathPrefix), os.ModePerm); err != nil {
		return nil, err
	}

	d.exporter.ReportJobs(jobs)
	d.exporter.ReportTrace(trace)
	if err := d.exporter.FinishAndSave(cfg.OutputPathPrefix); err != nil {
		return nil, err
	}

	if cfg.GenerateFunctions {
		if err := d.writeFunctions(jobs); err != nil {
			return nil, err
		}
	}

	if cfg.PlotArrivals {
		plotPath := cfg.OutputPathPrefix + "_arrivals.png"
		if err := metric.PlotArrivals(plotPath, trace, cfg.Horizon, cfg.PlotBinSeconds); err != nil {
			log.Warn("Failed to plot arrivals: ", err)
		} else {
			log.Infof("Arrival histogram written to %s", plotPath)
		}
	}

	return &Result{Jobs: jobs, Trace: trace}, nil
}

// FunctionsDirectory where generated stubs go, one subdirectory per model.
func (d *Driver) FunctionsDirectory() string {
	return d.Configuration.OutputPathPrefix + "_functions"
}

func (d *Driver) writeFunctions(jobs generator.JobMap) error {
	kind, err := function.ParseKind(d.Configuration.FunctionKind)
	if err != nil {
		return err
	}

	root := d.FunctionsDirectory()
	written := 0

	for _, name := range jobs.Names() {
		dir := filepath.Join(root, name)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}

		for _, job := range jobs[name] {
			programs, err := function.GenerateForJob(job, kind)
			if err != nil {
				return err
			}

			for id, program := range programs {
				if err := os.WriteFile(filepath.Join(dir, id+kind.Extension()), []byte(program), 0644); err != nil {
					return err
				}
				written++
			}
		}
	}

	log.Infof("Wrote %d %s functions to %s", written, kind, root)

	return nil
}
