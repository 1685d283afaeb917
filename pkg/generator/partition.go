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

package generator

import (
	"fmt"
	"math"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/vhive-serverless/orcbench/pkg/model"
)

type ModelRepository interface {
	IsReady() bool
	LoadAll(seeds *model.SeedSequence) ([]*model.WorkloadModel, error)
}

// JobMap jobs per model name. Models without any scaled population are absent.
type JobMap map[string][]*Job

// Names model names in ascending order.
func (m JobMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (m JobMap) TotalFunctions() int {
	total := 0
	for _, jobs := range m {
		for _, job := range jobs {
			total += job.FunctionCount()
		}
	}

	return total
}

type Partitioner struct {
	repository ModelRepository
}

func NewPartitioner(repository ModelRepository) *Partitioner {
	return &Partitioner{
		repository: repository,
	}
}

// Partition splits the scaled population of every model into jobs of
// targetJobSize functions plus one job holding the remainder.
//
// All random streams derive from seed in a fixed order: one seed per model
// in repository load order, then one seed per job in model order and job
// order. The same seed over the same repository contents yields the same jobs.
func (p *Partitioner) Partition(targetJobSize int, scale float64, seed int64) (JobMap, error) {
	if targetJobSize <= 0 {
		return nil, fmt.Errorf("%w: target job size must be positive, got %d", ErrInvalidJob, targetJobSize)
	}
	if !(scale >= 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: scale must be a non-negative number, got %f", ErrInvalidJob, scale)
	}

	if !p.repository.IsReady() {
		return nil, ErrNotReady
	}

	seeds := model.NewSeedSequence(seed)

	models, err := p.repository.LoadAll(seeds)
	if err != nil {
		return nil, err
	}

	jobMap := make(JobMap)
	for _, m := range models {
		numFunctions := int(math.Floor(float64(m.Weight()) * scale))
		if numFunctions == 0 {
			log.Debugf("Model %s has no functions at scale %f", m.Name(), scale)
			continue
		}

		groups := numFunctions / targetJobSize
		extra := numFunctions % targetJobSize

		jobs := make([]*Job, 0, groups+1)
		for i := 0; i < groups; i++ {
			job, err := NewJob(m, targetJobSize, seeds.Next())
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, job)
		}

		if extra != 0 {
			job, err := NewJob(m, extra, seeds.Next())
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, job)
		}

		log.Debugf("Model %s: %d functions in %d jobs", m.Name(), numFunctions, len(jobs))
		jobMap[m.Name()] = jobs
	}

	log.Infof("Partitioned %d functions of %d models into jobs of at most %d functions",
		jobMap.TotalFunctions(), len(jobMap), targetJobSize)

	return jobMap, nil
}
