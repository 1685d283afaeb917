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

package model

import (
	"sync"

	"golang.org/x/exp/rand"
)

// Definition on-disk record of a model, as produced by the upstream clustering.
type Definition struct {
	InverseECDF  []float64 `json:"inverse_ecdf"`
	MBs          []float64 `json:"mbs"`
	CPU          []float64 `json:"cpu"`
	NumFunctions int       `json:"num_functions"`
}

// WorkloadModel statistical profile of one function class. Read-only after
// construction apart from its random stream; safe to share between jobs.
type WorkloadModel struct {
	name   string
	weight int

	interarrival *EmpiricalDistribution
	memory       *EmpiricalDistribution
	cpu          *EmpiricalDistribution

	randMutex sync.Mutex
	rand      *rand.Rand
}

func NewWorkloadModel(name string, definition *Definition, seed uint64) (*WorkloadModel, error) {
	for _, table := range []struct {
		field string
		data  []float64
	}{
		{"inverse_ecdf", definition.InverseECDF},
		{"mbs", definition.MBs},
		{"cpu", definition.CPU},
	} {
		if err := validateTable(name, table.field, table.data); err != nil {
			return nil, err
		}
	}

	if definition.NumFunctions < 0 {
		return nil, &ModelDefinitionError{
			Model:  name,
			Field:  "num_functions",
			Index:  -1,
			Reason: "must be non-negative",
		}
	}

	return &WorkloadModel{
		name:   name,
		weight: definition.NumFunctions,

		interarrival: &EmpiricalDistribution{table: append([]float64(nil), definition.InverseECDF...)},
		memory:       &EmpiricalDistribution{table: append([]float64(nil), definition.MBs...)},
		cpu:          &EmpiricalDistribution{table: append([]float64(nil), definition.CPU...)},

		rand: newStream(seed),
	}, nil
}

func (m *WorkloadModel) Name() string {
	return m.name
}

// Weight expected number of functions of this class.
func (m *WorkloadModel) Weight() int {
	return m.weight
}

func (m *WorkloadModel) SampleInterarrival(n int) []float64 {
	return m.sample(m.interarrival, n)
}

func (m *WorkloadModel) SampleMemory(n int) []float64 {
	return m.sample(m.memory, n)
}

func (m *WorkloadModel) SampleCPU(n int) []float64 {
	return m.sample(m.cpu, n)
}

func (m *WorkloadModel) sample(d *EmpiricalDistribution, n int) []float64 {
	m.randMutex.Lock()
	defer m.randMutex.Unlock()

	return d.Sample(m.rand, n)
}
