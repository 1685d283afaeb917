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
	"golang.org/x/exp/rand"
)

// EmpiricalDistribution discretized inverse-CDF table. Each entry is the
// reciprocal of a quantile of the original distribution.
type EmpiricalDistribution struct {
	table []float64
}

func NewEmpiricalDistribution(table []float64) (*EmpiricalDistribution, error) {
	if err := validateTable("", "", table); err != nil {
		return nil, err
	}

	return &EmpiricalDistribution{
		table: append([]float64(nil), table...),
	}, nil
}

func (d *EmpiricalDistribution) Len() int {
	return len(d.table)
}

// Sample draws n values. The index is uniform over [0, len-1), so the last
// entry is never selected unless the table has a single entry.
func (d *EmpiricalDistribution) Sample(gen *rand.Rand, n int) []float64 {
	samples := make([]float64, n)

	high := len(d.table) - 1
	for i := 0; i < n; i++ {
		idx := 0
		if high > 0 {
			idx = gen.Intn(high)
		}

		samples[i] = 1 / d.table[idx]
	}

	return samples
}
