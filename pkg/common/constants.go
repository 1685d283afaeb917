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

package common

const (
	ModelFileSuffix = "-model"

	// DefaultModelCount number of model ids produced by the upstream clustering.
	DefaultModelCount = 20

	// InterarrivalBatchSize number of inter-arrival gaps drawn from a model at once.
	InterarrivalBatchSize = 10_000

	// MaxInvalidBatches consecutive batches without a single usable gap
	// before trace generation gives up on a model.
	MaxInvalidBatches = 16
)

// DefaultExcludedModels clusters that never produced a usable model.
var DefaultExcludedModels = []int{7, 17}

const (
	DefaultJobSize = 100
	DefaultScale   = 1.0

	// DefaultHorizon one hour, in seconds
	DefaultHorizon = 3600.0

	DefaultPlotBinSeconds = 60.0
)

const (
	// MaxMemQuotaMib Number taken from AWS Lambda settings
	// https://docs.aws.amazon.com/lambda/latest/dg/configuration-function-common.html#configuration-memory-console
	MaxMemQuotaMib = 10_240
	MinMemQuotaMib = 1
)
