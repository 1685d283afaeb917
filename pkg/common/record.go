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

// TraceEvent one invocation of a function identity at a point in simulated time.
type TraceEvent struct {
	// Seconds since the beginning of the trace
	Timestamp  float64 `csv:"timestamp"`
	FunctionID string  `csv:"functionID"`
	Model      string  `csv:"model"`

	// Sampled once per identity when the job is built
	Runtime float64 `csv:"runtime"`
	Memory  float64 `csv:"memory"`
}

type JobRecord struct {
	Model      string  `csv:"model"`
	JobIndex   int     `csv:"job"`
	JobSize    int     `csv:"jobSize"`
	FunctionID string  `csv:"functionID"`
	Runtime    float64 `csv:"runtime"`
	Memory     float64 `csv:"memory"`
}

type ModelSummaryRecord struct {
	Model       string `csv:"model"`
	Functions   int    `csv:"functions"`
	Invocations int    `csv:"invocations"`

	MeanGap   float64 `csv:"meanGap"`
	MedianGap float64 `csv:"medianGap"`

	MedianRuntime float64 `csv:"medianRuntime"`
	P99Runtime    float64 `csv:"p99Runtime"`
	MedianMemory  float64 `csv:"medianMemory"`
	P99Memory     float64 `csv:"p99Memory"`
}
