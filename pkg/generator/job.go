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
	"encoding/hex"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/vhive-serverless/orcbench/pkg/common"
	"github.com/vhive-serverless/orcbench/pkg/model"
)

// Job fixed group of function identities sharing one model. Runtime and
// memory are sampled once per identity when the job is built. A job owns
// its random stream and is not safe for concurrent use.
type Job struct {
	model *model.WorkloadModel

	identities []string
	runtimes   map[string]float64
	memory     map[string]float64

	src  rand.Source
	rand *rand.Rand
}

// NewJob builds a job of functionCount freshly generated identities.
func NewJob(m *model.WorkloadModel, functionCount int, seed uint64) (*Job, error) {
	if functionCount <= 0 {
		return nil, fmt.Errorf("%w: function count must be positive, got %d", ErrInvalidJob, functionCount)
	}

	j := newJob(m, seed)

	j.identities = make([]string, functionCount)
	for i := range j.identities {
		id, err := uuid.NewRandomFromReader(j.rand)
		if err != nil {
			return nil, err
		}

		j.identities[i] = hex.EncodeToString(id[:])
	}

	j.sampleSpecs()

	return j, nil
}

// NewJobWithIdentities builds a job around caller supplied identities.
func NewJobWithIdentities(m *model.WorkloadModel, identities []string, seed uint64) (*Job, error) {
	if len(identities) == 0 {
		return nil, fmt.Errorf("%w: function count must be positive, got 0", ErrInvalidJob)
	}

	seen := make(map[string]struct{}, len(identities))
	for _, id := range identities {
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: duplicate identity %q", ErrInvalidJob, id)
		}
		seen[id] = struct{}{}
	}

	j := newJob(m, seed)
	j.identities = append([]string(nil), identities...)
	j.sampleSpecs()

	return j, nil
}

func newJob(m *model.WorkloadModel, seed uint64) *Job {
	src := rand.NewSource(seed)

	return &Job{
		model: m,
		src:   src,
		rand:  rand.New(src),
	}
}

func (j *Job) sampleSpecs() {
	n := len(j.identities)
	runtimes := j.model.SampleCPU(n)
	memory := j.model.SampleMemory(n)

	j.runtimes = make(map[string]float64, n)
	j.memory = make(map[string]float64, n)
	for i, id := range j.identities {
		j.runtimes[id] = runtimes[i]
		j.memory[id] = memory[i]
	}
}

func (j *Job) Model() *model.WorkloadModel {
	return j.model
}

func (j *Job) FunctionCount() int {
	return len(j.identities)
}

func (j *Job) Identities() []string {
	return append([]string(nil), j.identities...)
}

func (j *Job) Runtime(id string) float64 {
	return j.runtimes[id]
}

func (j *Job) Memory(id string) float64 {
	return j.memory[id]
}

func isValidGap(gap float64) bool {
	return !math.IsInf(gap, 0) && !math.IsNaN(gap) && gap >= 0
}

// RunTrace simulates arrivals in [0, horizon). Every valid inter-arrival gap
// becomes one arrival window in which each identity of the job is invoked
// exactly once, at uniformly random sorted offsets. The first gap of every
// batch only advances the clock.
func (j *Job) RunTrace(horizon float64) ([]common.TraceEvent, error) {
	var trace []common.TraceEvent
	if !(horizon > 0) {
		return trace, nil
	}

	currentTime := 0.0
	invalidBatches, skipped := 0, 0

	for currentTime < horizon {
		samples := j.model.SampleInterarrival(common.InterarrivalBatchSize)
		valid := 0

		if isValidGap(samples[0]) {
			currentTime += samples[0]
			valid++
		} else {
			skipped++
		}

		for i := 1; i < len(samples) && currentTime < horizon; i++ {
			gap := samples[i]
			if !isValidGap(gap) {
				skipped++
				continue
			}
			valid++

			trace = j.appendWindow(trace, currentTime, gap)
			currentTime += gap
		}

		if valid > 0 {
			invalidBatches = 0
			continue
		}

		invalidBatches++
		if invalidBatches >= common.MaxInvalidBatches {
			return nil, &DistributionError{
				Model:   j.model.Name(),
				Batches: invalidBatches,
				Draws:   invalidBatches * common.InterarrivalBatchSize,
			}
		}
	}

	if skipped > 0 {
		log.Debugf("Skipped %d invalid inter-arrival times of model %s", skipped, j.model.Name())
	}

	cut := sort.Search(len(trace), func(i int) bool {
		return trace[i].Timestamp >= horizon
	})

	return trace[:cut], nil
}

// appendWindow places one invocation of every identity in [start, start+width).
func (j *Job) appendWindow(trace []common.TraceEvent, start, width float64) []common.TraceEvent {
	ids := j.shuffledIdentities()

	offsets := distuv.Uniform{Min: start, Max: start + width, Src: j.src}
	timestamps := make([]float64, len(j.identities))
	for i := range timestamps {
		timestamps[i] = offsets.Rand()
	}
	sort.Float64s(timestamps)

	for _, ts := range timestamps {
		id := ids.next()
		trace = append(trace, common.TraceEvent{
			Timestamp:  ts,
			FunctionID: id,
			Model:      j.model.Name(),
			Runtime:    j.runtimes[id],
			Memory:     j.memory[id],
		})
	}

	return trace
}

// identityQueue hands out each identity of a shuffled copy exactly once.
type identityQueue struct {
	order []string
	pos   int
}

func (q *identityQueue) next() string {
	id := q.order[q.pos]
	q.pos++
	return id
}

func (j *Job) shuffledIdentities() *identityQueue {
	order := append([]string(nil), j.identities...)
	j.rand.Shuffle(len(order), func(a, b int) {
		order[a], order[b] = order[b], order[a]
	})

	return &identityQueue{order: order}
}
