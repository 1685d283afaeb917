package metric

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/vhive-serverless/orcbench/pkg/common"
)

// Summarize per-model statistics of a time-ordered trace and the functions
// that were partitioned into jobs.
func Summarize(events []common.TraceEvent, jobs []common.JobRecord) []common.ModelSummaryRecord {
	summaries := make(map[string]*common.ModelSummaryRecord)
	get := func(name string) *common.ModelSummaryRecord {
		if s, ok := summaries[name]; ok {
			return s
		}
		s := &common.ModelSummaryRecord{Model: name}
		summaries[name] = s
		return s
	}

	gaps := make(map[string][]float64)
	last := make(map[string]float64)
	for _, event := range events {
		get(event.Model).Invocations++

		if previous, ok := last[event.Model]; ok {
			gaps[event.Model] = append(gaps[event.Model], event.Timestamp-previous)
		}
		last[event.Model] = event.Timestamp
	}

	runtimes := make(map[string][]float64)
	memory := make(map[string][]float64)
	for _, job := range jobs {
		get(job.Model).Functions++
		runtimes[job.Model] = append(runtimes[job.Model], job.Runtime)
		memory[job.Model] = append(memory[job.Model], job.Memory)
	}

	var result []common.ModelSummaryRecord
	for name, s := range summaries {
		s.MeanGap = orZero(stats.Mean(gaps[name]))
		s.MedianGap = orZero(stats.Median(gaps[name]))

		s.MedianRuntime = orZero(stats.Median(runtimes[name]))
		s.P99Runtime = orZero(stats.Percentile(runtimes[name], 99))
		s.MedianMemory = orZero(stats.Median(memory[name]))
		s.P99Memory = orZero(stats.Percentile(memory[name], 99))

		result = append(result, *s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Model < result[j].Model
	})

	return result
}

// stats reports NaN alongside an error for empty input
func orZero(v float64, err error) float64 {
	if err != nil {
		return 0
	}
	return v
}
