package generator

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/vhive-serverless/orcbench/pkg/common"
)

// MergeTraces merges traces into one ascending by timestamp. Events with
// equal timestamps keep the order of the traces they came from.
func MergeTraces(traces ...[]common.TraceEvent) []common.TraceEvent {
	total := 0
	for _, t := range traces {
		total += len(t)
	}

	result := make([]common.TraceEvent, 0, total)
	for _, t := range traces {
		result = append(result, t...)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp < result[j].Timestamp
	})

	return result
}

// TraceAll runs every job for the given horizon, models in name order and
// jobs in partition order, and merges the results.
func TraceAll(jobs JobMap, horizon float64) ([]common.TraceEvent, error) {
	var traces [][]common.TraceEvent

	for _, name := range jobs.Names() {
		for i, job := range jobs[name] {
			trace, err := job.RunTrace(horizon)
			if err != nil {
				return nil, err
			}

			log.Debugf("Job %d of model %s produced %d invocations", i, name, len(trace))
			traces = append(traces, trace)
		}
	}

	return MergeTraces(traces...), nil
}
