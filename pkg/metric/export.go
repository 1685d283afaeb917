package metric

import (
	"os"
	"sort"
	"sync"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/vhive-serverless/orcbench/pkg/common"
	"github.com/vhive-serverless/orcbench/pkg/generator"
)

type Exporter struct {
	mutex        sync.Mutex
	traceRecords []common.TraceEvent
	jobRecords   []common.JobRecord
}

func NewExporter() *Exporter {
	return &Exporter{
		//* Note that the zero value of a mutex is usable as-is, so no
		//* initialization is required here (e.g., mutex: sync.Mutex{}).
		traceRecords: []common.TraceEvent{},
		jobRecords:   []common.JobRecord{},
	}
}

func (ep *Exporter) ReportTrace(events []common.TraceEvent) {
	ep.mutex.Lock()
	defer ep.mutex.Unlock()
	ep.traceRecords = append(ep.traceRecords, events...)
}

// ReportJobs records one row per function identity, models in name order.
func (ep *Exporter) ReportJobs(jobs generator.JobMap) {
	ep.mutex.Lock()
	defer ep.mutex.Unlock()

	for _, name := range jobs.Names() {
		for i, job := range jobs[name] {
			for _, id := range job.Identities() {
				ep.jobRecords = append(ep.jobRecords, common.JobRecord{
					Model:      name,
					JobIndex:   i,
					JobSize:    job.FunctionCount(),
					FunctionID: id,
					Runtime:    job.Runtime(id),
					Memory:     job.Memory(id),
				})
			}
		}
	}
}

func (ep *Exporter) GetTraceRecordLen() int {
	return len(ep.traceRecords)
}

func (ep *Exporter) GetJobRecordLen() int {
	return len(ep.jobRecords)
}

// Sort records in ascending order.
func (ep *Exporter) sortTraceRecordsByTime() {
	sort.SliceStable(ep.traceRecords,
		func(i, j int) bool {
			return ep.traceRecords[i].Timestamp < ep.traceRecords[j].Timestamp
		},
	)
}

func (ep *Exporter) Summarize() []common.ModelSummaryRecord {
	ep.mutex.Lock()
	defer ep.mutex.Unlock()

	ep.sortTraceRecordsByTime()
	return Summarize(ep.traceRecords, ep.jobRecords)
}

// FinishAndSave writes <prefix>_trace.csv, <prefix>_jobs.csv and <prefix>_summary.csv.
func (ep *Exporter) FinishAndSave(prefix string) error {
	summary := ep.Summarize()

	ep.mutex.Lock()
	defer ep.mutex.Unlock()

	if err := writeCSV(TracePath(prefix), &ep.traceRecords); err != nil {
		return err
	}
	if err := writeCSV(prefix+"_jobs.csv", &ep.jobRecords); err != nil {
		return err
	}
	if err := writeCSV(prefix+"_summary.csv", &summary); err != nil {
		return err
	}

	log.Infof("Exported %d invocations of %d functions to %s_*.csv", len(ep.traceRecords), len(ep.jobRecords), prefix)

	return nil
}

func TracePath(prefix string) string {
	return prefix + "_trace.csv"
}

func writeCSV(path string, records interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(records, f)
}

// ReadTrace loads a trace previously written by FinishAndSave.
func ReadTrace(path string) ([]common.TraceEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var events []common.TraceEvent
	if err := gocsv.UnmarshalFile(f, &events); err != nil {
		return nil, err
	}

	return events, nil
}
