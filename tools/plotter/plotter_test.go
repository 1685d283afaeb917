package main

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vhive-serverless/orcbench/pkg/common"
	"github.com/vhive-serverless/orcbench/pkg/metric"
)

func writeTrace(t *testing.T, prefix string, functions int) {
	exporter := metric.NewExporter()

	var events []common.TraceEvent
	for window := 0; window < 5; window++ {
		for f := 0; f < functions; f++ {
			events = append(events, common.TraceEvent{
				Timestamp:  float64(window) + float64(f)/float64(functions),
				FunctionID: string(rune('a' + f)),
				Model:      "0-model",
			})
		}
	}
	exporter.ReportTrace(events)

	require.NoError(t, exporter.FinishAndSave(prefix))
}

func TestPlotter(t *testing.T) {
	log.SetLevel(log.DebugLevel)

	input := t.TempDir()
	writeTrace(t, filepath.Join(input, "small"), 2)
	writeTrace(t, filepath.Join(input, "large"), 4)

	records := parseFiles(input)

	log.Debugf("Obtained %d records.", len(records))
	require.Equal(t, 2, len(records))

	pts := getXY(records)
	require.Equal(t, 2.0, pts[0].X)
	require.Equal(t, 4.0, pts[1].X)
	require.Greater(t, pts[1].Y, pts[0].Y)

	output := filepath.Join(t.TempDir(), "figs")
	plotFig(output, records)

	_, err := os.Stat(filepath.Join(output, "rate.png"))
	require.NoError(t, err)
}
