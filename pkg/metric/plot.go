package metric

import (
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vhive-serverless/orcbench/pkg/common"
)

// PlotArrivals renders a histogram of invocation timestamps, one bin per
// binSeconds of the horizon.
func PlotArrivals(path string, events []common.TraceEvent, horizon, binSeconds float64) error {
	if len(events) == 0 {
		return errors.New("no invocations to plot")
	}
	if binSeconds <= 0 {
		return fmt.Errorf("invalid bin width %f", binSeconds)
	}

	values := make(plotter.Values, len(events))
	for i, event := range events {
		values[i] = event.Timestamp
	}

	bins := common.MaxOf(1, int(math.Ceil(horizon/binSeconds)))
	hist, err := plotter.NewHist(values, bins)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Invocation arrivals"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Invocations"
	p.X.Min = 0
	p.Add(hist)

	log.Debugf("Plotting %d invocations in %d bins to %s", len(events), bins, path)

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
