package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/vhive-serverless/orcbench/pkg/metric"
)

// Record one exported trace of a sweep.
type Record struct {
	funcCount int
	rate      float64
	burstGap  float64
}

func main() {
	var (
		inputDir   = flag.String("i", "data/out", "Path to the directory with exported trace CSV files")
		outputDir  = flag.String("o", "figs", "Path to the directory for output figures")
		debugLevel = flag.String("d", "info", "Debug level: info, debug")
	)
	flag.Parse()
	log.SetOutput(os.Stdout)

	switch *debugLevel {
	case "info":
		log.SetLevel(log.InfoLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
		log.Debug("Debug mode is enabled")
	}

	records := parseFiles(*inputDir)
	log.Info("Number of traces found: ", len(records))

	plotFig(*outputDir, records)
}

func plotFig(outputDir string, records []Record) {
	if _, err := os.Stat(outputDir); errors.Is(err, os.ErrNotExist) {
		log.Info("Creating the output directory")
		err := os.MkdirAll(outputDir, os.ModePerm)
		if err != nil {
			log.Fatal(err)
		}
	}

	p := plot.New()

	p.Title.Text = "Offered load"
	p.X.Label.Text = "Number of functions"
	p.Y.Label.Text = "Invocations per second"
	p.Y.Min = 0

	err := plotutil.AddLinePoints(p,
		"Rate", getXY(records),
	)
	if err != nil {
		log.Fatal(err)
	}

	if err := p.Save(4*vg.Inch, 4*vg.Inch, filepath.Join(outputDir, "rate.png")); err != nil {
		log.Fatal(err)
	}

	for _, rec := range records {
		log.Debug("Plotting ", rec.funcCount, rec.rate, rec.burstGap)
	}
}

var filePattern = regexp.MustCompile(`^.+_trace\.csv$`)

func parseFiles(inputDir string) []Record {
	files, err := os.ReadDir(inputDir)
	if err != nil {
		log.Fatal("Cannot open the input directory:", err)
	}

	var recs []Record
	for _, file := range files {
		if !filePattern.MatchString(file.Name()) {
			continue
		}

		log.Debug("Open file ", file.Name())

		rec, ok := parseTrace(filepath.Join(inputDir, file.Name()))
		if !ok {
			log.Warn("Skipping empty trace, file=", file.Name())
			continue
		}
		recs = append(recs, rec)
	}

	return recs
}

func parseTrace(path string) (Record, bool) {
	events, err := metric.ReadTrace(path)
	if err != nil {
		log.Fatal(err)
	}
	if len(events) < 2 {
		return Record{}, false
	}

	functions := make(map[string]struct{})
	var gaps []float64
	for i, event := range events {
		functions[event.FunctionID] = struct{}{}
		if i > 0 {
			gaps = append(gaps, event.Timestamp-events[i-1].Timestamp)
		}
	}

	span := events[len(events)-1].Timestamp - events[0].Timestamp
	rate := 0.0
	if span > 0 {
		rate = float64(len(events)) / span
	}

	return Record{
		funcCount: len(functions),
		rate:      rate,
		burstGap:  stat.Mean(gaps, nil),
	}, true
}

func getXY(records []Record) plotter.XYs {
	sort.Slice(records, func(i, j int) bool {
		return records[i].funcCount < records[j].funcCount
	})

	pts := make(plotter.XYs, len(records))
	for i := range pts {
		pts[i].X = float64(records[i].funcCount)
		pts[i].Y = records[i].rate
	}
	return pts
}
