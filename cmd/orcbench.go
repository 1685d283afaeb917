package main

import (
	"flag"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vhive-serverless/orcbench/pkg/config"
	"github.com/vhive-serverless/orcbench/pkg/driver"
)

var (
	configPath       = flag.String("config", "cmd/config.json", "Path to orcbench configuration file")
	verbosity        = flag.String("verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")
	overwriteHorizon = flag.Float64("overwrite_horizon", -1, "Overwrite trace horizon in seconds")
)

func init() {
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)

	switch *verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	cfg := config.ReadConfigurationFile(*configPath)

	if *overwriteHorizon >= 0 {
		cfg.Horizon = *overwriteHorizon
	}

	experimentDriver := driver.NewDriver(&cfg)

	result, err := experimentDriver.RunExperiment()
	if err != nil {
		log.Fatal(err)
	}

	log.Infof("Trace of %d invocations from %d functions written to %s_trace.csv",
		len(result.Trace), result.Jobs.TotalFunctions(), cfg.OutputPathPrefix)
}
