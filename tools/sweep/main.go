package main

import (
	"flag"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vhive-serverless/orcbench/pkg/config"
	sweep_common "github.com/vhive-serverless/orcbench/tools/sweep/common"
	"github.com/vhive-serverless/orcbench/tools/sweep/runner"
)

var (
	sweepConfigPath = flag.String("sweepConfigPath", "tools/sweep/sweep_config.json", "Path to sweep configuration file")
	verbosity       = flag.String("verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")
	failFast        = flag.Bool("failFast", false, "Determines whether a study should immediately skip to the next study upon failure")
)

func init() {
	flag.Parse()
	initLogger()
}

func initLogger() {
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
	log.Info("Starting sweep")

	sweepConfig := sweep_common.ReadSweepConfigurationFile(*sweepConfigPath)
	baseConfig := config.ReadConfigurationFile(sweepConfig.BaseConfigPath)

	sweepRunner, err := runner.NewSweepRunner(sweepConfig, baseConfig, *failFast)
	if err != nil {
		log.Fatalf("Failed to create sweep runner: %v", err)
	}

	sweepRunner.RunDryRun()
	if !sweepRunner.DryRunSuccess {
		log.Fatal("Dry run failed. Exiting...")
	}

	if failed := sweepRunner.RunActual(); failed > 0 {
		log.Fatalf("%d experiments failed", failed)
	}

	log.Info("All studies completed")
}
