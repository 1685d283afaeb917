package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type OrcBenchConfiguration struct {
	Seed int64 `json:"Seed" yaml:"Seed"`

	ModelDirectory string `json:"ModelDirectory" yaml:"ModelDirectory"`
	ModelCount     int    `json:"ModelCount" yaml:"ModelCount"`
	ExcludedModels []int  `json:"ExcludedModels" yaml:"ExcludedModels"`

	JobSize int     `json:"JobSize" yaml:"JobSize"`
	Scale   float64 `json:"Scale" yaml:"Scale"`
	Horizon float64 `json:"Horizon" yaml:"Horizon"` // seconds

	OutputPathPrefix string `json:"OutputPathPrefix" yaml:"OutputPathPrefix"`

	FunctionKind      string `json:"FunctionKind" yaml:"FunctionKind"`
	GenerateFunctions bool   `json:"GenerateFunctions" yaml:"GenerateFunctions"`

	PlotArrivals   bool    `json:"PlotArrivals" yaml:"PlotArrivals"`
	PlotBinSeconds float64 `json:"PlotBinSeconds" yaml:"PlotBinSeconds"`
}

// ReadConfigurationFile reads a JSON or YAML configuration on top of the defaults.
func ReadConfigurationFile(path string) OrcBenchConfiguration {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	config, err := ParseConfiguration(byteValue, filepath.Ext(path))
	if err != nil {
		log.Fatal(err)
	}

	return config
}

func ParseConfiguration(data []byte, extension string) (OrcBenchConfiguration, error) {
	config := DefaultConfiguration()

	var err error
	switch strings.ToLower(extension) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return OrcBenchConfiguration{}, err
	}

	return config, nil
}
