package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/vhive-serverless/orcbench/pkg/common"
)

// Repository directory of model definitions, one file per model id named
// "<id>-model".
type Repository struct {
	DirectoryPath string

	ids []int
}

func NewRepository(directoryPath string, ids []int) *Repository {
	return &Repository{
		DirectoryPath: directoryPath,
		ids:           append([]int(nil), ids...),
	}
}

func (r *Repository) path(id int) string {
	return filepath.Join(r.DirectoryPath, common.ModelName(id))
}

// Missing names of the expected model files that are not present.
func (r *Repository) Missing() []string {
	var missing []string

	for _, id := range r.ids {
		if _, err := os.Stat(r.path(id)); err != nil {
			missing = append(missing, common.ModelName(id))
		}
	}

	return missing
}

func (r *Repository) IsReady() bool {
	missing := r.Missing()
	if len(missing) > 0 {
		log.Debugf("Model directory %s is missing %v", r.DirectoryPath, missing)
		return false
	}

	return true
}

// LoadAll parses every model in ascending id order. Each model takes the
// next seed of the sequence for its random stream.
func (r *Repository) LoadAll(seeds *SeedSequence) ([]*WorkloadModel, error) {
	var result []*WorkloadModel
	totalFunctions := 0

	for _, id := range r.ids {
		name := common.ModelName(id)

		definition, err := readDefinition(r.path(id))
		if err != nil {
			return nil, fmt.Errorf("loading model %s: %w", name, err)
		}

		m, err := NewWorkloadModel(name, definition, seeds.Next())
		if err != nil {
			return nil, err
		}

		log.Tracef("Loaded model %s with %d functions", name, m.Weight())

		totalFunctions += m.Weight()
		result = append(result, m)
	}

	log.Infof("Model functions: %d", totalFunctions)

	return result, nil
}

func readDefinition(path string) (*Definition, error) {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var definition Definition
	if err := json.Unmarshal(byteValue, &definition); err != nil {
		return nil, err
	}

	if definition.InverseECDF == nil && definition.MBs == nil && definition.CPU == nil {
		return nil, errors.New("definition has no distribution tables")
	}

	return &definition, nil
}

// WriteDefinition stores a definition under the repository's naming scheme.
func (r *Repository) WriteDefinition(id int, definition *Definition) error {
	byteValue, err := json.Marshal(definition)
	if err != nil {
		return err
	}

	return os.WriteFile(r.path(id), byteValue, 0644)
}
