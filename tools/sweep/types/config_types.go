package types

import (
	"errors"
	"fmt"
)

// SweepableFields configuration fields a study may sweep over.
var SweepableFields = []string{"Seed", "JobSize", "Scale", "Horizon", "FunctionKind"}

type SweepConfiguration struct {
	Studies        []Study `json:"Studies"`
	BaseConfigPath string  `json:"BaseConfigPath"`
}

type Study struct {
	Name      string         `json:"Name"`
	OutputDir string         `json:"OutputDir"`
	Sweep     []SweepOptions `json:"Sweep"`
}

type SweepOptions struct {
	Field  string        `json:"Field"`
	Values []interface{} `json:"Values"`
}

func (so *SweepOptions) Validate() error {
	if so.Field == "" {
		return errors.New("field should not be empty")
	}

	known := false
	for _, field := range SweepableFields {
		if so.Field == field {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%s cannot be swept, choose from %v", so.Field, SweepableFields)
	}

	if len(so.Values) == 0 {
		return errors.New(so.Field + " missing sweep values")
	}
	return nil
}

func (s *Study) Validate() error {
	if s.Name == "" {
		return errors.New("study name should not be empty")
	}
	if s.OutputDir == "" {
		return errors.New("study " + s.Name + " has no output directory")
	}

	for i := range s.Sweep {
		if err := s.Sweep[i].Validate(); err != nil {
			return fmt.Errorf("study %s: %w", s.Name, err)
		}
	}
	return nil
}
