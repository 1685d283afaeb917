package model

import (
	"fmt"
	"math"
)

// ModelDefinitionError a model definition that cannot be sampled from.
type ModelDefinitionError struct {
	Model  string
	Field  string
	Index  int
	Value  float64
	Reason string
}

func (e *ModelDefinitionError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("model %q: field %q: %s", e.Model, e.Field, e.Reason)
	}

	return fmt.Sprintf("model %q: field %q: entry %d (%v) %s", e.Model, e.Field, e.Index, e.Value, e.Reason)
}

func validateTable(modelName, field string, table []float64) error {
	if len(table) == 0 {
		return &ModelDefinitionError{Model: modelName, Field: field, Index: -1, Reason: "table is empty"}
	}

	for i, v := range table {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return &ModelDefinitionError{Model: modelName, Field: field, Index: i, Value: v, Reason: "is not a positive finite number"}
		}
	}

	return nil
}
