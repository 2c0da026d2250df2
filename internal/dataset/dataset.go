// Package dataset decodes catalog datasets and ships the built-in demo
// catalog.
package dataset

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/domain"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Decode parses a YAML or JSON dataset document and validates it.
func Decode(data []byte) (*domain.Dataset, error) {
	var ds domain.Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Encode renders a dataset as YAML in the same layout Decode reads.
func Encode(ds *domain.Dataset) ([]byte, error) {
	out, err := yaml.Marshal(ds)
	if err != nil {
		return nil, fmt.Errorf("encode dataset: %w", err)
	}
	return out, nil
}

// Embedded serves the demo catalog compiled into the binary. Every Load
// decodes a fresh copy, so callers may keep the result without sharing it.
type Embedded struct{}

func (Embedded) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ds, err := Decode(embeddedCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return ds, nil
}
