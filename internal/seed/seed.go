// Package seed loads the static dataset served by the backend.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jagritimaurya743-source/college-society-management/internal/domain"
)

//go:embed data.yaml
var embedded []byte

// ErrInvalid marks a dataset that breaks a record invariant.
var ErrInvalid = errors.New("invalid seed data")

// Dataset is the full read-only content of the dashboard.
type Dataset struct {
	Societies  []domain.Society    `yaml:"societies"`
	Events     []domain.Event      `yaml:"events"`
	Activities []domain.Activity   `yaml:"activities"`
	Stats      []domain.Stat       `yaml:"stats"`
	Monthly    []domain.ChartPoint `yaml:"monthly"`
}

// Default decodes the dataset compiled into the binary.
func Default() (Dataset, error) {
	return Decode(embedded)
}

// Load reads the dataset at path, or the embedded one when path is empty.
func Load(path string) (Dataset, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read seed %s: %w", path, err)
	}
	ds, err := Decode(raw)
	if err != nil {
		return Dataset{}, fmt.Errorf("seed %s: %w", path, err)
	}
	return ds, nil
}

// Decode parses and validates a YAML dataset.
func Decode(raw []byte) (Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return Dataset{}, fmt.Errorf("decode seed: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// Validate checks every record and rejects duplicate identifiers.
func (ds Dataset) Validate() error {
	seen := make(map[string]struct{}, len(ds.Societies))
	for _, s := range ds.Societies {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("%w: duplicate society id %s", ErrInvalid, s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	seen = make(map[string]struct{}, len(ds.Events))
	for _, e := range ds.Events {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: duplicate event id %s", ErrInvalid, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}
