package swapi

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixtures is an offline snapshot of SWAPI records, used for seeding without
// network access.
type Fixtures struct {
	PlanetRecords []PlanetRecord `yaml:"planets"`
	PersonRecords []PersonRecord `yaml:"people"`
}

func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return ParseFixtures(data)
}

func ParseFixtures(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &f, nil
}

func (f *Fixtures) Planets(context.Context) ([]PlanetRecord, error) {
	return f.PlanetRecords, nil
}

func (f *Fixtures) People(context.Context) ([]PersonRecord, error) {
	return f.PersonRecords, nil
}
