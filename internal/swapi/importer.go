package swapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"starwars_api/internal/logger"
	"starwars_api/internal/metrics"
	"starwars_api/internal/repositories"
)

// Source yields SWAPI records. Both Client and Fixtures implement it.
type Source interface {
	Planets(ctx context.Context) ([]PlanetRecord, error)
	People(ctx context.Context) ([]PersonRecord, error)
}

type Result struct {
	Planets    int
	Characters int
}

type Importer struct {
	db *gorm.DB
}

func NewImporter(db *gorm.DB) *Importer {
	return &Importer{db: db}
}

// Run fetches everything from source, then upserts planets followed by
// characters in a single transaction. Re-running with the same data is a
// no-op apart from refreshed columns.
func (i *Importer) Run(ctx context.Context, source Source) (*Result, error) {
	log := logger.Importer()

	planetRecords, err := source.Planets(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch planets: %w", err)
	}
	personRecords, err := source.People(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch people: %w", err)
	}
	log.WithFields(logrus.Fields{
		"planets": len(planetRecords),
		"people":  len(personRecords),
	}).Info("records fetched")

	result := &Result{}
	err = repositories.Transaction(ctx, i.db, func(tx *gorm.DB) error {
		planets := repositories.NewPlanetRepository(tx)
		characters := repositories.NewCharacterRepository(tx)

		homeworlds := make(map[int]int64, len(planetRecords))
		for _, rec := range planetRecords {
			planet, err := rec.Planet()
			if err != nil {
				return fmt.Errorf("planet %q: %w", rec.Name, err)
			}
			if err := planets.Upsert(ctx, planet); err != nil {
				return fmt.Errorf("planet %q: %w", rec.Name, err)
			}
			homeworlds[planet.SwapiID] = planet.ID
			result.Planets++
		}

		for _, rec := range personRecords {
			if err := resolveHomeworld(ctx, planets, homeworlds, rec); err != nil {
				return fmt.Errorf("person %q: %w", rec.Name, err)
			}
			character, err := rec.Character(homeworlds)
			if err != nil {
				return fmt.Errorf("person %q: %w", rec.Name, err)
			}
			if character.HomeworldID == nil && rec.Homeworld != "" {
				log.WithField("person", rec.Name).Warn("homeworld not imported, leaving it empty")
			}
			if err := characters.Upsert(ctx, character); err != nil {
				return fmt.Errorf("person %q: %w", rec.Name, err)
			}
			result.Characters++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ImportedRecords.WithLabelValues("planets").Add(float64(result.Planets))
	metrics.ImportedRecords.WithLabelValues("characters").Add(float64(result.Characters))
	log.WithFields(logrus.Fields{
		"planets":    result.Planets,
		"characters": result.Characters,
	}).Info("import finished")
	return result, nil
}

// resolveHomeworld adds the person's homeworld to homeworlds when the planet
// was stored by an earlier import rather than the current one.
func resolveHomeworld(ctx context.Context, planets *repositories.PlanetRepository, homeworlds map[int]int64, rec PersonRecord) error {
	if rec.Homeworld == "" {
		return nil
	}
	swapiID, err := IDFromURL(rec.Homeworld)
	if err != nil {
		return err
	}
	if _, ok := homeworlds[swapiID]; ok {
		return nil
	}

	planet, err := planets.FindBySwapiID(ctx, swapiID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	homeworlds[swapiID] = planet.ID
	return nil
}
