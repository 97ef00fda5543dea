package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"starwars_api/internal/models"
)

type PlanetRepository struct {
	db *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

func (r *PlanetRepository) Create(ctx context.Context, planet *models.Planet) error {
	return translateError("create planet", r.db.WithContext(ctx).Create(planet).Error)
}

func (r *PlanetRepository) FindByID(ctx context.Context, id int64) (*models.Planet, error) {
	var planet models.Planet
	if err := r.db.WithContext(ctx).First(&planet, id).Error; err != nil {
		return nil, translateError("find planet", err)
	}
	return &planet, nil
}

func (r *PlanetRepository) FindBySwapiID(ctx context.Context, swapiID int) (*models.Planet, error) {
	var planet models.Planet
	if err := r.db.WithContext(ctx).Where("swapi_id = ?", swapiID).First(&planet).Error; err != nil {
		return nil, translateError("find planet by swapi id", err)
	}
	return &planet, nil
}

func (r *PlanetRepository) List(ctx context.Context) ([]models.Planet, error) {
	var planets []models.Planet
	if err := r.db.WithContext(ctx).Order("id").Find(&planets).Error; err != nil {
		return nil, translateError("list planets", err)
	}
	return planets, nil
}

// Upsert inserts the planet or refreshes the row with the same swapi_id.
// planet.ID is set to the stored row's id either way.
func (r *PlanetRepository) Upsert(ctx context.Context, planet *models.Planet) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "swapi_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "climate", "terrain", "population", "diameter", "orbital_period",
		}),
	}).Create(planet).Error
	return translateError("upsert planet", err)
}

func (r *PlanetRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Planet{}, id)
	if result.Error != nil {
		return translateError("delete planet", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError("delete planet", ErrNotFound)
	}
	return nil
}
