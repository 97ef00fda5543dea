package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"starwars_api/internal/models"
)

type CharacterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

func (r *CharacterRepository) Create(ctx context.Context, character *models.Character) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(character).Error
	return translateError("create character", err)
}

// FindByID loads the character with its homeworld.
func (r *CharacterRepository) FindByID(ctx context.Context, id int64) (*models.Character, error) {
	var character models.Character
	if err := r.db.WithContext(ctx).Preload("Homeworld").First(&character, id).Error; err != nil {
		return nil, translateError("find character", err)
	}
	return &character, nil
}

func (r *CharacterRepository) FindBySwapiID(ctx context.Context, swapiID int) (*models.Character, error) {
	var character models.Character
	err := r.db.WithContext(ctx).Preload("Homeworld").Where("swapi_id = ?", swapiID).First(&character).Error
	if err != nil {
		return nil, translateError("find character by swapi id", err)
	}
	return &character, nil
}

func (r *CharacterRepository) List(ctx context.Context) ([]models.Character, error) {
	var characters []models.Character
	if err := r.db.WithContext(ctx).Preload("Homeworld").Order("id").Find(&characters).Error; err != nil {
		return nil, translateError("list characters", err)
	}
	return characters, nil
}

// Upsert inserts the character or refreshes the row with the same swapi_id.
// The homeworld association itself is never written.
func (r *CharacterRepository) Upsert(ctx context.Context, character *models.Character) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "swapi_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "height", "mass", "hair_color", "eye_color", "birth_year", "gender", "homeworld_id",
		}),
	}).Create(character).Error
	return translateError("upsert character", err)
}

func (r *CharacterRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Character{}, id)
	if result.Error != nil {
		return translateError("delete character", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError("delete character", ErrNotFound)
	}
	return nil
}
