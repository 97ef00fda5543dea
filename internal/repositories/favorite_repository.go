package repositories

import (
	"context"

	"gorm.io/gorm"

	"starwars_api/internal/models"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add stores a favorite after validating the target. The check_favorite_type
// constraint backs up the same rule for writes that bypass this method.
func (r *FavoriteRepository) Add(ctx context.Context, userID int64, target models.FavoriteTarget) (*models.UserFavorite, error) {
	fav, err := models.NewUserFavorite(userID, target)
	if err != nil {
		return nil, translateError("add favorite", err)
	}
	if err := r.Insert(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

// Insert writes fav as-is after boundary validation.
func (r *FavoriteRepository) Insert(ctx context.Context, fav *models.UserFavorite) error {
	if err := fav.Validate(); err != nil {
		return translateError("add favorite", err)
	}
	return translateError("add favorite", r.db.WithContext(ctx).Create(fav).Error)
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID int64, target models.FavoriteTarget) error {
	if err := target.Validate(); err != nil {
		return translateError("remove favorite", err)
	}
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where(target.Column()+" = ?", target.ID).
		Delete(&models.UserFavorite{})
	if result.Error != nil {
		return translateError("remove favorite", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError("remove favorite", ErrNotFound)
	}
	return nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]models.UserFavorite, error) {
	var favorites []models.UserFavorite
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at, id").Find(&favorites).Error
	if err != nil {
		return nil, translateError("list favorites", err)
	}
	return favorites, nil
}
