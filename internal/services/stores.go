package services

import (
	"context"

	"starwars_api/internal/models"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type PlanetStore interface {
	FindByID(ctx context.Context, id int64) (*models.Planet, error)
	List(ctx context.Context) ([]models.Planet, error)
}

type CharacterStore interface {
	FindByID(ctx context.Context, id int64) (*models.Character, error)
	List(ctx context.Context) ([]models.Character, error)
}

type FavoriteStore interface {
	Add(ctx context.Context, userID int64, target models.FavoriteTarget) (*models.UserFavorite, error)
	Remove(ctx context.Context, userID int64, target models.FavoriteTarget) error
}

// FavoriteLookup resolves favorites relationships through join queries.
type FavoriteLookup interface {
	FavoritePlanets(ctx context.Context, userID int64) ([]models.Planet, error)
	FavoriteCharacters(ctx context.Context, userID int64) ([]models.Character, error)
	PlanetFavoritedBy(ctx context.Context, planetID int64) ([]models.User, error)
	CharacterFavoritedBy(ctx context.Context, characterID int64) ([]models.User, error)
}
