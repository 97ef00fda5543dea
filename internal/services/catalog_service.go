package services

import (
	"context"

	"starwars_api/internal/models"
)

// CatalogService serves the shared planet and character reference data.
type CatalogService struct {
	planets    PlanetStore
	characters CharacterStore
	lookup     FavoriteLookup
}

func NewCatalogService(planets PlanetStore, characters CharacterStore, lookup FavoriteLookup) *CatalogService {
	return &CatalogService{planets: planets, characters: characters, lookup: lookup}
}

func (s *CatalogService) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	return s.planets.List(ctx)
}

func (s *CatalogService) GetPlanet(ctx context.Context, id int64) (*models.Planet, error) {
	return s.planets.FindByID(ctx, id)
}

func (s *CatalogService) ListCharacters(ctx context.Context) ([]models.Character, error) {
	return s.characters.List(ctx)
}

func (s *CatalogService) GetCharacter(ctx context.Context, id int64) (*models.Character, error) {
	return s.characters.FindByID(ctx, id)
}

// PlanetFavoritedBy lists the users who favorited the planet. Unknown planets
// yield the store's not-found error rather than an empty list.
func (s *CatalogService) PlanetFavoritedBy(ctx context.Context, planetID int64) ([]models.User, error) {
	if _, err := s.planets.FindByID(ctx, planetID); err != nil {
		return nil, err
	}
	return s.lookup.PlanetFavoritedBy(ctx, planetID)
}

func (s *CatalogService) CharacterFavoritedBy(ctx context.Context, characterID int64) ([]models.User, error) {
	if _, err := s.characters.FindByID(ctx, characterID); err != nil {
		return nil, err
	}
	return s.lookup.CharacterFavoritedBy(ctx, characterID)
}
