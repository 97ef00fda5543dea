package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"starwars_api/internal/logger"
	"starwars_api/internal/metrics"
	"starwars_api/internal/models"
)

type FavoriteService struct {
	users     UserStore
	favorites FavoriteStore
	lookup    FavoriteLookup
}

func NewFavoriteService(users UserStore, favorites FavoriteStore, lookup FavoriteLookup) *FavoriteService {
	return &FavoriteService{users: users, favorites: favorites, lookup: lookup}
}

type Favorites struct {
	Planets    []models.Planet
	Characters []models.Character
}

type SerializedFavorites struct {
	Planets    []models.SerializedPlanet    `json:"planets"`
	Characters []models.SerializedCharacter `json:"characters"`
}

func (f *Favorites) Serialize() SerializedFavorites {
	return SerializedFavorites{
		Planets:    models.SerializePlanets(f.Planets),
		Characters: models.SerializeCharacters(f.Characters),
	}
}

func (s *FavoriteService) ListFavorites(ctx context.Context, userID int64) (*Favorites, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	planets, err := s.lookup.FavoritePlanets(ctx, userID)
	if err != nil {
		return nil, err
	}
	characters, err := s.lookup.FavoriteCharacters(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Favorites{Planets: planets, Characters: characters}, nil
}

// Add records a favorite for an active user.
func (s *FavoriteService) Add(ctx context.Context, userID int64, target models.FavoriteTarget) (*models.UserFavorite, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	fav, err := s.favorites.Add(ctx, userID, target)
	if err != nil {
		return nil, err
	}

	metrics.FavoritesAdded.WithLabelValues(string(target.Kind)).Inc()
	logger.DB().WithFields(logrus.Fields{
		"user_id": userID,
		"target":  target.String(),
	}).Info("favorite added")
	return fav, nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID int64, target models.FavoriteTarget) error {
	if err := s.favorites.Remove(ctx, userID, target); err != nil {
		return err
	}
	metrics.FavoritesRemoved.WithLabelValues(string(target.Kind)).Inc()
	return nil
}

func (s *FavoriteService) AddPlanet(ctx context.Context, userID, planetID int64) (*models.UserFavorite, error) {
	return s.Add(ctx, userID, models.PlanetTarget(planetID))
}

func (s *FavoriteService) AddCharacter(ctx context.Context, userID, characterID int64) (*models.UserFavorite, error) {
	return s.Add(ctx, userID, models.CharacterTarget(characterID))
}

func (s *FavoriteService) RemovePlanet(ctx context.Context, userID, planetID int64) error {
	return s.Remove(ctx, userID, models.PlanetTarget(planetID))
}

func (s *FavoriteService) RemoveCharacter(ctx context.Context, userID, characterID int64) error {
	return s.Remove(ctx, userID, models.CharacterTarget(characterID))
}
