package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars_api/internal/models"
	"starwars_api/internal/responses"
	"starwars_api/internal/services"
)

type favoriteService interface {
	ListFavorites(ctx context.Context, userID int64) (*services.Favorites, error)
	Add(ctx context.Context, userID int64, target models.FavoriteTarget) (*models.UserFavorite, error)
	Remove(ctx context.Context, userID int64, target models.FavoriteTarget) error
}

type FavoriteHandler struct {
	favoriteService favoriteService
}

func NewFavoriteHandler(favoriteService favoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// List handles GET /api/v1/users/me/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	favs, err := h.favoriteService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		fail(c, err, "Failed to retrieve favorites")
		return
	}
	responses.Success(c, http.StatusOK, favs.Serialize(), "Favorites retrieved successfully")
}

func (h *FavoriteHandler) AddPlanet(c *gin.Context) {
	h.add(c, "planet_id", models.PlanetTarget)
}

func (h *FavoriteHandler) AddCharacter(c *gin.Context) {
	h.add(c, "character_id", models.CharacterTarget)
}

func (h *FavoriteHandler) RemovePlanet(c *gin.Context) {
	h.remove(c, "planet_id", models.PlanetTarget)
}

func (h *FavoriteHandler) RemoveCharacter(c *gin.Context) {
	h.remove(c, "character_id", models.CharacterTarget)
}

func (h *FavoriteHandler) add(c *gin.Context, param string, target func(int64) models.FavoriteTarget) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c, param)
	if !ok {
		return
	}

	fav, err := h.favoriteService.Add(c.Request.Context(), userID, target(id))
	if err != nil {
		fail(c, err, "Could not add favorite")
		return
	}
	responses.Success(c, http.StatusCreated, fav.Serialize(), "Favorite added")
}

func (h *FavoriteHandler) remove(c *gin.Context, param string, target func(int64) models.FavoriteTarget) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c, param)
	if !ok {
		return
	}

	if err := h.favoriteService.Remove(c.Request.Context(), userID, target(id)); err != nil {
		fail(c, err, "Could not remove favorite")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Favorite removed")
}
