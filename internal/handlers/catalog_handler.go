package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars_api/internal/models"
	"starwars_api/internal/responses"
)

type catalogService interface {
	ListPlanets(ctx context.Context) ([]models.Planet, error)
	GetPlanet(ctx context.Context, id int64) (*models.Planet, error)
	PlanetFavoritedBy(ctx context.Context, planetID int64) ([]models.User, error)
	ListCharacters(ctx context.Context) ([]models.Character, error)
	GetCharacter(ctx context.Context, id int64) (*models.Character, error)
	CharacterFavoritedBy(ctx context.Context, characterID int64) ([]models.User, error)
}

// CatalogHandler serves the read-only planet and character endpoints.
type CatalogHandler struct {
	catalog catalogService
}

func NewCatalogHandler(catalog catalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListPlanets(c *gin.Context) {
	planets, err := h.catalog.ListPlanets(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to retrieve planets")
		return
	}
	responses.Success(c, http.StatusOK, models.SerializePlanets(planets), "Planets retrieved successfully")
}

func (h *CatalogHandler) GetPlanet(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	planet, err := h.catalog.GetPlanet(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to retrieve planet")
		return
	}
	responses.Success(c, http.StatusOK, planet.Serialize(), "Planet retrieved successfully")
}

func (h *CatalogHandler) PlanetFavoritedBy(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	users, err := h.catalog.PlanetFavoritedBy(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to retrieve users")
		return
	}
	responses.Success(c, http.StatusOK, models.SerializeUsers(users), "Users retrieved successfully")
}

func (h *CatalogHandler) ListCharacters(c *gin.Context) {
	characters, err := h.catalog.ListCharacters(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to retrieve characters")
		return
	}
	responses.Success(c, http.StatusOK, models.SerializeCharacters(characters), "Characters retrieved successfully")
}

func (h *CatalogHandler) GetCharacter(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	character, err := h.catalog.GetCharacter(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to retrieve character")
		return
	}
	responses.Success(c, http.StatusOK, character.Serialize(), "Character retrieved successfully")
}

func (h *CatalogHandler) CharacterFavoritedBy(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	users, err := h.catalog.CharacterFavoritedBy(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to retrieve users")
		return
	}
	responses.Success(c, http.StatusOK, models.SerializeUsers(users), "Users retrieved successfully")
}
