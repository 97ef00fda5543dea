package routes

import (
	"github.com/gin-gonic/gin"

	"starwars_api/internal/handlers"
)

// CatalogRoutes exposes the public planet and character reference data.
type CatalogRoutes struct {
	handler *handlers.CatalogHandler
}

func NewCatalogRoutes(handler *handlers.CatalogHandler) *CatalogRoutes {
	return &CatalogRoutes{handler: handler}
}

func (r *CatalogRoutes) RegisterRoutes(router *gin.RouterGroup) {
	planets := router.Group("/planets")
	{
		planets.GET("", r.handler.ListPlanets)
		planets.GET("/:id", r.handler.GetPlanet)
		planets.GET("/:id/favorited-by", r.handler.PlanetFavoritedBy)
	}

	characters := router.Group("/characters")
	{
		characters.GET("", r.handler.ListCharacters)
		characters.GET("/:id", r.handler.GetCharacter)
		characters.GET("/:id/favorited-by", r.handler.CharacterFavoritedBy)
	}
}
