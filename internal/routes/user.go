package routes

import (
	"github.com/gin-gonic/gin"

	"starwars_api/internal/handlers"
	"starwars_api/internal/middlewares"
	"starwars_api/internal/utils"
)

type UserRoutes struct {
	userHandler     *handlers.UserHandler
	favoriteHandler *handlers.FavoriteHandler
	tokens          *utils.TokenManager
}

func NewUserRoutes(userHandler *handlers.UserHandler, favoriteHandler *handlers.FavoriteHandler, tokens *utils.TokenManager) *UserRoutes {
	return &UserRoutes{
		userHandler:     userHandler,
		favoriteHandler: favoriteHandler,
		tokens:          tokens,
	}
}

func (r *UserRoutes) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.Use(middlewares.Authenticate(r.tokens)) // All user routes require authentication
	{
		users.GET("", r.userHandler.ListUsers)
		users.GET("/me", r.userHandler.GetMe)
		users.PATCH("/me", r.userHandler.UpdateMe)
		users.DELETE("/me", r.userHandler.DeactivateMe)

		favorites := users.Group("/me/favorites")
		favorites.GET("", r.favoriteHandler.List)
		favorites.POST("/planets/:planet_id", r.favoriteHandler.AddPlanet)
		favorites.DELETE("/planets/:planet_id", r.favoriteHandler.RemovePlanet)
		favorites.POST("/characters/:character_id", r.favoriteHandler.AddCharacter)
		favorites.DELETE("/characters/:character_id", r.favoriteHandler.RemoveCharacter)
	}
}
