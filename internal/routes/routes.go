package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"starwars_api/internal/handlers"
	"starwars_api/internal/utils"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Users     *handlers.UserHandler
	Favorites *handlers.FavoriteHandler
	Catalog   *handlers.CatalogHandler
}

func RegisterRoutes(router *gin.Engine, h Handlers, tokens *utils.TokenManager) {
	api := router.Group("/api/v1")

	NewAuthRoutes(h.Auth).RegisterRoutes(api)
	NewUserRoutes(h.Users, h.Favorites, tokens).RegisterRoutes(api)
	NewCatalogRoutes(h.Catalog).RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
