package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"starwars_api/internal/config"
	"starwars_api/internal/database"
	"starwars_api/internal/handlers"
	"starwars_api/internal/logger"
	"starwars_api/internal/middlewares"
	"starwars_api/internal/repositories"
	"starwars_api/internal/routes"
	"starwars_api/internal/services"
	"starwars_api/internal/utils"
)

// NewServer wires storage, services and routes. The returned cleanup closes
// the database pool and must run after the server has shut down.
func NewServer(ctx context.Context, cfg *config.Config) (*http.Server, func(), error) {
	pool, db, err := database.Setup(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.DB().Info("database ready")

	// Dependency injection
	userRepo := repositories.NewUserRepository(db)
	planetRepo := repositories.NewPlanetRepository(db)
	characterRepo := repositories.NewCharacterRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	favoriteQueries := repositories.NewFavoriteQueries(pool)

	tokens := utils.NewTokenManager(cfg.AccessTokenSecret, cfg.AccessTokenTTL)

	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo)
	catalogService := services.NewCatalogService(planetRepo, characterRepo, favoriteQueries)
	favoriteService := services.NewFavoriteService(userRepo, favoriteRepo, favoriteQueries)

	router := NewRouter(cfg, routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService),
		Users:     handlers.NewUserHandler(userService),
		Favorites: handlers.NewFavoriteHandler(favoriteService),
		Catalog:   handlers.NewCatalogHandler(catalogService),
	}, tokens)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server, pool.Close, nil
}

func NewRouter(cfg *config.Config, h routes.Handlers, tokens *utils.TokenManager) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middlewares.RequestID(),
		middlewares.Logger(),
		middlewares.Metrics(),
		cors.New(corsConfig(cfg.CORSAllowedOrigins)),
	)
	routes.RegisterRoutes(router, h, tokens)
	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", middlewares.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middlewares.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
