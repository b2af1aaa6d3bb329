package server

import (
	"context"

	"gamecatalog/backend/internal/auth"
	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/database"
	"gamecatalog/backend/internal/handler"
	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/middleware"
	"gamecatalog/backend/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	// Swagger imports
	_ "gamecatalog/backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires the resource managers to their routes.
func NewRouter(cfg *config.Config, db *gorm.DB, events *hub.Hub) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
		middleware.Recovery(),
	)
	router.NoRoute(middleware.NotFound)

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := router.Group("")
	{
		handler.NewHealthHandler(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}).RegisterRoutes(public)
		handler.NewEventsHandler(events).RegisterRoutes(public)
	}

	// Reads stay public; writes need credentials when a guard is configured.
	resources := router.Group("", auth.WriteGuard(cfg.JWTSecret, cfg.APIKeyHash))
	{
		handler.NewGenreHandler(service.NewGenreService(db), events).RegisterRoutes(resources)
		handler.NewGameHandler(service.NewGameService(db), events).RegisterRoutes(resources)
	}

	return router
}
