package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/poopdl/poopdl/internal/api/handlers"
	"github.com/poopdl/poopdl/internal/api/middleware"
	"github.com/poopdl/poopdl/internal/config"
	"github.com/poopdl/poopdl/internal/utils"
)

type Router struct {
	engine *gin.Engine
	config *config.Config
}

func NewRouter(cfg *config.Config, indexHandler *handlers.IndexHandler, fileHandler *handlers.FileHandler, linkHandler *handlers.LinkHandler, healthHandler *handlers.HealthHandler) *Router {
	// Set Gin mode
	if cfg.Server.Host == "0.0.0.0" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Add middleware. Panics surface as the documented 500 failure shape.
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "failed",
			"message": "Internal server error",
			"error":   utils.NewInternalError(),
		})
	}))
	engine.Use(middleware.CorrelationIDMiddleware())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Info endpoints
	engine.GET("/", indexHandler.Index)
	engine.GET("/health", healthHandler.Health)

	// Swagger documentation
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Resolution endpoints with rate limiting
	api := engine.Group("/")
	api.Use(middleware.RateLimitMiddleware(&cfg.API))
	{
		api.POST("/generate_file", fileHandler.GenerateFile)
		api.POST("/generate_link", linkHandler.GenerateLink)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "failed",
			"message": "Endpoint not found",
			"error":   utils.NewError(utils.ErrorCodeInvalidRequest, "Endpoint not found", http.StatusNotFound),
		})
	})

	return &Router{
		engine: engine,
		config: cfg,
	}
}

func (r *Router) Start() error {
	addr := r.config.Server.Host + ":" + r.config.Server.Port
	return r.engine.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
