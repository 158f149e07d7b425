package router

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/pageza/moodrecipes/backend/config"
	"github.com/pageza/moodrecipes/backend/internal/api"
	"github.com/pageza/moodrecipes/backend/internal/middleware"
	"github.com/pageza/moodrecipes/backend/internal/service"
)

// SetupRouter configures the application routes. A nil locker serializes
// add-mood within this process only.
func SetupRouter(cfg *config.Config, db *gorm.DB, locker service.Locker) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	recipes := service.NewRecipeService(db)
	moods := service.NewMoodService(recipes, locker)

	recipeHandler := api.NewRecipeHandler(recipes)
	moodHandler := api.NewMoodHandler(moods, recipes, nil)
	healthHandler := api.NewHealthHandler(db)

	v1 := router.Group("/api")
	recipeHandler.RegisterRoutes(v1)
	moodHandler.RegisterRoutes(v1)

	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.StaticDir != "" {
		if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
			files := http.FileServer(http.Dir(cfg.StaticDir))
			router.NoRoute(func(c *gin.Context) {
				if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
					c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
					return
				}
				files.ServeHTTP(c.Writer, c.Request)
			})
		}
	}

	return router
}
