package api

import (
	"context"
	"net/http"
	"os"
	"sync"

	"ansh-apparels/app"
	"ansh-apparels/config"
	"ansh-apparels/middleware"
	"ansh-apparels/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	application *app.App
	fallback    *gin.Engine
	buildErr    error
	once        sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg, err := config.Load()
		if err != nil {
			config.InitLogger("production")
			buildErr = err
			fallback = misconfiguredRouter(config.SplitList(os.Getenv("CORS_ORIGINS")))
			log.Error().Err(err).Msg("invalid configuration")
			return
		}
		config.InitLogger(cfg.AppEnv)

		application, buildErr = app.Build(context.Background(), cfg)
		if buildErr != nil {
			fallback = misconfiguredRouter(cfg.CORSOrigins)
			log.Error().Err(buildErr).Msg("failed to build app")
		}
	})
}

// misconfiguredRouter answers every request with 500 while keeping CORS
// headers, so browsers can read the error.
func misconfiguredRouter(origins []string) *gin.Engine {
	router := gin.New()
	router.Use(middleware.CORSMiddleware(origins))
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Server misconfigured"})
	})
	return router
}

// Handler is the serverless entry point; the app is built on the first
// invocation and reused by warm instances.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if buildErr != nil {
		fallback.ServeHTTP(w, r)
		return
	}
	application.Router.ServeHTTP(w, r)
}
