package web

import (
	"net/http"
	"time"

	"bitbucket.org/crgw/retell-calcom-hub/api"
	"bitbucket.org/crgw/retell-calcom-hub/internal/config"
	"bitbucket.org/crgw/retell-calcom-hub/internal/tools/responding"
	"bitbucket.org/crgw/retell-calcom-hub/internal/webhook"
	"bitbucket.org/crgw/retell-calcom-hub/internal/webhook/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// same layout as javascript's Date.toISOString
const isoTimestampFormat = "2006-01-02T15:04:05.000Z"

type bannerResponse struct {
	Message     string `json:"message"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func SetupRouter(log *zerolog.Logger, configuration config.Config, functionFactory middleware.FunctionFactory) *gin.Engine {
	openapiRouter, err := NewOpenapiRouter(api.OpenAPI)
	if err != nil {
		panic(err)
	}

	if configuration.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.
		Use(StartRequest).
		Use(CorrelationId).
		Use(RegisterLogger(log)).
		Use(TraceLog).
		Use(PanicRecovery).
		Use(Cors(configuration)).
		Use(OpenapiValidator(openapiRouter))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, bannerResponse{
			Message:     "Retell Cal.com Booking API is running!",
			Status:      "healthy",
			Timestamp:   CurrentTimeFunc().UTC().Format(isoTimestampFormat),
			Environment: configuration.Env,
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, healthResponse{
			Status: "ok",
		})
	})

	router.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, gin.MIMEJSON, api.OpenAPI)
	})

	if configuration.PprofEnabled {
		pprof.Register(router)
	}

	webhook.RegisterRoutes(router, functionFactory)

	router.NoRoute(func(c *gin.Context) {
		responding.HandleError(c, http.StatusNotFound, "Route not found", nil)
	})

	return router
}

func Cors(configuration config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", CorrelationIdHeader},
		ExposeHeaders: []string{"Content-Length", CorrelationIdHeader},
		MaxAge:        12 * time.Hour,
	}

	if configuration.AllowsAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = configuration.AllowedOrigins
	}

	return cors.New(corsConfig)
}
