package middleware

import (
	"bitbucket.org/crgw/retell-calcom-hub/internal/schema"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func TapLogger(c *gin.Context) {
	call := c.MustGet(ParamsKey).(schema.FunctionCall)
	logger := c.MustGet("logger").(*zerolog.Logger)

	requestLogger := logger.
		With().
		Str("function", call.Name).
		Str("operationId", uuid.New().String()).
		Logger()

	c.Set("logger", &requestLogger)
}
