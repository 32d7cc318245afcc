package web

import (
	"net/http"

	"bitbucket.org/crgw/retell-calcom-hub/internal/tools/responding"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PanicRecovery turns any panic further down the chain into the generic
// server error envelope.
func PanicRecovery(c *gin.Context) {
	logger := c.MustGet("logger").(*zerolog.Logger)

	gin.CustomRecoveryWithWriter(&recoveryWriter{
		logger: logger,
	}, func(c *gin.Context, err any) {
		logger.Error().
			Interface("panic", err).
			Msg("Panic recovered")

		responding.HandleError(c, http.StatusInternalServerError, "Internal server error", nil)
	})(c)
}

type recoveryWriter struct {
	logger *zerolog.Logger
}

func (r *recoveryWriter) Write(p []byte) (n int, err error) {
	r.
		logger.
		Error().
		Str("label", "panic-trace").
		Msg(string(p))

	return len(p), nil
}
