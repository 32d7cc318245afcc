package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"

	"bitbucket.org/crgw/retell-calcom-hub/internal/schema"
	"bitbucket.org/crgw/retell-calcom-hub/internal/tools/responding"
	"bitbucket.org/crgw/retell-calcom-hub/internal/webhook/errors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	ParamsKey string = "params"
)

// PrepareParams binds the webhook payload and stores the resolved
// schema.FunctionCall under ParamsKey.
func PrepareParams(ctx *gin.Context) {
	data, err := ctx.GetRawData()
	if err != nil {
		responding.HandleError(ctx, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		responding.HandleError(ctx, http.StatusBadRequest, "Request body must be a JSON object", errors.ErrorInvalidBody)
		return
	}

	var request schema.WebhookRequest
	err = json.Unmarshal(data, &request)
	if err != nil {
		responding.HandleError(ctx, http.StatusBadRequest, "Failed to bind request params", err)
		return
	}

	logger := ctx.MustGet("logger").(*zerolog.Logger)
	logger.Info().
		RawJSON("payload", data).
		Msg("Received function call")

	ctx.Set(ParamsKey, request.Resolve())
}
