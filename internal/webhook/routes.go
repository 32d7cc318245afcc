package webhook

import (
	"errors"
	"net/http"

	"bitbucket.org/crgw/retell-calcom-hub/internal/schema"
	"bitbucket.org/crgw/retell-calcom-hub/internal/tools/responding"
	webhookErrors "bitbucket.org/crgw/retell-calcom-hub/internal/webhook/errors"
	"bitbucket.org/crgw/retell-calcom-hub/internal/webhook/interfaces"
	"bitbucket.org/crgw/retell-calcom-hub/internal/webhook/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const FunctionCallPath = "/webhook/retell-function"

func RegisterRoutes(router *gin.Engine, factory middleware.FunctionFactory) {
	router.POST(FunctionCallPath,
		middleware.PrepareParams,
		middleware.PrepareFunction(factory),
		middleware.TapLogger,
		func(ctx *gin.Context) {
			functionWithCreateBooking, ok := ctx.MustGet(middleware.FunctionKey).(interfaces.WithCreateBooking)
			if !ok {
				responding.HandleError(ctx, http.StatusBadRequest, "Create booking not implemented", webhookErrors.ErrorNotImplemented)
				return
			}

			call := ctx.MustGet(middleware.ParamsKey).(schema.FunctionCall)

			var params schema.BookingRequestParams
			err := call.BindArguments(&params)
			if err != nil {
				responding.HandleError(ctx, http.StatusBadRequest, "Invalid function arguments", errors.Join(webhookErrors.ErrorInvalidArguments, err))
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			result, err := functionWithCreateBooking.CreateBooking(ctx.Request.Context(), params, logger)
			if err != nil {
				responding.HandleError(ctx, statusCode(err), err.Error(), err)
				return
			}

			logger.Info().
				Int("bookingId", result.BookingId).
				Str("bookingReference", result.BookingReference).
				Msg("Function call handled")

			responding.HandleSuccess(ctx, http.StatusOK, result)
		},
	)
}

// validation failures are the caller's fault, everything else is ours or upstream's
func statusCode(err error) int {
	var validationError *schema.ValidationError
	if errors.As(err, &validationError) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
