package responding

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type SuccessResponse struct {
	Success bool `json:"success"`
	Result  any  `json:"result"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HandleError writes the failure envelope and aborts the chain. err is only logged.
func HandleError(ctx *gin.Context, code int, message string, err error) {
	if logger, ok := ctx.Value("logger").(*zerolog.Logger); ok {
		event := logger.Warn()
		if code >= 500 {
			event = logger.Error()
		}

		event.
			Err(err).
			Int("code", code).
			Msg(message)
	}

	ctx.AbortWithStatusJSON(code, ErrorResponse{
		Success: false,
		Error:   message,
	})
}

func HandleSuccess(ctx *gin.Context, code int, result any) {
	ctx.JSON(code, SuccessResponse{
		Success: true,
		Result:  result,
	})
}
