package middleware

import (
	"fmt"
	"net/http"

	"bitbucket.org/crgw/retell-calcom-hub/internal/schema"
	"bitbucket.org/crgw/retell-calcom-hub/internal/tools/responding"
	"github.com/gin-gonic/gin"
)

type FunctionFactory interface {
	GetFunction(string) (any, error)
}

const (
	FunctionKey string = "function"
)

func PrepareFunction(f FunctionFactory) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		call := ctx.MustGet(ParamsKey).(schema.FunctionCall)

		function, err := f.GetFunction(call.Name)
		if err != nil {
			responding.HandleError(ctx, http.StatusBadRequest, fmt.Sprintf("Unknown function: %s", call.Name), err)
			return
		}

		ctx.Set(FunctionKey, function)
	}
}
