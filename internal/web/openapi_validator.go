package web

import (
	"net/http"

	"bitbucket.org/crgw/retell-calcom-hub/internal/tools/responding"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/gin-gonic/gin"
)

func NewOpenapiRouter(document []byte) (routers.Router, error) {
	doc, err := openapi3.NewLoader().LoadFromData(document)
	if err != nil {
		return nil, err
	}

	return legacy.NewRouter(doc)
}

// OpenapiValidator rejects requests that do not match the documented
// operation. Undocumented routes pass through untouched.
func OpenapiValidator(router routers.Router) gin.HandlerFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(c *gin.Context) {
		route, pathParams, err := router.FindRoute(c.Request)
		if err != nil {
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
			Options:    options,
		}

		err = openapi3filter.ValidateRequest(c.Request.Context(), input)
		if err != nil {
			responding.HandleError(c, http.StatusBadRequest, "Invalid request: body must be a JSON object", err)
		}
	}
}
