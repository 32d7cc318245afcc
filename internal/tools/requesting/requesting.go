package requesting

import (
	"fmt"
	"net/http"
	"os"

	"bitbucket.org/crgw/retell-calcom-hub/internal/schema"
)

func isValidResponse(code int) bool {
	return code >= 200 && code <= 299
}

// RequestErrors classifies the outcome of client.Do. For non 2xx statuses the
// response is returned together with the error so the caller can read the
// upstream error body; the caller owns closing it.
func RequestErrors(response *http.Response, err error) (*http.Response, *schema.BookingError) {
	if err != nil {
		if os.IsTimeout(err) {
			return nil, schema.NewTimeoutError(err.Error())
		}

		return nil, schema.NewConnectionError(err.Error())
	}

	if !isValidResponse(response.StatusCode) {
		return response, schema.NewUpstreamError(
			response.StatusCode,
			fmt.Sprintf("Request failed with status code %d", response.StatusCode),
		)
	}

	return response, nil
}
