package schema_test

import (
	"encoding/json"
	"testing"

	"bitbucket.org/crgw/retell-calcom-hub/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookRequestResolve(t *testing.T) {
	tests := []struct {
		name             string
		payload          string
		expectedFunction string
		expectedParams   schema.BookingRequestParams
	}{
		{
			name:             "function_call with object arguments",
			payload:          `{"function_call":{"name":"book_calcom_appointment_custom","arguments":{"start":"2025-01-01T10:00:00Z","name":"Jane Doe","phone":"+15551234567"}}}`,
			expectedFunction: "book_calcom_appointment_custom",
			expectedParams:   schema.BookingRequestParams{Start: "2025-01-01T10:00:00Z", Name: "Jane Doe", Phone: "+15551234567"},
		},
		{
			name:             "function_call with string arguments",
			payload:          `{"function_call":{"name":"book_calcom_appointment_custom","arguments":"{\"start\":\"2025-01-01T10:00:00Z\",\"name\":\"Jane Doe\",\"phone\":\"+15551234567\"}"}}`,
			expectedFunction: "book_calcom_appointment_custom",
			expectedParams:   schema.BookingRequestParams{Start: "2025-01-01T10:00:00Z", Name: "Jane Doe", Phone: "+15551234567"},
		},
		{
			name:             "retell custom function",
			payload:          `{"call":{"call_id":"abc"},"name":"book_calcom_appointment_custom","args":{"start":"2025-01-01T10:00:00Z","name":"Jane Doe","phone":"+15551234567","notes":"ignored"}}`,
			expectedFunction: "book_calcom_appointment_custom",
			expectedParams:   schema.BookingRequestParams{Start: "2025-01-01T10:00:00Z", Name: "Jane Doe", Phone: "+15551234567"},
		},
		{
			name:             "flat arguments",
			payload:          `{"start":"2025-01-01T10:00:00Z","name":"Jane Doe","phone":"+15551234567"}`,
			expectedFunction: "",
			expectedParams:   schema.BookingRequestParams{Start: "2025-01-01T10:00:00Z", Name: "Jane Doe", Phone: "+15551234567"},
		},
		{
			name:             "function_call without arguments",
			payload:          `{"function_call":{"name":"book_calcom_appointment_custom"}}`,
			expectedFunction: "book_calcom_appointment_custom",
			expectedParams:   schema.BookingRequestParams{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var request schema.WebhookRequest
			require.NoError(t, json.Unmarshal([]byte(test.payload), &request))

			call := request.Resolve()
			assert.Equal(t, test.expectedFunction, call.Name)

			var params schema.BookingRequestParams
			require.NoError(t, call.BindArguments(&params))
			assert.Equal(t, test.expectedParams, params)
		})
	}

	t.Run("should reject arguments of the wrong shape", func(t *testing.T) {
		call := schema.FunctionCall{Arguments: json.RawMessage(`[1,2]`)}

		var params schema.BookingRequestParams
		assert.Error(t, call.BindArguments(&params))
	})
}

func TestErrors(t *testing.T) {
	assert.Equal(t, "Missing required parameter: phone", schema.NewValidationError("phone").Error())
	assert.Equal(t, "Cal.com booking failed: slot taken", schema.NewUpstreamError(400, "slot taken").Error())
	assert.Equal(t, schema.TimeoutError, schema.NewTimeoutError("deadline").Code)
	assert.Equal(t, schema.ConnectionError, schema.NewConnectionError("refused").Code)
}
