package calcom

import (
	"bytes"
	"context"
	jsonEncoding "encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bitbucket.org/crgw/retell-calcom-hub/internal/calcom/json"
	"bitbucket.org/crgw/retell-calcom-hub/internal/config"
	"bitbucket.org/crgw/retell-calcom-hub/internal/schema"
	"bitbucket.org/crgw/retell-calcom-hub/internal/tools/requesting"
	"github.com/rs/zerolog"
)

const attendeeLanguage = "en"

type bookingRequest struct {
	configuration config.CalCom
	params        schema.BookingRequestParams
	logger        *zerolog.Logger
	timeout       time.Duration
	userAgent     string
}

func (b *bookingRequest) Execute(ctx context.Context, httpTransport http.RoundTripper) (schema.BookingResult, error) {
	client := &http.Client{
		Timeout: b.timeout,
		Transport: &requesting.InterceptorTransport{
			Transport: httpTransport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewLoggingTransportMiddleware(b.logger, "calcom"),
				requesting.NewBodyLoggingTransportMiddleware(b.logger),
			},
		},
	}

	b.logger.Info().
		Str("start", b.params.Start).
		Int("eventTypeId", b.configuration.EventTypeID).
		Msg("Sending booking request to Cal.com")

	response, err := b.makeRequest(ctx, client)
	if err != nil {
		b.logger.Error().
			Err(err).
			Msg("Cal.com booking error")

		return schema.BookingResult{}, err
	}

	booking := response.Booking()

	b.logger.Info().
		Int("bookingId", booking.Id).
		Str("bookingReference", booking.Uid).
		Msg("Cal.com booking successful")

	return schema.BookingResult{
		Success:          true,
		BookingId:        booking.Id,
		BookingReference: booking.Uid,
		Message:          fmt.Sprintf("Appointment booked successfully for %s on %s", b.params.Name, b.params.Start),
	}, nil
}

func (b *bookingRequest) makeRequest(ctx context.Context, client *http.Client) (json.BookingRS, error) {
	body := bytes.NewBuffer(b.requestBody())

	url := b.configuration.BaseURL + "/bookings"
	c := context.WithValue(ctx, schema.RequestingTypeKey, schema.CreateBooking)

	httpRequest, err := http.NewRequestWithContext(c, http.MethodPost, url, body)
	if err != nil {
		return json.BookingRS{}, schema.NewConnectionError(err.Error())
	}

	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("cal-api-version", b.configuration.APIVersion)
	httpRequest.Header.Set("User-Agent", b.userAgent)
	if b.configuration.APIKey != "" {
		httpRequest.Header.Set("Authorization", "Bearer "+b.configuration.APIKey)
	}

	rs, e := requesting.RequestErrors(client.Do(httpRequest))
	if rs != nil {
		defer rs.Body.Close()
	}

	if e != nil {
		if rs != nil {
			if message := upstreamErrorMessage(rs.Body); message != "" {
				e.Message = message
			}
		}

		return json.BookingRS{}, e
	}

	// bind the response body to the json
	bodyBytes, err := io.ReadAll(rs.Body)
	if err != nil {
		return json.BookingRS{}, schema.NewConnectionError(err.Error())
	}

	var jsonBookingResponse json.BookingRS
	err = jsonEncoding.Unmarshal(bodyBytes, &jsonBookingResponse)
	if err != nil {
		return json.BookingRS{}, schema.NewUpstreamError(rs.StatusCode, fmt.Sprintf("invalid response body: %s", err.Error()))
	}

	if jsonBookingResponse.Status == "error" {
		message := jsonBookingResponse.ErrorMessage()
		if message == "" {
			message = "upstream reported an error"
		}

		return json.BookingRS{}, schema.NewUpstreamError(rs.StatusCode, message)
	}

	return jsonBookingResponse, nil
}

func (b *bookingRequest) requestBody() []byte {
	json, _ := jsonEncoding.Marshal(&json.BookingRQ{
		Start: b.params.Start,
		Attendee: json.BookingRQAttendee{
			Name:        b.params.Name,
			PhoneNumber: b.params.Phone,
			TimeZone:    b.configuration.TimeZone,
			Language:    attendeeLanguage,
		},
		EventTypeId:   b.configuration.EventTypeID,
		EventTypeSlug: b.configuration.EventTypeSlug,
	})

	return json
}

func upstreamErrorMessage(body io.Reader) string {
	bodyBytes, err := io.ReadAll(body)
	if err != nil || len(bodyBytes) == 0 {
		return ""
	}

	var errorResponse json.Errors
	if err := jsonEncoding.Unmarshal(bodyBytes, &errorResponse); err != nil {
		return ""
	}

	return errorResponse.ErrorMessage()
}
