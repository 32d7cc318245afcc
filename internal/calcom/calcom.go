package calcom

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"bitbucket.org/crgw/retell-calcom-hub/internal/config"
	"bitbucket.org/crgw/retell-calcom-hub/internal/schema"
	"bitbucket.org/crgw/retell-calcom-hub/internal/tools/slowlog"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type calCom struct {
	configuration config.CalCom
	httpTransport http.RoundTripper
	timeout       time.Duration
	userAgent     string
	validate      *validator.Validate
}

// CreateBooking validates the call arguments and books them as a single
// attempt. Identical arguments sent twice create two bookings.
func (c *calCom) CreateBooking(ctx context.Context, params schema.BookingRequestParams, logger *zerolog.Logger) (schema.BookingResult, error) {
	slowLog := slowlog.CreateLogger(logger, slowlog.DefaultThreshold)

	slowLog.Start("validate")
	err := c.validateParams(params)
	slowLog.Stop("validate")
	if err != nil {
		return schema.BookingResult{}, err
	}

	bookingRequest := bookingRequest{
		configuration: c.configuration,
		params:        params,
		logger:        logger,
		timeout:       c.timeout,
		userAgent:     c.userAgent,
	}

	slowLog.Start("calcom-booking")
	defer slowLog.Stop("calcom-booking")

	return bookingRequest.Execute(ctx, c.httpTransport)
}

// first missing field wins, in declaration order: start, name, phone
func (c *calCom) validateParams(params schema.BookingRequestParams) error {
	err := c.validate.Struct(params)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return schema.NewValidationError(validationErrors[0].Field())
	}

	return err
}

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return validate
}

func New(configuration config.CalCom, optionFuncs ...OptionFunc) *calCom {
	options := NewOptions(optionFuncs...)

	return &calCom{
		configuration: configuration,
		httpTransport: newTransport(),
		timeout:       timeoutOrDefault(configuration.Timeout),
		userAgent:     options.Name(),
		validate:      newValidator(),
	}
}
