package interfaces

import (
	"context"

	"bitbucket.org/crgw/retell-calcom-hub/internal/schema"
	"github.com/rs/zerolog"
)

type WithCreateBooking interface {
	CreateBooking(context.Context, schema.BookingRequestParams, *zerolog.Logger) (schema.BookingResult, error)
}
