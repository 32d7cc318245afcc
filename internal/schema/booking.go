package schema

type Key string

const (
	RequestingTypeKey Key = "requestingType"
)

type UpstreamRequestName string

const (
	CreateBooking UpstreamRequestName = "createBooking"
)

// BookingRequestParams are the function call arguments of a booking. Unknown
// fields sent by the caller are ignored.
type BookingRequestParams struct {
	Start string `json:"start" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

type BookingResult struct {
	Success          bool   `json:"success"`
	BookingId        int    `json:"bookingId"`
	BookingReference string `json:"bookingReference"`
	Message          string `json:"message"`
}
