package json

type BookingRQ struct {
	Start         string            `json:"start"`
	Attendee      BookingRQAttendee `json:"attendee"`
	EventTypeId   int               `json:"eventTypeId"`
	EventTypeSlug string            `json:"eventTypeSlug"`
}

type BookingRQAttendee struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	TimeZone    string `json:"timeZone"`
	Language    string `json:"language"`
}
