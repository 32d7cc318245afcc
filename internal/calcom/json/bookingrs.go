package json

import (
	"bytes"
	jsonEncoding "encoding/json"
)

// BookingRS accepts both a bare booking body and the v2 envelope
// {"status": "success", "data": {...}}.
type BookingRS struct {
	Errors
	BookingInfo
	Status string      `json:"status"`
	Data   BookingData `json:"data"`
}

type BookingInfo struct {
	Id  int    `json:"id"`
	Uid string `json:"uid"`
}

// BookingData is a single booking, or a list of them for recurring and seated event types
type BookingData []BookingInfo

func (d *BookingData) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*d = nil
	case data[0] == '[':
		var bookings []BookingInfo
		if err := jsonEncoding.Unmarshal(data, &bookings); err != nil {
			return err
		}
		*d = bookings
	default:
		var booking BookingInfo
		if err := jsonEncoding.Unmarshal(data, &booking); err != nil {
			return err
		}
		*d = BookingData{booking}
	}

	return nil
}

// Booking returns the first booking of the envelope, or the bare body
func (b *BookingRS) Booking() BookingInfo {
	if len(b.Data) > 0 && (b.Data[0].Id != 0 || b.Data[0].Uid != "") {
		return b.Data[0]
	}

	return b.BookingInfo
}
