package model

import "errors"

const (
	TemplateBookingCreated   = "booking_created"
	TemplateBookingConfirmed = "booking_confirmed"
	TemplateBookingModified  = "booking_modified"
	TemplateBookingCancelled = "booking_cancelled"
	TemplateBookingNoShow    = "booking_no_show"
	TemplateCheckIn          = "check_in"
	TemplateCheckOut         = "check_out"
)

const (
	DriverKafka  = "kafka"
	DriverDirect = "direct"
	DriverLog    = "log"
)

var ErrUnknownTemplate = errors.New("unknown notification template")

// Notification is one message for Recipient rendered from Template with Data.
type Notification struct {
	Template  string            `json:"template"`
	Recipient string            `json:"recipient"`
	Data      map[string]string `json:"data"`
}
