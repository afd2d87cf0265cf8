package model

import (
	"net/http"
	"time"

	"hotel/shared/failure"
	"hotel/shared/model"
)

const (
	TableName  = "check_in_check_outs"
	EntityName = "check_in_check_out"

	FieldID             = "id"
	FieldBookingID      = "booking_id"
	FieldCheckInStatus  = "check_in_status"
	FieldCheckInAt      = "check_in_at"
	FieldCheckOutStatus = "check_out_status"
	FieldCheckOutAt     = "check_out_at"
)

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusCanceled  = "CANCELED"
)

var (
	ErrRecordNotFound    = failure.New(http.StatusNotFound, "Check-in record not found", "The booking has no check-in record.")
	ErrAlreadyCheckedIn  = failure.New(http.StatusConflict, "Already checked in", "The guest has already checked in.")
	ErrAlreadyCheckedOut = failure.New(http.StatusConflict, "Already checked out", "The guest has already checked out.")
	ErrCheckInTooEarly   = failure.New(http.StatusConflict, "Invalid booking status", "Check-in is only possible from the check-in date.")
	ErrNotCheckedIn      = failure.New(http.StatusConflict, "Invalid booking status", "The guest has not checked in yet.")
)

type CheckInCheckOut struct {
	ID             string     `db:"id"`
	BookingID      string     `db:"booking_id"`
	CheckInStatus  string     `db:"check_in_status"`
	CheckInAt      *time.Time `db:"check_in_at"`
	CheckOutStatus string     `db:"check_out_status"`
	CheckOutAt     *time.Time `db:"check_out_at"`
	model.Metadata
}

// New returns the record created when a booking is confirmed.
func New(id, bookingID string, now time.Time, user string) CheckInCheckOut {
	return CheckInCheckOut{
		ID:             id,
		BookingID:      bookingID,
		CheckInStatus:  StatusPending,
		CheckOutStatus: StatusPending,
		Metadata:       model.NewMetadata(now, user),
	}
}
