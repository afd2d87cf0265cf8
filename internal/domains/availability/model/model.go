package model

import (
	"net/http"
	"time"

	"hotel/shared/failure"

	"github.com/shopspring/decimal"
)

var (
	ErrRoomNotAvailable  = failure.New(http.StatusConflict, "Room not available", "The room is not available for the selected dates.")
	ErrNoRoomsAvailable  = failure.New(http.StatusNotFound, "No rooms available", "No rooms available for the specified criteria.")
	ErrInvalidDateRange  = failure.New(http.StatusBadRequest, "Invalid dates", "Check-out date must be after check-in date.")
	ErrMissingDateBounds = failure.New(http.StatusBadRequest, "Invalid dates", "Both check-in and check-out dates are required.")
)

// Query selects rooms free over the half-open range [CheckIn, CheckOut).
type Query struct {
	CheckIn          time.Time
	CheckOut         time.Time
	RoomType         string
	MaxPrice         *decimal.Decimal
	ExcludeBookingID string
}

func (q Query) Validate() error {
	if !q.CheckIn.Before(q.CheckOut) {
		return ErrInvalidDateRange
	}

	return nil
}

// Occupancy summarises the confirmed bookings that currently hold a room.
type Occupancy struct {
	InStay bool `db:"in_stay"`
	Booked bool `db:"booked"`
}
