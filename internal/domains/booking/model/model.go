package model

import (
	"net/http"
	"time"

	"hotel/shared/failure"
	"hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldClientID     = "client_id"
	FieldRoomID       = "room_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldStatus       = "status"
	FieldCancelledAt  = "cancelled_at"
)

const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
	StatusNoShow    = "NO_SHOW"
)

// ActiveStatuses are the statuses that hold a room for their date range.
var ActiveStatuses = []string{StatusPending, StatusConfirmed}

var (
	ErrBookingNotFound            = failure.New(http.StatusNotFound, "Booking not found", "The requested booking does not exist.")
	ErrPermissionDenied           = failure.New(http.StatusForbidden, "Permission denied", "You do not have permission to access this booking.")
	ErrUnauthorizedBooking        = failure.New(http.StatusForbidden, "Unauthorized booking", "You are not allowed to confirm this booking.")
	ErrUnauthorizedCancellation   = failure.New(http.StatusForbidden, "Unauthorized cancellation", "You are not allowed to cancel this booking.")
	ErrInvalidBookingConfirmation = failure.New(http.StatusConflict, "Invalid booking confirmation", "Only pending bookings can be confirmed.")
	ErrInvalidBookingModification = failure.New(http.StatusConflict, "Invalid booking modification", "Only pending or confirmed bookings that have not started can be modified.")
	ErrInvalidBookingStatus       = failure.New(http.StatusConflict, "Invalid booking status", "The booking status does not allow this operation.")
	ErrAlreadyCanceled            = failure.New(http.StatusConflict, "Booking already canceled", "This booking has already been canceled.")
	ErrRoomNotAvailableForDates   = failure.New(http.StatusConflict, "Room not available", "No room is available for the selected dates.")
	ErrDatesInPast                = failure.New(http.StatusBadRequest, "Invalid dates", "Check-in and check-out dates must be after today.")
	ErrClientNotFound             = failure.New(http.StatusBadRequest, "Invalid client", "The client for this booking does not exist.")
)

// Booking is the stored row.
type Booking struct {
	ID           string     `db:"id"`
	ClientID     string     `db:"client_id"`
	RoomID       string     `db:"room_id"`
	CheckInDate  time.Time  `db:"check_in_date"`
	CheckOutDate time.Time  `db:"check_out_date"`
	Status       string     `db:"status"`
	CancelledAt  *time.Time `db:"cancelled_at"`
	model.Metadata
}

// Nights is the number of nights in [CheckInDate, CheckOutDate).
func (b Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24) //nolint:mnd
}

// CheckInAt is the check-in day at hour in the application timezone.
func (b Booking) CheckInAt(hour int) time.Time {
	return timezone.At(b.CheckInDate, hour)
}

func (b Booking) CheckOutAt(hour int) time.Time {
	return timezone.At(b.CheckOutDate, hour)
}

// BookingDetail is the read model joined with its room, client and check-in record.
type BookingDetail struct {
	Booking
	RoomNumber     int             `db:"room_number"      table:"rooms"               column:"number"`
	RoomType       string          `db:"room_type"        table:"rooms"               column:"type"`
	RoomPrice      decimal.Decimal `db:"room_price"       table:"rooms"               column:"price"`
	RoomStatus     string          `db:"room_status"      table:"rooms"               column:"status"`
	ClientName     string          `db:"client_name"      table:"users"               column:"name"`
	ClientEmail    string          `db:"client_email"     table:"users"               column:"email"`
	CheckInStatus  *string         `db:"check_in_status"  table:"check_in_check_outs" column:"check_in_status"`
	CheckOutStatus *string         `db:"check_out_status" table:"check_in_check_outs" column:"check_out_status"`
}

func (BookingDetail) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = bookings.room_id " +
		"JOIN users ON users.id = bookings.client_id " +
		"LEFT JOIN check_in_check_outs ON check_in_check_outs.booking_id = bookings.id"
}

// InStay reports a confirmed booking whose guest has checked in but not out.
func (d BookingDetail) InStay(completed string) bool {
	return d.Status == StatusConfirmed &&
		d.CheckInStatus != nil && *d.CheckInStatus == completed &&
		(d.CheckOutStatus == nil || *d.CheckOutStatus != completed)
}

// Total is the price of the whole stay at the room's nightly rate.
func (d BookingDetail) Total() decimal.Decimal {
	return d.RoomPrice.Mul(decimal.NewFromInt(int64(d.Nights())))
}
