package model

import (
	"net/http"

	"hotel/shared/failure"
	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldNumber      = "number"
	FieldType        = "type"
	FieldStatus      = "status"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldImageURL    = "image_url"
)

const (
	TypeSingle = "SINGLE"
	TypeDouble = "DOUBLE"
	TypeSuite  = "SUITE"
)

const (
	StatusAvailable   = "AVAILABLE"
	StatusBooked      = "BOOKED"
	StatusOccupied    = "OCCUPIED"
	StatusMaintenance = "MAINTENANCE"
)

var (
	ErrRoomNotFound          = failure.New(http.StatusNotFound, "Room not found", "The requested room does not exist.")
	ErrRoomNumberTaken       = failure.New(http.StatusConflict, "Room number taken", "A room with this number already exists.")
	ErrRoomHasActiveBookings = failure.New(http.StatusConflict, "Room in use", "The room has pending or confirmed bookings.")
	ErrRoomHasHistory        = failure.New(http.StatusConflict, "Room in use", "The room is referenced by past bookings.")
	ErrEmptyUpdate           = failure.New(http.StatusBadRequest, "Empty update", "At least one field must be provided.")
)

type Room struct {
	ID          string          `db:"id"`
	Number      int             `db:"number"`
	Type        string          `db:"type"`
	Status      string          `db:"status"`
	Price       decimal.Decimal `db:"price"`
	Description string          `db:"description"`
	ImageURL    string          `db:"image_url"`
	model.Metadata
}
