package dto

import (
	"time"

	"hotel/internal/domains/checkin/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"
)

type CheckInUpdate struct {
	CheckInStatus string     `db:"check_in_status"`
	CheckInAt     *time.Time `db:"check_in_at"`
}

type CheckOutUpdate struct {
	CheckOutStatus string     `db:"check_out_status"`
	CheckOutAt     *time.Time `db:"check_out_at"`
}

// CancelUpdate closes both halves of a record whose booking ended without a stay.
type CancelUpdate struct {
	CheckInStatus  string `db:"check_in_status"`
	CheckOutStatus string `db:"check_out_status"`
}

func NewCancelUpdate() CancelUpdate {
	return CancelUpdate{CheckInStatus: model.StatusCanceled, CheckOutStatus: model.StatusCanceled}
}

type RecordResponse struct {
	ID             string  `json:"id"`
	BookingID      string  `json:"booking_id"`
	CheckInStatus  string  `json:"check_in_status"`
	CheckInAt      *string `json:"check_in_at"`
	CheckOutStatus string  `json:"check_out_status"`
	CheckOutAt     *string `json:"check_out_at"`
	BookingStatus  string  `json:"booking_status,omitempty"`
	RoomNumber     int     `json:"room_number,omitempty"`
	gDto.Metadata
}

func (r *RecordResponse) FromModel(record model.CheckInCheckOut) {
	r.ID = record.ID
	r.BookingID = record.BookingID
	r.CheckInStatus = record.CheckInStatus
	r.CheckInAt = formatTime(record.CheckInAt)
	r.CheckOutStatus = record.CheckOutStatus
	r.CheckOutAt = formatTime(record.CheckOutAt)
	r.Metadata.FromModel(record.Metadata)
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}
