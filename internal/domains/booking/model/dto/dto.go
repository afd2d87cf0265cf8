package dto

import (
	"strconv"
	"time"

	availabilityModel "hotel/internal/domains/availability/model"
	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

const priceScale = 2

// SortColumns are the list orderings a client may ask for.
var SortColumns = []string{model.FieldCheckInDate, model.FieldCheckOutDate, model.FieldStatus, constant.FieldCreatedAt}

type CreateBookingRequest struct {
	CheckIn  string `json:"check_in"            validate:"required,date"`
	CheckOut string `json:"check_out"           validate:"required,date"`
	RoomType string `json:"room_type,omitempty" validate:"omitempty,oneof=SINGLE DOUBLE SUITE"`
	ClientID string `json:"client_id,omitempty" validate:"omitempty,uuid"`
}

// ToQuery expects a validated request.
func (c CreateBookingRequest) ToQuery() (availabilityModel.Query, error) {
	return parseRange(c.CheckIn, c.CheckOut, c.RoomType)
}

type ModifyBookingRequest struct {
	CheckIn  string `json:"check_in"            validate:"required,date"`
	CheckOut string `json:"check_out"           validate:"required,date"`
	RoomType string `json:"room_type,omitempty" validate:"omitempty,oneof=SINGLE DOUBLE SUITE"`
}

func (m ModifyBookingRequest) ToQuery() (availabilityModel.Query, error) {
	return parseRange(m.CheckIn, m.CheckOut, m.RoomType)
}

// parseRange reads a dd/mm/yyyy range that must start after today.
func parseRange(checkIn, checkOut, roomType string) (availabilityModel.Query, error) {
	in, err := gDto.ParseDate(checkIn)
	if err != nil {
		return availabilityModel.Query{}, availabilityModel.ErrInvalidDateRange
	}

	out, err := gDto.ParseDate(checkOut)
	if err != nil {
		return availabilityModel.Query{}, availabilityModel.ErrInvalidDateRange
	}

	today := timezone.Today()
	if !in.After(today) || !out.After(today) {
		return availabilityModel.Query{}, model.ErrDatesInPast
	}

	query := availabilityModel.Query{CheckIn: in, CheckOut: out, RoomType: roomType}

	return query, query.Validate()
}

func NewBooking(clientID, roomID string, query availabilityModel.Query, actor string) model.Booking {
	return model.Booking{
		ID:           uuid.NewString(),
		ClientID:     clientID,
		RoomID:       roomID,
		CheckInDate:  query.CheckIn,
		CheckOutDate: query.CheckOut,
		Status:       model.StatusPending,
		Metadata:     gModel.NewMetadata(timezone.Now(), actor),
	}
}

type StatusUpdate struct {
	Status string `db:"status"`
}

type CancelUpdate struct {
	Status      string     `db:"status"`
	CancelledAt *time.Time `db:"cancelled_at"`
}

type StayUpdate struct {
	RoomID       string    `db:"room_id"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
}

type BookingResponse struct {
	ID             string  `json:"id"`
	ClientID       string  `json:"client_id"`
	ClientName     string  `json:"client_name"`
	ClientEmail    string  `json:"client_email"`
	RoomID         string  `json:"room_id"`
	RoomNumber     int     `json:"room_number"`
	RoomType       string  `json:"room_type"`
	CheckInDate    string  `json:"check_in_date"`
	CheckOutDate   string  `json:"check_out_date"`
	Nights         int     `json:"nights"`
	NightlyPrice   string  `json:"nightly_price"`
	TotalPrice     string  `json:"total_price"`
	Status         string  `json:"status"`
	CheckInStatus  *string `json:"check_in_status,omitempty"`
	CheckOutStatus *string `json:"check_out_status,omitempty"`
	CancelledAt    *string `json:"cancelled_at,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(detail model.BookingDetail) {
	r.ID = detail.ID
	r.ClientID = detail.ClientID
	r.ClientName = detail.ClientName
	r.ClientEmail = detail.ClientEmail
	r.RoomID = detail.RoomID
	r.RoomNumber = detail.RoomNumber
	r.RoomType = detail.RoomType
	r.CheckInDate = detail.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = detail.CheckOutDate.Format(constant.DateOnlyFormat)
	r.Nights = detail.Nights()
	r.NightlyPrice = detail.RoomPrice.StringFixed(priceScale)
	r.TotalPrice = detail.Total().StringFixed(priceScale)
	r.Status = detail.Status
	r.CheckInStatus = detail.CheckInStatus
	r.CheckOutStatus = detail.CheckOutStatus

	if detail.CancelledAt != nil {
		cancelledAt := timezone.Format(*detail.CancelledAt, constant.DateFormat)
		r.CancelledAt = &cancelledAt
	}

	r.Metadata.FromModel(detail.Metadata)
}

type GetBookingsResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Pagination gDto.Pagination   `json:"pagination"`
}

func (r *GetBookingsResponse) FromModels(details []model.BookingDetail, total int, params gDto.QueryParams) {
	r.Bookings = make([]BookingResponse, len(details))
	for i, detail := range details {
		r.Bookings[i].FromModel(detail)
	}

	r.Pagination = gDto.Pagination{
		Page:      params.Page,
		Limit:     params.Limit,
		Total:     total,
		TotalPage: shared.CalculateTotalPage(total, params.Limit),
	}
}

// BookingFilter is read from the query string of GET /bookings.
type BookingFilter struct {
	ClientID     string `query:"client_id"      validate:"omitempty,uuid"`
	Status       string `query:"status"         validate:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED NO_SHOW"`
	CheckInDate  string `query:"check_in_date"  validate:"omitempty,date"`
	CheckOutDate string `query:"check_out_date" validate:"omitempty,date"`
	RoomType     string `query:"room_type"      validate:"omitempty,oneof=SINGLE DOUBLE SUITE"`

	// StayFrom and StayTo select bookings whose stay intersects [stay_from, stay_to).
	StayFrom string `query:"stay_from" validate:"required_with=StayTo,omitempty,date"`
	StayTo   string `query:"stay_to"   validate:"required_with=StayFrom,omitempty,date"`
}

// ToFilterGroup expects a validated filter.
func (f BookingFilter) ToFilterGroup() (gDto.FilterGroup, error) {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.ClientID != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Table: model.TableName, Field: model.FieldClientID, Value: f.ClientID, Operator: gDto.FilterOperatorEq})
	}

	if f.Status != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Table: model.TableName, Field: model.FieldStatus, Value: f.Status, Operator: gDto.FilterOperatorEq})
	}

	dates := []struct{ field, value string }{
		{model.FieldCheckInDate, f.CheckInDate},
		{model.FieldCheckOutDate, f.CheckOutDate},
	}

	for _, d := range dates {
		if d.value == constant.Empty {
			continue
		}

		date, err := gDto.ParseDate(d.value)
		if err != nil {
			return group, failure.BadRequestFromString(d.field + " must be a date in dd/mm/yyyy format") //nolint:wrapcheck
		}

		group.Filters = append(group.Filters, gDto.Filter{Table: model.TableName, Field: d.field, Value: date, Operator: gDto.FilterOperatorEq})
	}

	if f.StayFrom != constant.Empty || f.StayTo != constant.Empty {
		from, errFrom := gDto.ParseDate(f.StayFrom)
		to, errTo := gDto.ParseDate(f.StayTo)

		if errFrom != nil || errTo != nil || !from.Before(to) {
			return group, failure.BadRequestFromString("stay_from and stay_to must be dd/mm/yyyy dates with stay_from before stay_to") //nolint:wrapcheck
		}

		group.Filters = append(group.Filters, gDto.Overlap(model.TableName, model.FieldCheckInDate, model.FieldCheckOutDate, from, to))
	}

	if f.RoomType != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Table: roomModel.TableName, Field: roomModel.FieldType, ArgName: "room_type", Value: f.RoomType, Operator: gDto.FilterOperatorEq})
	}

	return group, nil
}

// NotificationData is the template data describing detail.
func NotificationData(detail model.BookingDetail) map[string]string {
	return map[string]string{
		"booking_id":  detail.ID,
		"client_name": detail.ClientName,
		"room_number": strconv.Itoa(detail.RoomNumber),
		"room_type":   detail.RoomType,
		"check_in":    gDto.FormatDate(detail.CheckInDate),
		"check_out":   gDto.FormatDate(detail.CheckOutDate),
		"nights":      strconv.Itoa(detail.Nights()),
		"price":       detail.RoomPrice.StringFixed(priceScale),
		"total":       detail.Total().StringFixed(priceScale),
	}
}

// ModifiedNotificationData adds the before picture of a modified booking under old_ keys.
func ModifiedNotificationData(before, after model.BookingDetail) map[string]string {
	data := NotificationData(after)
	old := NotificationData(before)

	for _, key := range []string{"room_number", "check_in", "check_out", "price", "total"} {
		data["old_"+key] = old[key]
	}

	return data
}
