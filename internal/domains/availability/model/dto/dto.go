package dto

import (
	"hotel/internal/domains/availability/model"
	roomModel "hotel/internal/domains/room/model"
	roomDto "hotel/internal/domains/room/model/dto"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/shopspring/decimal"
)

var errInvalidMaxPrice = failure.BadRequestFromString("max_price must be a decimal number")

// AvailabilityRequest is read from the query string of the availability endpoints.
type AvailabilityRequest struct {
	CheckIn  string `query:"check_in"  validate:"required,date"`
	CheckOut string `query:"check_out" validate:"required,date"`
	RoomType string `query:"room_type" validate:"omitempty,oneof=SINGLE DOUBLE SUITE"`
	MaxPrice string `query:"max_price" validate:"omitempty,numeric"`
}

// ToQuery expects a validated request.
func (r AvailabilityRequest) ToQuery() (model.Query, error) {
	checkIn, err := gDto.ParseDate(r.CheckIn)
	if err != nil {
		return model.Query{}, model.ErrInvalidDateRange
	}

	checkOut, err := gDto.ParseDate(r.CheckOut)
	if err != nil {
		return model.Query{}, model.ErrInvalidDateRange
	}

	query := model.Query{CheckIn: checkIn, CheckOut: checkOut, RoomType: r.RoomType}

	if r.MaxPrice != constant.Empty {
		maxPrice, err := decimal.NewFromString(r.MaxPrice)
		if err != nil {
			return model.Query{}, errInvalidMaxPrice
		}

		query.MaxPrice = &maxPrice
	}

	return query, query.Validate()
}

// RoomCheckRequest carries the optional date range of GET /rooms/{number}/availability.
type RoomCheckRequest struct {
	CheckIn  string `query:"check_in"  validate:"required_with=CheckOut,omitempty,date"`
	CheckOut string `query:"check_out" validate:"required_with=CheckIn,omitempty,date"`
}

// ToQuery returns nil when no range was given.
func (r RoomCheckRequest) ToQuery() (*model.Query, error) {
	if r.CheckIn == constant.Empty && r.CheckOut == constant.Empty {
		return nil, nil //nolint:nilnil
	}

	query, err := AvailabilityRequest{CheckIn: r.CheckIn, CheckOut: r.CheckOut}.ToQuery()
	if err != nil {
		return nil, err
	}

	return &query, nil
}

type AvailableRoom struct {
	roomDto.RoomResponse
	Nights int    `json:"nights"`
	Total  string `json:"total"`
}

type AvailableRoomsResponse struct {
	CheckIn  string          `json:"check_in"`
	CheckOut string          `json:"check_out"`
	Rooms    []AvailableRoom `json:"rooms"`
}

func (r *AvailableRoomsResponse) FromModels(rooms []roomModel.Room, query model.Query) {
	nights := int(query.CheckOut.Sub(query.CheckIn).Hours() / constant.HoursPerDay)

	r.CheckIn = query.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = query.CheckOut.Format(constant.DateOnlyFormat)
	r.Rooms = make([]AvailableRoom, len(rooms))

	for i, room := range rooms {
		r.Rooms[i].FromModel(room)
		r.Rooms[i].Nights = nights
		r.Rooms[i].Total = room.Price.Mul(decimal.NewFromInt(int64(nights))).StringFixed(2) //nolint:mnd
	}
}
