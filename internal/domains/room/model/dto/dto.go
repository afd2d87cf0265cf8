package dto

import (
	"strconv"

	"hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const priceScale = 2

type CreateRoomRequest struct {
	Number      int     `json:"number"      validate:"required,min=1"`
	Type        string  `json:"type"        validate:"required,oneof=SINGLE DOUBLE SUITE"`
	Price       float64 `json:"price"       validate:"required,gt=0,lt=1000000"`
	Status      string  `json:"status"      validate:"omitempty,oneof=AVAILABLE MAINTENANCE"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	Image       string  `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	status := c.Status
	if status == "" {
		status = model.StatusAvailable
	}

	return model.Room{
		ID:          uuid.NewString(),
		Number:      c.Number,
		Type:        c.Type,
		Status:      status,
		Price:       decimal.NewFromFloat(c.Price).Round(priceScale),
		Description: c.Description,
		ImageURL:    imageURL,
		Metadata:    gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateRoomRequest struct {
	Number      *int     `json:"number,omitempty"      validate:"omitempty,min=1"`
	Type        *string  `json:"type,omitempty"        validate:"omitempty,oneof=SINGLE DOUBLE SUITE"`
	Price       *float64 `json:"price,omitempty"       validate:"omitempty,gt=0,lt=1000000"`
	Status      *string  `json:"status,omitempty"      validate:"omitempty,oneof=AVAILABLE BOOKED OCCUPIED MAINTENANCE"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Image       string   `json:"image,omitempty"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
}

func (u *UpdateRoomRequest) IsEmpty() bool {
	return u.Number == nil && u.Type == nil && u.Price == nil && u.Status == nil && u.Description == nil && u.Image == ""
}

// RoomUpdate is the column set written by an update; zero fields are left untouched.
type RoomUpdate struct {
	Number      int             `db:"number"`
	Type        string          `db:"type"`
	Status      string          `db:"status"`
	Price       decimal.Decimal `db:"price"`
	Description *string         `db:"description"`
	ImageURL    string          `db:"image_url"`
}

func (u *UpdateRoomRequest) ToUpdate(imageURL string) RoomUpdate {
	update := RoomUpdate{
		Description: u.Description,
		ImageURL:    imageURL,
	}

	if u.Number != nil {
		update.Number = *u.Number
	}

	if u.Type != nil {
		update.Type = *u.Type
	}

	if u.Status != nil {
		update.Status = *u.Status
	}

	if u.Price != nil {
		update.Price = decimal.NewFromFloat(*u.Price).Round(priceScale)
	}

	return update
}

// Apply returns room with the update merged in.
func (u RoomUpdate) Apply(room model.Room) model.Room {
	if u.Number != 0 {
		room.Number = u.Number
	}

	if u.Type != "" {
		room.Type = u.Type
	}

	if u.Status != "" {
		room.Status = u.Status
	}

	if !u.Price.IsZero() {
		room.Price = u.Price
	}

	if u.Description != nil {
		room.Description = *u.Description
	}

	if u.ImageURL != "" {
		room.ImageURL = u.ImageURL
	}

	return room
}

type StatusUpdate struct {
	Status string `db:"status"`
}

type ImageUpdate struct {
	ImageURL string `db:"image_url"`
}

type RoomResponse struct {
	ID          string `json:"id"`
	Number      int    `json:"number"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.Number = room.Number
	r.Type = room.Type
	r.Status = room.Status
	r.Price = room.Price.StringFixed(priceScale)
	r.Description = room.Description
	r.ImageURL = room.ImageURL
	r.Metadata.FromModel(room.Metadata)
}

type GetRoomsResponse struct {
	Rooms      []RoomResponse  `json:"rooms"`
	Pagination gDto.Pagination `json:"pagination"`
}

func (r *GetRoomsResponse) FromModels(rooms []model.Room, total int, params gDto.QueryParams) {
	r.Rooms = make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		r.Rooms[i].FromModel(room)
	}

	r.Pagination = gDto.Pagination{
		Page:      params.Page,
		Limit:     params.Limit,
		Total:     total,
		TotalPage: shared.CalculateTotalPage(total, params.Limit),
	}
}

// RoomFilter holds the list filters accepted on GET /rooms.
type RoomFilter struct {
	Type     string `query:"type"      validate:"omitempty,oneof=SINGLE DOUBLE SUITE"`
	Status   string `query:"status"    validate:"omitempty,oneof=AVAILABLE BOOKED OCCUPIED MAINTENANCE"`
	MaxPrice string `query:"max_price" validate:"omitempty,numeric"`
}

func (f RoomFilter) ToFilterGroup() gDto.FilterGroup {
	filters := []any{}

	if f.Type != constant.Empty {
		filters = append(filters, gDto.Filter{Table: model.TableName, Field: model.FieldType, Value: f.Type, Operator: gDto.FilterOperatorEq})
	}

	if f.Status != constant.Empty {
		filters = append(filters, gDto.Filter{Table: model.TableName, Field: model.FieldStatus, Value: f.Status, Operator: gDto.FilterOperatorEq})
	}

	if price, err := strconv.ParseFloat(f.MaxPrice, 64); err == nil {
		filters = append(filters, gDto.Filter{
			Table:    model.TableName,
			Field:    model.FieldPrice,
			ArgName:  "max_price",
			Value:    decimal.NewFromFloat(price),
			Operator: gDto.FilterOperatorLessEq,
		})
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}

// SortColumns are the room columns a list may be ordered by.
var SortColumns = []string{model.FieldNumber, model.FieldPrice, model.FieldType, model.FieldStatus, constant.FieldCreatedAt}
