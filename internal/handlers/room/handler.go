package room

import (
	"net/http"
	"strconv"

	"hotel/infras/otel"
	availabilityDto "hotel/internal/domains/availability/model/dto"
	availabilityService "hotel/internal/domains/availability/service"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var errInvalidRoomNumber = failure.BadRequestFromString("Room number must be a positive integer.")

type Handler struct {
	service      service.Room
	availability availabilityService.Availability
	otel         otel.Otel
}

func New(service service.Room, availability availabilityService.Availability, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		availability: availability,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/availability/filter", handler.FilterAvailable)
		routerGroup.Get("/{number}/availability", handler.CheckRoom)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Put("/{id}", handler.UpdateRoom)
		routerGroup.Post("/{id}/image", handler.UploadImage)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a room. The image may be sent inline as a base64 data URI.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("number", req.Number).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room created successfully by user " + shared.Actor(ctx))

	response.WithJSON(w, http.StatusCreated, room)
}

// GetRooms retrieves all rooms based on query parameters.
// @Summary Get all rooms
// @Description Retrieve all rooms with optional filtering and pagination.
// @Tags Room
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by room type"
// @Param status query string false "Filter by room status"
// @Param max_price query number false "Filter by maximum nightly price"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.AllowSort(model.FieldNumber, gDto.SortDirAsc, dto.SortColumns...)

	filter := dto.RoomFilter{}
	if err := validator.ValidateQuery(r.URL.Query(), &filter); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filter.ToFilterGroup())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// FilterAvailable lists rooms free for a stay.
// @Summary Available rooms
// @Description List rooms with no overlapping active booking in the given range, cheapest first.
// @Tags Room
// @Produce json
// @Param check_in query string true "Check-in date (dd/mm/yyyy)"
// @Param check_out query string true "Check-out date (dd/mm/yyyy)"
// @Param room_type query string false "Room type"
// @Param max_price query number false "Maximum nightly price"
// @Success 200 {object} response.Data[availabilityDto.AvailableRoomsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/rooms/availability/filter [get]
func (handler *Handler) FilterAvailable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FilterAvailable")
	defer scope.End()

	req := availabilityDto.AvailabilityRequest{}
	if err := validator.ValidateQuery(r.URL.Query(), &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	query, err := req.ToQuery()
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	rooms, err := handler.availability.ListAvailable(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list available rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// CheckRoom reports whether a room by number can be booked.
// @Summary Room availability
// @Description Without a range the room's current status is returned. With a range the room must also be free of overlapping bookings.
// @Tags Room
// @Produce json
// @Param number path int true "Room number"
// @Param check_in query string false "Check-in date (dd/mm/yyyy)"
// @Param check_out query string false "Check-out date (dd/mm/yyyy)"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/rooms/{number}/availability [get]
func (handler *Handler) CheckRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckRoom")
	defer scope.End()

	number, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamNumber))
	if err != nil || number < 1 {
		scope.TraceError(errInvalidRoomNumber)

		response.WithError(w, errInvalidRoomNumber)

		return
	}

	req := availabilityDto.RoomCheckRequest{}
	if err := validator.ValidateQuery(r.URL.Query(), &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	query, err := req.ToQuery()
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	room, err := handler.availability.CheckRoom(ctx, number, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("number", number).Msg("failed to check room availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", id).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates an existing room by its ID.
// @Summary Update a room by ID
// @Description Partially update a room. Only the fields sent are changed.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Update Room Request"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/rooms/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", id).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room updated successfully by user " + shared.Actor(ctx))

	response.WithJSON(w, http.StatusOK, room)
}

// UploadImage stores a room picture.
// @Summary Upload room image
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param image formData file true "Room image"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, header, err := r.FormFile(constant.FormImage)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	room, err := handler.service.UploadImage(ctx, id, file, header)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", id).Msg("failed to upload room image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// DeleteRoom deletes a room by its ID.
// @Summary Delete a room by ID
// @Description Rooms with active bookings cannot be deleted.
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", id).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room deleted successfully by user " + shared.Actor(ctx))

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
