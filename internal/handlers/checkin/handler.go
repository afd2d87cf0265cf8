package checkin

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/checkin/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CheckIn
	otel    otel.Otel
}

func New(service service.CheckIn, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/checkin/{id}", handler.CheckIn)
	router.Get("/checkin/{id}", handler.GetRecord)
	router.Post("/checkout/{id}", handler.CheckOut)
}

// CheckIn
// @Summary Check a guest in
// @Description Only confirmed bookings can be checked in, and not before the check-in hour of the first day.
// @Tags CheckIn
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.RecordResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/checkin/{id} [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	record, err := handler.service.CheckIn(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to check in")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest checked in by user " + shared.Actor(ctx))

	response.WithJSON(w, http.StatusOK, record)
}

// CheckOut
// @Summary Check a guest out
// @Tags CheckIn
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.RecordResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/checkout/{id} [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	record, err := handler.service.CheckOut(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to check out")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest checked out by user " + shared.Actor(ctx))

	response.WithJSON(w, http.StatusOK, record)
}

// GetRecord
// @Summary Check-in record of a booking
// @Tags CheckIn
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.RecordResponse]
// @Failure 404 {object} response.Error
// @Router /v1/checkin/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecord")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	record, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get check-in record")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, record)
}
