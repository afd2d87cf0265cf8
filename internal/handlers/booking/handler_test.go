package booking_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	availabilityModel "hotel/internal/domains/availability/model"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/handlers/booking"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*bookingMocks.MockBookingService, http.Handler) {
	t.Helper()

	svc := bookingMocks.NewMockBookingService(gomock.NewController(t))
	handler := booking.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestCreateBooking(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().
			Create(gomock.Any(), dto.CreateBookingRequest{CheckIn: "10/05/2099", CheckOut: "12/05/2099", RoomType: "DOUBLE"}).
			Return(dto.BookingResponse{ID: "booking-1", Status: model.StatusPending, Nights: 2}, nil)

		rec := serve(router, http.MethodPost, "/bookings", `{"check_in":"10/05/2099","check_out":"12/05/2099","room_type":"DOUBLE"}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var body response.Data[dto.BookingResponse]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, constant.ResponseStatusSuccess, body.Status)
		assert.Equal(t, "booking-1", body.Data.ID)
		assert.Equal(t, 2, body.Data.Nights)
	})

	t.Run("rejects a malformed date before reaching the service", func(t *testing.T) {
		_, router := setup(t)

		rec := serve(router, http.MethodPost, "/bookings", `{"check_in":"2099-05-10","check_out":"12/05/2099"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("maps a conflict to 409", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, availabilityModel.ErrRoomNotAvailable)

		rec := serve(router, http.MethodPost, "/bookings", `{"check_in":"10/05/2099","check_out":"12/05/2099"}`)

		require.Equal(t, http.StatusConflict, rec.Code)

		var body response.Error
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, constant.ResponseStatusError, body.Status)
	})
}

func TestGetBookings(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), dto.BookingFilter{Status: model.StatusConfirmed, RoomType: "SUITE"}).
		DoAndReturn(func(_ any, params gDto.QueryParams, _ dto.BookingFilter) (dto.GetBookingsResponse, error) {
			assert.Equal(t, 2, params.Page)

			return dto.GetBookingsResponse{Bookings: []dto.BookingResponse{{ID: "booking-1"}}}, nil
		})

	rec := serve(router, http.MethodGet, "/bookings?status=CONFIRMED&room_type=SUITE&page=2", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "booking-1")
}

func TestGetBookings_InvalidStatus(t *testing.T) {
	_, router := setup(t)

	rec := serve(router, http.MethodGet, "/bookings?status=LOST", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingActions(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		expect   func(svc *bookingMocks.MockBookingService)
		wantCode int
	}{
		{
			name:   "confirm",
			method: http.MethodPost,
			target: "/bookings/booking-1/confirm",
			expect: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Confirm(gomock.Any(), "booking-1").Return(dto.BookingResponse{ID: "booking-1", Status: model.StatusConfirmed}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "confirm not pending",
			method: http.MethodPost,
			target: "/bookings/booking-1/confirm",
			expect: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Confirm(gomock.Any(), "booking-1").Return(dto.BookingResponse{}, model.ErrInvalidBookingStatus)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "cancel unknown booking",
			method: http.MethodPost,
			target: "/bookings/missing/cancel",
			expect: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Cancel(gomock.Any(), "missing").Return(dto.BookingResponse{}, model.ErrBookingNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "get",
			method: http.MethodGet,
			target: "/bookings/booking-1",
			expect: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Get(gomock.Any(), "booking-1").Return(dto.BookingResponse{ID: "booking-1"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/bookings/booking-1",
			expect: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Delete(gomock.Any(), "booking-1").Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "unexpected error",
			method: http.MethodDelete,
			target: "/bookings/booking-1",
			expect: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Delete(gomock.Any(), "booking-1").Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.expect(svc)

			rec := serve(router, tt.method, tt.target, "")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestModifyBooking(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().
		Modify(gomock.Any(), dto.ModifyBookingRequest{CheckIn: "11/05/2099", CheckOut: "14/05/2099"}, "booking-1").
		Return(dto.BookingResponse{ID: "booking-1", Nights: 3}, nil)

	rec := serve(router, http.MethodPut, "/bookings/booking-1", `{"check_in":"11/05/2099","check_out":"14/05/2099"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}
