package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	postgresMocks "hotel/infras/postgres/mocks"
	availabilityMocks "hotel/internal/domains/availability/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	checkinMocks "hotel/internal/domains/checkin/mocks"
	"hotel/internal/domains/maintenance/model"
	"hotel/internal/domains/maintenance/service"
	roomModel "hotel/internal/domains/room/model"
	cacheMocks "hotel/shared/cache/mocks"
	gDto "hotel/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	detailRepo   *bookingMocks.MockBookingDetail
	booking      *bookingMocks.MockBookingService
	checkin      *checkinMocks.MockCheckInService
	availability *availabilityMocks.MockAvailabilityService
	svc          service.Maintenance
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		detailRepo:   bookingMocks.NewMockBookingDetail(ctrl),
		booking:      bookingMocks.NewMockBookingService(ctrl),
		checkin:      checkinMocks.NewMockCheckInService(ctrl),
		availability: availabilityMocks.NewMockAvailabilityService(ctrl),
	}

	cache := cacheMocks.NewMockRedisCache(ctrl)
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Booking.CheckInHour = 14
	cfg.Booking.CheckOutHour = 12
	cfg.Booking.ExpireLookaheadMin = 24 * 60
	cfg.Booking.NoShowGraceMin = 24 * 60

	f.svc = service.New(postgresMocks.NewTransactor(), f.detailRepo, f.booking, f.checkin, f.availability, cfg, cache, otelMocks.NewOtel())

	return f
}

func details(ids ...string) []bookingModel.BookingDetail {
	out := make([]bookingModel.BookingDetail, 0, len(ids))
	for _, id := range ids {
		out = append(out, bookingModel.BookingDetail{Booking: bookingModel.Booking{ID: id, RoomID: "room-" + id}})
	}

	return out
}

var now = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func TestMaintenanceService_ExpirePending(t *testing.T) {
	t.Run("failures do not stop the sweep", func(t *testing.T) {
		f := setup(t)

		f.detailRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]bookingModel.BookingDetail, error) {
				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "bookings.status = :status")
				assert.Contains(t, where, "bookings.check_in_date <= :check_in_date_until")
				assert.Equal(t, bookingModel.StatusPending, args["status"])

				return details("a", "b", "c"), nil
			})

		deadline := now.Add(24 * time.Hour)
		f.booking.EXPECT().Expire(gomock.Any(), "a", deadline).Return(true, nil)
		f.booking.EXPECT().Expire(gomock.Any(), "b", deadline).Return(false, errors.New("deadlock detected"))
		f.booking.EXPECT().Expire(gomock.Any(), "c", deadline).Return(false, nil)

		summary, err := f.svc.ExpirePending(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, model.Summary{Job: model.JobExpirePending, Processed: 1, Failed: 1}, summary)
	})

	t.Run("candidate query fails", func(t *testing.T) {
		f := setup(t)

		f.detailRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := f.svc.ExpirePending(context.Background(), now)
		assert.Error(t, err)
	})
}

func TestMaintenanceService_MarkNoShows(t *testing.T) {
	f := setup(t)

	f.detailRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]bookingModel.BookingDetail, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "check_in_check_outs.check_in_status = :check_in_status")
			assert.Equal(t, bookingModel.StatusConfirmed, args["status"])
			assert.Equal(t, "2025-03-13", args["check_in_date_until"])

			return details("a", "b"), nil
		})

	cutoff := now.Add(-24 * time.Hour)
	f.booking.EXPECT().MarkNoShow(gomock.Any(), "a", cutoff).Return(true, nil)
	f.booking.EXPECT().MarkNoShow(gomock.Any(), "b", cutoff).Return(true, nil)

	summary, err := f.svc.MarkNoShows(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Zero(t, summary.Failed)
}

func TestMaintenanceService_ReleaseCheckedOut(t *testing.T) {
	f := setup(t)

	gomock.InOrder(
		f.detailRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(details("a"), nil),
		f.detailRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]bookingModel.BookingDetail, error) {
				where, _ := filter.GetWhereClause()
				assert.Contains(t, where, "rooms.status IN")

				held := details("x", "y", "z")
				held[2].RoomID = "room-x"

				return held, nil
			}),
	)

	f.checkin.EXPECT().AutoCheckOut(gomock.Any(), "a", now).Return(true, nil)
	f.availability.EXPECT().SyncRoomStatus(gomock.Any(), gomock.Any(), "room-x").
		Return(roomModel.Room{ID: "room-x", Status: roomModel.StatusAvailable}, nil)
	f.availability.EXPECT().SyncRoomStatus(gomock.Any(), gomock.Any(), "room-y").
		Return(roomModel.Room{}, errors.New("lock timeout"))

	summary, err := f.svc.ReleaseCheckedOut(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, model.JobReleaseCheckedOut, summary.Job)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.Failed)
}
