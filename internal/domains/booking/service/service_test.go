package service_test

import (
	"context"
	"testing"
	"time"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	postgresMocks "hotel/infras/postgres/mocks"
	availabilityMocks "hotel/internal/domains/availability/mocks"
	availabilityModel "hotel/internal/domains/availability/model"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	checkinMocks "hotel/internal/domains/checkin/mocks"
	checkinModel "hotel/internal/domains/checkin/model"
	notificationMocks "hotel/internal/domains/notification/mocks"
	notificationModel "hotel/internal/domains/notification/model"
	roomModel "hotel/internal/domains/room/model"
	userMocks "hotel/internal/domains/user/mocks"
	"hotel/shared"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo         *bookingMocks.MockBooking
	detailRepo   *bookingMocks.MockBookingDetail
	checkinRepo  *checkinMocks.MockCheckInCheckOut
	userRepo     *userMocks.MockUser
	availability *availabilityMocks.MockAvailabilityService
	notifier     *notificationMocks.MockNotifier
	svc          service.Booking
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		repo:         bookingMocks.NewMockBooking(ctrl),
		detailRepo:   bookingMocks.NewMockBookingDetail(ctrl),
		checkinRepo:  checkinMocks.NewMockCheckInCheckOut(ctrl),
		userRepo:     userMocks.NewMockUser(ctrl),
		availability: availabilityMocks.NewMockAvailabilityService(ctrl),
		notifier:     notificationMocks.NewMockNotifier(ctrl),
	}

	cache := cacheMocks.NewMockRedisCache(ctrl)
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Booking.CheckInHour = 14
	cfg.Booking.CheckOutHour = 12

	f.svc = service.New(postgresMocks.NewTransactor(), f.repo, f.detailRepo, f.checkinRepo, f.userRepo,
		f.availability, f.notifier, cfg, cache, otelMocks.NewOtel())

	return f
}

func clientCtx() context.Context {
	return shared.WithCaller(context.Background(), shared.Caller{ID: "client-1", Email: "ana@example.com", Role: constant.RoleClient})
}

func staffCtx() context.Context {
	return shared.WithCaller(context.Background(), shared.Caller{ID: "staff-1", Email: "desk@hotel.com", Role: constant.RoleStaff})
}

func day(offset int) time.Time {
	return timezone.Today().AddDate(0, 0, offset)
}

func newDetail(status string) model.BookingDetail {
	return model.BookingDetail{
		Booking: model.Booking{
			ID:           "booking-1",
			ClientID:     "client-1",
			RoomID:       "room-1",
			CheckInDate:  day(10),
			CheckOutDate: day(12),
			Status:       status,
			Metadata:     gModel.NewMetadata(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "ana@example.com"),
		},
		RoomNumber:  101,
		RoomType:    roomModel.TypeDouble,
		RoomPrice:   decimal.RequireFromString("150.00"),
		ClientName:  "Ana Lima",
		ClientEmail: "ana@example.com",
	}
}

func withRecord(detail model.BookingDetail, checkIn, checkOut string) model.BookingDetail {
	detail.CheckInStatus = &checkIn
	detail.CheckOutStatus = &checkOut

	return detail
}

func expectNotify(t *testing.T, f fixture, template string) {
	t.Helper()

	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, n notificationModel.Notification) {
			assert.Equal(t, template, n.Template)
			assert.Equal(t, "ana@example.com", n.Recipient)
		})
}

func TestBookingService_Create(t *testing.T) {
	request := dto.CreateBookingRequest{CheckIn: gDto.FormatDate(day(10)), CheckOut: gDto.FormatDate(day(12))}

	t.Run("pending booking on selected room", func(t *testing.T) {
		f := setup(t)

		f.availability.EXPECT().SelectRoom(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(roomModel.Room{ID: "room-1", Number: 101, Status: roomModel.StatusAvailable}, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
				assert.Equal(t, model.StatusPending, booking.Status)
				assert.Equal(t, "client-1", booking.ClientID)
				assert.Equal(t, "room-1", booking.RoomID)
				assert.True(t, booking.CheckInDate.Equal(day(10)))

				return nil
			})
		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(newDetail(model.StatusPending), nil)
		expectNotify(t, f, notificationModel.TemplateBookingCreated)

		res, err := f.svc.Create(clientCtx(), request)
		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Status)
		assert.Equal(t, 2, res.Nights)
		assert.Equal(t, "300.00", res.TotalPrice)
	})

	t.Run("no room left", func(t *testing.T) {
		f := setup(t)

		f.availability.EXPECT().SelectRoom(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(roomModel.Room{}, availabilityModel.ErrRoomNotAvailable)

		_, err := f.svc.Create(clientCtx(), request)
		assert.ErrorIs(t, err, availabilityModel.ErrRoomNotAvailable)
	})

	t.Run("exclusion constraint is a conflict", func(t *testing.T) {
		f := setup(t)

		f.availability.EXPECT().SelectRoom(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(roomModel.Room{ID: "room-1"}, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: constant.PqErrorCodeExclusionViolation})

		_, err := f.svc.Create(clientCtx(), request)
		assert.ErrorIs(t, err, availabilityModel.ErrRoomNotAvailable)
	})

	t.Run("dates must be after today", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.Create(clientCtx(), dto.CreateBookingRequest{CheckIn: gDto.FormatDate(day(0)), CheckOut: gDto.FormatDate(day(2))})
		assert.ErrorIs(t, err, model.ErrDatesInPast)
	})

	t.Run("check-out must follow check-in", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.Create(clientCtx(), dto.CreateBookingRequest{CheckIn: gDto.FormatDate(day(5)), CheckOut: gDto.FormatDate(day(5))})
		assert.ErrorIs(t, err, availabilityModel.ErrInvalidDateRange)
	})

	t.Run("client cannot book for someone else", func(t *testing.T) {
		f := setup(t)

		req := request
		req.ClientID = "3f1c7d2e-8a0b-4c55-9d61-2b7e4f9a1c00"

		_, err := f.svc.Create(clientCtx(), req)
		assert.ErrorIs(t, err, model.ErrPermissionDenied)
	})

	t.Run("staff books for unknown client", func(t *testing.T) {
		f := setup(t)

		req := request
		req.ClientID = "3f1c7d2e-8a0b-4c55-9d61-2b7e4f9a1c00"

		f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(staffCtx(), req)
		assert.ErrorIs(t, err, model.ErrClientNotFound)
	})
}

func TestBookingService_Confirm(t *testing.T) {
	t.Run("confirms and reserves the room", func(t *testing.T) {
		f := setup(t)

		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(newDetail(model.StatusPending), nil)
		f.availability.EXPECT().EnsureRoomFree(gomock.Any(), gomock.Any(), "room-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ string, query availabilityModel.Query) (roomModel.Room, error) {
				assert.Equal(t, "booking-1", query.ExcludeBookingID)

				return roomModel.Room{ID: "room-1"}, nil
			})
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusConfirmed, req[model.FieldStatus])

				return nil
			})
		f.checkinRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, record checkinModel.CheckInCheckOut) error {
				assert.Equal(t, "booking-1", record.BookingID)
				assert.Equal(t, checkinModel.StatusPending, record.CheckInStatus)
				assert.Equal(t, checkinModel.StatusPending, record.CheckOutStatus)

				return nil
			})
		f.availability.EXPECT().SyncRoomStatus(gomock.Any(), gomock.Any(), "room-1").
			Return(roomModel.Room{ID: "room-1", Status: roomModel.StatusBooked}, nil)

		confirmed := withRecord(newDetail(model.StatusConfirmed), checkinModel.StatusPending, checkinModel.StatusPending)
		confirmed.RoomStatus = roomModel.StatusBooked
		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(confirmed, nil)
		expectNotify(t, f, notificationModel.TemplateBookingConfirmed)

		res, err := f.svc.Confirm(clientCtx(), "booking-1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)
		require.NotNil(t, res.CheckInStatus)
		assert.Equal(t, checkinModel.StatusPending, *res.CheckInStatus)
	})

	for _, status := range []string{model.StatusConfirmed, model.StatusCancelled, model.StatusCompleted, model.StatusNoShow} {
		t.Run("rejects "+status+" even for staff", func(t *testing.T) {
			f := setup(t)

			f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(newDetail(status), nil)

			_, err := f.svc.Confirm(staffCtx(), "booking-1")
			assert.ErrorIs(t, err, model.ErrInvalidBookingConfirmation)
		})
	}

	t.Run("other client", func(t *testing.T) {
		f := setup(t)

		detail := newDetail(model.StatusPending)
		detail.ClientID = "client-2"

		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(detail, nil)

		_, err := f.svc.Confirm(clientCtx(), "booking-1")
		assert.ErrorIs(t, err, model.ErrUnauthorizedBooking)
	})

	t.Run("not found", func(t *testing.T) {
		f := setup(t)

		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(model.BookingDetail{}, nil)

		_, err := f.svc.Confirm(clientCtx(), "missing")
		assert.ErrorIs(t, err, model.ErrBookingNotFound)
	})
}

func TestBookingService_Modify(t *testing.T) {
	request := dto.ModifyBookingRequest{CheckIn: gDto.FormatDate(day(20)), CheckOut: gDto.FormatDate(day(23))}

	t.Run("keeps the current room when free", func(t *testing.T) {
		f := setup(t)

		before := newDetail(model.StatusPending)
		after := before
		after.CheckInDate, after.CheckOutDate = day(20), day(23)

		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(before, nil)
		f.availability.EXPECT().EnsureRoomFree(gomock.Any(), gomock.Any(), "room-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ string, query availabilityModel.Query) (roomModel.Room, error) {
				assert.Equal(t, roomModel.TypeDouble, query.RoomType)
				assert.Equal(t, "booking-1", query.ExcludeBookingID)

				return roomModel.Room{ID: "room-1"}, nil
			})
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "room-1", req[model.FieldRoomID])

				return nil
			})
		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(after, nil)
		expectNotify(t, f, notificationModel.TemplateBookingModified)

		res, err := f.svc.Modify(clientCtx(), request, "booking-1")
		require.NoError(t, err)
		assert.Equal(t, 3, res.Nights)
	})

	t.Run("moves a confirmed booking and releases the old room", func(t *testing.T) {
		f := setup(t)

		before := newDetail(model.StatusConfirmed)
		after := before
		after.RoomID, after.RoomNumber = "room-2", 102

		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(before, nil)
		f.availability.EXPECT().EnsureRoomFree(gomock.Any(), gomock.Any(), "room-1", gomock.Any()).
			Return(roomModel.Room{}, availabilityModel.ErrRoomNotAvailable)
		f.availability.EXPECT().SelectRoom(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "room-2"}, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.availability.EXPECT().SyncRoomStatus(gomock.Any(), gomock.Any(), "room-2").Return(roomModel.Room{}, nil)
		f.availability.EXPECT().SyncRoomStatus(gomock.Any(), gomock.Any(), "room-1").Return(roomModel.Room{}, nil)
		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(after, nil)
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, n notificationModel.Notification) {
				assert.Equal(t, "101", n.Data["old_room_number"])
				assert.Equal(t, "102", n.Data["room_number"])
			})

		res, err := f.svc.Modify(clientCtx(), request, "booking-1")
		require.NoError(t, err)
		assert.Equal(t, 102, res.RoomNumber)
	})

	t.Run("no room for the new dates", func(t *testing.T) {
		f := setup(t)

		req := request
		req.RoomType = roomModel.TypeSuite

		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(newDetail(model.StatusPending), nil)
		f.availability.EXPECT().SelectRoom(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(roomModel.Room{}, availabilityModel.ErrRoomNotAvailable)

		_, err := f.svc.Modify(clientCtx(), req, "booking-1")
		assert.ErrorIs(t, err, model.ErrRoomNotAvailableForDates)
	})

	t.Run("in-stay booking cannot change", func(t *testing.T) {
		f := setup(t)

		detail := withRecord(newDetail(model.StatusConfirmed), checkinModel.StatusCompleted, checkinModel.StatusPending)
		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(detail, nil)

		_, err := f.svc.Modify(clientCtx(), request, "booking-1")
		assert.ErrorIs(t, err, model.ErrInvalidBookingModification)
	})
}

func TestBookingService_Cancel(t *testing.T) {
	t.Run("confirmed booking releases room", func(t *testing.T) {
		f := setup(t)

		current := withRecord(newDetail(model.StatusConfirmed), checkinModel.StatusPending, checkinModel.StatusPending)
		cancelled := withRecord(newDetail(model.StatusCancelled), checkinModel.StatusCanceled, checkinModel.StatusCanceled)
		cancelled.CancelledAt = shared.Ptr(timezone.Now())

		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(current, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusCancelled, req[model.FieldStatus])
				assert.NotNil(t, req[model.FieldCancelledAt])

				return nil
			})
		f.checkinRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, checkinModel.StatusCanceled, req[checkinModel.FieldCheckInStatus])

				return nil
			})
		f.availability.EXPECT().SyncRoomStatus(gomock.Any(), gomock.Any(), "room-1").
			Return(roomModel.Room{Status: roomModel.StatusAvailable}, nil)
		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(cancelled, nil)
		expectNotify(t, f, notificationModel.TemplateBookingCancelled)

		res, err := f.svc.Cancel(clientCtx(), "booking-1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, res.Status)
		assert.NotNil(t, res.CancelledAt)
	})

	t.Run("pending booking leaves room alone", func(t *testing.T) {
		f := setup(t)

		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(newDetail(model.StatusPending), nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(newDetail(model.StatusCancelled), nil)
		expectNotify(t, f, notificationModel.TemplateBookingCancelled)

		_, err := f.svc.Cancel(clientCtx(), "booking-1")
		require.NoError(t, err)
	})

	tests := []struct {
		name    string
		detail  model.BookingDetail
		ctx     context.Context
		wantErr error
	}{
		{name: "already cancelled", detail: newDetail(model.StatusCancelled), ctx: clientCtx(), wantErr: model.ErrAlreadyCanceled},
		{name: "completed", detail: newDetail(model.StatusCompleted), ctx: staffCtx(), wantErr: model.ErrInvalidBookingStatus},
		{name: "no show", detail: newDetail(model.StatusNoShow), ctx: staffCtx(), wantErr: model.ErrInvalidBookingStatus},
		{
			name:    "in stay",
			detail:  withRecord(newDetail(model.StatusConfirmed), checkinModel.StatusCompleted, checkinModel.StatusPending),
			ctx:     clientCtx(),
			wantErr: model.ErrInvalidBookingStatus,
		},
		{
			name:    "other client",
			detail:  func() model.BookingDetail { d := newDetail(model.StatusPending); d.ClientID = "client-2"; return d }(),
			ctx:     clientCtx(),
			wantErr: model.ErrUnauthorizedCancellation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)

			f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(tt.detail, nil)

			_, err := f.svc.Cancel(tt.ctx, "booking-1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	t.Run("clients only see their own bookings", func(t *testing.T) {
		f := setup(t)

		f.detailRepo.EXPECT().Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "bookings.client_id = :client_id")
				assert.Equal(t, "client-1", args["client_id"])

				return 1, nil
			})
		f.detailRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.BookingDetail, error) {
				assert.Equal(t, "bookings.check_in_date", params.SortBy)

				return []model.BookingDetail{newDetail(model.StatusPending)}, nil
			})

		res, err := f.svc.GetAll(clientCtx(), gDto.QueryParams{Page: 1, Limit: 10, SortBy: "1; DROP TABLE bookings"}, dto.BookingFilter{ClientID: "client-2"})
		require.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, 1, res.Pagination.Total)
	})

	t.Run("malformed date filter", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.GetAll(staffCtx(), gDto.QueryParams{}, dto.BookingFilter{CheckInDate: "2025-13-01"})
		assert.Error(t, err)
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Run("staff reads any booking", func(t *testing.T) {
		f := setup(t)

		f.detailRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(newDetail(model.StatusPending), nil)

		res, err := f.svc.Get(staffCtx(), "booking-1")
		require.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
	})

	t.Run("other client is denied", func(t *testing.T) {
		f := setup(t)

		detail := newDetail(model.StatusPending)
		detail.ClientID = "client-2"

		f.detailRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(detail, nil)

		_, err := f.svc.Get(clientCtx(), "booking-1")
		assert.ErrorIs(t, err, model.ErrPermissionDenied)
	})
}

func TestBookingService_Delete(t *testing.T) {
	f := setup(t)

	f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(newDetail(model.StatusConfirmed), nil)
	f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.availability.EXPECT().SyncRoomStatus(gomock.Any(), gomock.Any(), "room-1").Return(roomModel.Room{}, nil)

	require.NoError(t, f.svc.Delete(staffCtx(), "booking-1"))
}

func TestBookingService_Expire(t *testing.T) {
	now := timezone.Now()

	t.Run("pending booking within lookahead", func(t *testing.T) {
		f := setup(t)

		detail := newDetail(model.StatusPending)
		detail.CheckInDate = day(1)

		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(detail, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(newDetail(model.StatusCancelled), nil)
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, n notificationModel.Notification) {
				assert.Equal(t, notificationModel.TemplateBookingCancelled, n.Template)
				assert.NotEmpty(t, n.Data["reason"])
			})

		expired, err := f.svc.Expire(context.Background(), "booking-1", timezone.At(day(1), 14))
		require.NoError(t, err)
		assert.True(t, expired)
	})

	t.Run("booking further out is untouched", func(t *testing.T) {
		f := setup(t)

		detail := newDetail(model.StatusPending)
		detail.CheckInDate = day(2)

		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(detail, nil)

		expired, err := f.svc.Expire(context.Background(), "booking-1", now.Add(24*time.Hour))
		require.NoError(t, err)
		assert.False(t, expired)
	})

	t.Run("confirmed meanwhile", func(t *testing.T) {
		f := setup(t)

		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(newDetail(model.StatusConfirmed), nil)

		expired, err := f.svc.Expire(context.Background(), "booking-1", now.AddDate(1, 0, 0))
		require.NoError(t, err)
		assert.False(t, expired)
	})
}

func TestBookingService_MarkNoShow(t *testing.T) {
	t.Run("confirmed booking never checked in", func(t *testing.T) {
		f := setup(t)

		detail := withRecord(newDetail(model.StatusConfirmed), checkinModel.StatusPending, checkinModel.StatusPending)
		detail.CheckInDate, detail.CheckOutDate = day(-2), day(1)

		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(detail, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusNoShow, req[model.FieldStatus])
				assert.NotContains(t, req, model.FieldCancelledAt)

				return nil
			})
		f.checkinRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.availability.EXPECT().SyncRoomStatus(gomock.Any(), gomock.Any(), "room-1").Return(roomModel.Room{}, nil)
		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(newDetail(model.StatusNoShow), nil)
		expectNotify(t, f, notificationModel.TemplateBookingNoShow)

		marked, err := f.svc.MarkNoShow(context.Background(), "booking-1", timezone.Now().Add(-24*time.Hour))
		require.NoError(t, err)
		assert.True(t, marked)
	})

	t.Run("guest checked in", func(t *testing.T) {
		f := setup(t)

		detail := withRecord(newDetail(model.StatusConfirmed), checkinModel.StatusCompleted, checkinModel.StatusPending)
		detail.CheckInDate = day(-2)

		f.detailRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(detail, nil)

		marked, err := f.svc.MarkNoShow(context.Background(), "booking-1", timezone.Now().Add(-24*time.Hour))
		require.NoError(t, err)
		assert.False(t, marked)
	})
}
