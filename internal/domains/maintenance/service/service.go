package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Maintenance=MockMaintenanceService

import (
	"context"
	"fmt"
	"slices"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	availabilityService "hotel/internal/domains/availability/service"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	checkinModel "hotel/internal/domains/checkin/model"
	checkinService "hotel/internal/domains/checkin/service"
	"hotel/internal/domains/maintenance/model"
	roomModel "hotel/internal/domains/room/model"
	roomService "hotel/internal/domains/room/service"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Maintenance runs the periodic booking sweeps. Every sweep takes now explicitly, handles
// each booking on its own and keeps going when one of them fails.
type Maintenance interface {
	ExpirePending(ctx context.Context, now time.Time) (model.Summary, error)
	MarkNoShows(ctx context.Context, now time.Time) (model.Summary, error)
	ReleaseCheckedOut(ctx context.Context, now time.Time) (model.Summary, error)
}

type serviceImpl struct {
	transactor   postgres.Transactor
	detailRepo   bookingRepo.BookingDetail
	booking      bookingService.Booking
	checkin      checkinService.CheckIn
	availability availabilityService.Availability
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	transactor postgres.Transactor,
	detailRepo bookingRepo.BookingDetail,
	booking bookingService.Booking,
	checkin checkinService.CheckIn,
	availability availabilityService.Availability,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Maintenance {
	return &serviceImpl{
		transactor:   transactor,
		detailRepo:   detailRepo,
		booking:      booking,
		checkin:      checkin,
		availability: availability,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) ExpirePending(ctx context.Context, now time.Time) (summary model.Summary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.ExpirePending")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	deadline := now.Add(time.Duration(s.cfg.Booking.ExpireLookaheadMin) * time.Minute)

	candidates, err := s.candidates(ctx,
		status(bookingModel.StatusPending),
		onOrBefore(bookingModel.FieldCheckInDate, deadline),
	)
	if err != nil {
		return summary, err
	}

	summary = s.sweep(ctx, model.JobExpirePending, candidates, func(ctx context.Context, id string) (bool, error) {
		return s.booking.Expire(ctx, id, deadline) //nolint:wrapcheck
	})

	return summary, nil
}

func (s *serviceImpl) MarkNoShows(ctx context.Context, now time.Time) (summary model.Summary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.MarkNoShows")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cutoff := now.Add(-time.Duration(s.cfg.Booking.NoShowGraceMin) * time.Minute)

	candidates, err := s.candidates(ctx,
		status(bookingModel.StatusConfirmed),
		onOrBefore(bookingModel.FieldCheckInDate, cutoff),
		gDto.Filter{Table: checkinModel.TableName, Field: checkinModel.FieldCheckInStatus, Value: checkinModel.StatusPending, Operator: gDto.FilterOperatorEq},
	)
	if err != nil {
		return summary, err
	}

	summary = s.sweep(ctx, model.JobMarkNoShows, candidates, func(ctx context.Context, id string) (bool, error) {
		return s.booking.MarkNoShow(ctx, id, cutoff) //nolint:wrapcheck
	})

	return summary, nil
}

// ReleaseCheckedOut checks out overdue stays, then releases rooms still held by completed
// bookings whose check-out date has passed.
func (s *serviceImpl) ReleaseCheckedOut(ctx context.Context, now time.Time) (summary model.Summary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.ReleaseCheckedOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	overdue, err := s.candidates(ctx,
		status(bookingModel.StatusConfirmed),
		onOrBefore(bookingModel.FieldCheckOutDate, now),
		gDto.Filter{Table: checkinModel.TableName, Field: checkinModel.FieldCheckInStatus, Value: checkinModel.StatusCompleted, Operator: gDto.FilterOperatorEq},
		gDto.Filter{Table: checkinModel.TableName, Field: checkinModel.FieldCheckOutStatus, Value: checkinModel.StatusPending, Operator: gDto.FilterOperatorEq},
	)
	if err != nil {
		return summary, err
	}

	summary = s.sweep(ctx, model.JobReleaseCheckedOut, overdue, func(ctx context.Context, id string) (bool, error) {
		return s.checkin.AutoCheckOut(ctx, id, now) //nolint:wrapcheck
	})

	held, err := s.candidates(ctx,
		status(bookingModel.StatusCompleted),
		onOrBefore(bookingModel.FieldCheckOutDate, now),
		gDto.Filter{
			Table:    roomModel.TableName,
			Field:    roomModel.FieldStatus,
			Value:    []string{roomModel.StatusBooked, roomModel.StatusOccupied},
			Operator: gDto.FilterOperatorIn,
		},
	)
	if err != nil {
		return summary, err
	}

	rooms := make([]string, 0, len(held))
	for _, detail := range held {
		rooms = append(rooms, detail.RoomID)
	}

	slices.Sort(rooms)

	for _, roomID := range slices.Compact(rooms) {
		released, err := s.release(ctx, roomID)
		if err != nil {
			log.Error().Err(err).Str("job", model.JobReleaseCheckedOut).Str("room_id", roomID).Msg("failed to release room")

			summary.Failed++

			continue
		}

		if released {
			summary.Processed++
		}
	}

	return summary, nil
}

func (s *serviceImpl) release(ctx context.Context, roomID string) (released bool, err error) {
	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		room, err := s.availability.SyncRoomStatus(ctx, tx, roomID)
		released = err == nil && room.Status == roomModel.StatusAvailable

		return err //nolint:wrapcheck
	})
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	if released {
		go roomService.InvalidateCaches(context.WithoutCancel(ctx), s.cache, roomID)
	}

	return released, nil
}

func (s *serviceImpl) candidates(ctx context.Context, filters ...gDto.Filter) ([]bookingModel.BookingDetail, error) {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	for _, filter := range filters {
		group.Filters = append(group.Filters, filter)
	}

	params := gDto.QueryParams{SortBy: bookingModel.TableName + "." + bookingModel.FieldCheckInDate, SortDir: gDto.SortDirAsc}

	details, err := s.detailRepo.GetAll(ctx, params, group)
	if err != nil {
		return nil, fmt.Errorf("failed to list sweep candidates: %w", err)
	}

	return details, nil
}

// sweep applies fn to every candidate, logging and counting failures instead of stopping.
func (s *serviceImpl) sweep(ctx context.Context, job string, candidates []bookingModel.BookingDetail, fn func(context.Context, string) (bool, error)) model.Summary {
	summary := model.Summary{Job: job}

	for _, candidate := range candidates {
		done, err := fn(ctx, candidate.ID)
		if err != nil {
			log.Error().Err(err).Str("job", job).Str("booking_id", candidate.ID).Msg("sweep failed for booking")

			summary.Failed++

			continue
		}

		if done {
			summary.Processed++
		}
	}

	log.Info().Str("job", job).Int("candidates", len(candidates)).Int("processed", summary.Processed).Int("failed", summary.Failed).Msg("sweep finished")

	return summary
}

func status(value string) gDto.Filter {
	return gDto.Filter{Table: bookingModel.TableName, Field: bookingModel.FieldStatus, Value: value, Operator: gDto.FilterOperatorEq}
}

// onOrBefore matches a DATE column against the calendar day of instant in the application timezone.
func onOrBefore(field string, instant time.Time) gDto.Filter {
	return gDto.Filter{
		Table:    bookingModel.TableName,
		Field:    field,
		ArgName:  field + "_until",
		Value:    timezone.Format(instant, constant.DateOnlyFormat),
		Operator: gDto.FilterOperatorLessEq,
	}
}
