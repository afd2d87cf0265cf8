package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=CheckIn=MockCheckInService

import (
	"context"
	"fmt"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	availabilityService "hotel/internal/domains/availability/service"
	bookingModel "hotel/internal/domains/booking/model"
	bookingDto "hotel/internal/domains/booking/model/dto"
	bookingRepo "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/checkin/model"
	"hotel/internal/domains/checkin/model/dto"
	"hotel/internal/domains/checkin/repository"
	notificationModel "hotel/internal/domains/notification/model"
	notificationService "hotel/internal/domains/notification/service"
	roomService "hotel/internal/domains/room/service"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type CheckIn interface {
	CheckIn(ctx context.Context, bookingID string) (dto.RecordResponse, error)
	CheckOut(ctx context.Context, bookingID string) (dto.RecordResponse, error)
	Get(ctx context.Context, bookingID string) (dto.RecordResponse, error)

	// AutoCheckOut checks out an in-stay booking whose check-out instant is not after now.
	// It reports false when the booking does not qualify.
	AutoCheckOut(ctx context.Context, bookingID string, now time.Time) (bool, error)
}

type serviceImpl struct {
	transactor   postgres.Transactor
	repo         repository.CheckInCheckOut
	bookingRepo  bookingRepo.Booking
	detailRepo   bookingRepo.BookingDetail
	availability availabilityService.Availability
	notifier     notificationService.Notifier
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	transactor postgres.Transactor,
	repo repository.CheckInCheckOut,
	bookingRepo bookingRepo.Booking,
	detailRepo bookingRepo.BookingDetail,
	availability availabilityService.Availability,
	notifier notificationService.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) CheckIn {
	return &serviceImpl{
		transactor:   transactor,
		repo:         repo,
		bookingRepo:  bookingRepo,
		detailRepo:   detailRepo,
		availability: availability,
		notifier:     notifier,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) CheckIn(ctx context.Context, bookingID string) (res dto.RecordResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkin.CheckIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := shared.CallerFrom(ctx)

	var (
		detail bookingModel.BookingDetail
		record model.CheckInCheckOut
	)

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		detail, record, err = s.lock(ctx, tx, bookingID, caller)
		if err != nil {
			return err
		}

		switch {
		case record.CheckInStatus == model.StatusCompleted:
			return model.ErrAlreadyCheckedIn
		case detail.Status != bookingModel.StatusConfirmed:
			return bookingModel.ErrInvalidBookingStatus
		case s.cfg.Booking.EnforceCheckInDate && detail.CheckInAt(0).After(timezone.Now()):
			return model.ErrCheckInTooEarly
		}

		update := dto.CheckInUpdate{CheckInStatus: model.StatusCompleted, CheckInAt: shared.Ptr(timezone.Now())}
		if err := s.repo.UpdateTx(ctx, tx, shared.TransformFields(update, caller.Email), byID(record.ID)); err != nil {
			return fmt.Errorf("failed to check in: %w", err)
		}

		if _, err := s.availability.SyncRoomStatus(ctx, tx, detail.RoomID); err != nil {
			return err //nolint:wrapcheck
		}

		record, err = s.reload(ctx, tx, record.ID)

		return err
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("booking_id", bookingID).Int("room", detail.RoomNumber).Str("by", caller.Email).Msg("guest checked in")

	s.finish(ctx, notificationModel.TemplateCheckIn, detail, record, &res)

	return res, nil
}

func (s *serviceImpl) CheckOut(ctx context.Context, bookingID string) (res dto.RecordResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkin.CheckOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := shared.CallerFrom(ctx)

	var (
		detail bookingModel.BookingDetail
		record model.CheckInCheckOut
	)

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		detail, record, err = s.lock(ctx, tx, bookingID, caller)
		if err != nil {
			return err
		}

		switch {
		case record.CheckOutStatus == model.StatusCompleted:
			return model.ErrAlreadyCheckedOut
		case record.CheckInStatus != model.StatusCompleted:
			return model.ErrNotCheckedIn
		}

		record, err = s.checkOut(ctx, tx, detail, record, caller.Email)

		return err
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("booking_id", bookingID).Int("room", detail.RoomNumber).Str("by", caller.Email).Msg("guest checked out")

	detail.Status = bookingModel.StatusCompleted
	s.finish(ctx, notificationModel.TemplateCheckOut, detail, record, &res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, bookingID string) (res dto.RecordResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkin.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	detail, err := s.detailRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, bookingModel.ErrBookingNotFound
	}

	if !shared.CallerFrom(ctx).Owns(detail.ClientID) {
		return res, bookingModel.ErrPermissionDenied
	}

	record, err := s.repo.Get(ctx, byBooking(bookingID))
	if err != nil {
		return res, fmt.Errorf("failed to get check-in record: %w", err)
	}

	if record.ID == constant.Empty {
		return res, model.ErrRecordNotFound
	}

	res.FromModel(record)
	res.BookingStatus = detail.Status
	res.RoomNumber = detail.RoomNumber

	return res, nil
}

func (s *serviceImpl) AutoCheckOut(ctx context.Context, bookingID string, now time.Time) (done bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkin.AutoCheckOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	system := shared.Caller{Email: constant.ContextSystem, Role: constant.RoleAdmin}

	var (
		detail bookingModel.BookingDetail
		record model.CheckInCheckOut
	)

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		detail, record, err = s.lock(ctx, tx, bookingID, system)
		if err != nil {
			return err
		}

		if !detail.InStay(model.StatusCompleted) || detail.CheckOutAt(s.cfg.Booking.CheckOutHour).After(now) {
			return nil
		}

		record, err = s.checkOut(ctx, tx, detail, record, system.Email)
		done = err == nil

		return err
	})
	if err != nil || !done {
		return false, err
	}

	log.Info().Str("booking_id", bookingID).Int("room", detail.RoomNumber).Msg("guest checked out automatically")

	detail.Status = bookingModel.StatusCompleted
	s.finish(ctx, notificationModel.TemplateCheckOut, detail, record, &dto.RecordResponse{})

	return true, nil
}

// lock holds the booking row and its record for the rest of tx.
func (s *serviceImpl) lock(ctx context.Context, tx *sqlx.Tx, bookingID string, caller shared.Caller) (bookingModel.BookingDetail, model.CheckInCheckOut, error) {
	var record model.CheckInCheckOut

	detail, err := s.detailRepo.GetTx(ctx, tx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName), true)
	if err != nil {
		return detail, record, fmt.Errorf("failed to lock booking: %w", err)
	}

	if detail.ID == constant.Empty {
		return detail, record, bookingModel.ErrBookingNotFound
	}

	if !caller.Owns(detail.ClientID) {
		return detail, record, bookingModel.ErrPermissionDenied
	}

	record, err = s.repo.GetTx(ctx, tx, byBooking(bookingID), true)
	if err != nil {
		return detail, record, fmt.Errorf("failed to lock check-in record: %w", err)
	}

	if record.ID == constant.Empty {
		// Only confirmed bookings carry a record.
		return detail, record, bookingModel.ErrInvalidBookingStatus
	}

	return detail, record, nil
}

func (s *serviceImpl) checkOut(ctx context.Context, tx *sqlx.Tx, detail bookingModel.BookingDetail, record model.CheckInCheckOut, actor string) (model.CheckInCheckOut, error) {
	update := dto.CheckOutUpdate{CheckOutStatus: model.StatusCompleted, CheckOutAt: shared.Ptr(timezone.Now())}
	if err := s.repo.UpdateTx(ctx, tx, shared.TransformFields(update, actor), byID(record.ID)); err != nil {
		return record, fmt.Errorf("failed to check out: %w", err)
	}

	bookingFilter := shared.FilterByID(detail.ID, bookingModel.FieldID, bookingModel.TableName)
	if err := s.bookingRepo.UpdateTx(ctx, tx, shared.TransformFields(bookingDto.StatusUpdate{Status: bookingModel.StatusCompleted}, actor), bookingFilter); err != nil {
		return record, fmt.Errorf("failed to complete booking: %w", err)
	}

	if _, err := s.availability.SyncRoomStatus(ctx, tx, detail.RoomID); err != nil {
		return record, err //nolint:wrapcheck
	}

	return s.reload(ctx, tx, record.ID)
}

func (s *serviceImpl) reload(ctx context.Context, tx *sqlx.Tx, id string) (model.CheckInCheckOut, error) {
	record, err := s.repo.GetTx(ctx, tx, byID(id), false)
	if err != nil {
		return record, fmt.Errorf("failed to reload check-in record: %w", err)
	}

	return record, nil
}

// finish runs the after-commit steps shared by every transition.
func (s *serviceImpl) finish(ctx context.Context, template string, detail bookingModel.BookingDetail, record model.CheckInCheckOut, res *dto.RecordResponse) {
	go roomService.InvalidateCaches(context.WithoutCancel(ctx), s.cache, detail.RoomID)

	s.notifier.Notify(ctx, notificationModel.Notification{
		Template:  template,
		Recipient: detail.ClientEmail,
		Data:      bookingDto.NotificationData(detail),
	})

	res.FromModel(record)
	res.BookingStatus = detail.Status
	res.RoomNumber = detail.RoomNumber
}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func byBooking(bookingID string) gDto.FilterGroup {
	return shared.FilterByID(bookingID, model.FieldBookingID, model.TableName)
}
