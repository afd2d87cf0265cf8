package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	availabilityModel "hotel/internal/domains/availability/model"
	availabilityService "hotel/internal/domains/availability/service"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	checkinModel "hotel/internal/domains/checkin/model"
	checkinDto "hotel/internal/domains/checkin/model/dto"
	checkinRepo "hotel/internal/domains/checkin/repository"
	notificationModel "hotel/internal/domains/notification/model"
	notificationService "hotel/internal/domains/notification/service"
	roomService "hotel/internal/domains/room/service"
	userModel "hotel/internal/domains/user/model"
	userRepo "hotel/internal/domains/user/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	reasonExpired = "it was not confirmed before check-in"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Confirm(ctx context.Context, id string) (dto.BookingResponse, error)
	Modify(ctx context.Context, req dto.ModifyBookingRequest, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.BookingFilter) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error

	// Expire cancels a pending booking whose check-in instant is at or before deadline.
	// It reports false when the booking no longer qualifies.
	Expire(ctx context.Context, id string, deadline time.Time) (bool, error)
	// MarkNoShow closes a confirmed booking never checked in whose check-in instant is before cutoff.
	MarkNoShow(ctx context.Context, id string, cutoff time.Time) (bool, error)
}

type serviceImpl struct {
	transactor   postgres.Transactor
	repo         repository.Booking
	detailRepo   repository.BookingDetail
	checkinRepo  checkinRepo.CheckInCheckOut
	userRepo     userRepo.User
	availability availabilityService.Availability
	notifier     notificationService.Notifier
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	transactor postgres.Transactor,
	repo repository.Booking,
	detailRepo repository.BookingDetail,
	checkinRepo checkinRepo.CheckInCheckOut,
	userRepo userRepo.User,
	availability availabilityService.Availability,
	notifier notificationService.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		transactor:   transactor,
		repo:         repo,
		detailRepo:   detailRepo,
		checkinRepo:  checkinRepo,
		userRepo:     userRepo,
		availability: availability,
		notifier:     notifier,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, err := req.ToQuery()
	if err != nil {
		return res, err
	}

	caller := shared.CallerFrom(ctx)

	clientID, err := s.resolveClient(ctx, caller, req.ClientID)
	if err != nil {
		return res, err
	}

	var detail model.BookingDetail

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		room, err := s.availability.SelectRoom(ctx, tx, query)
		if err != nil {
			return err //nolint:wrapcheck
		}

		booking := dto.NewBooking(clientID, room.ID, query, caller.Email)

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return mapOverlap(err, availabilityModel.ErrRoomNotAvailable)
		}

		detail, err = s.reload(ctx, tx, booking.ID)

		return err
	})
	if err != nil {
		log.Error().Err(err).Str("client_id", clientID).Msg("failed to create booking")

		return res, err
	}

	log.Info().Str("booking_id", detail.ID).Int("room", detail.RoomNumber).Str("by", caller.Email).Msg("booking created")

	s.notify(ctx, notificationModel.TemplateBookingCreated, detail, dto.NotificationData(detail))

	res.FromModel(detail)

	return res, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := shared.CallerFrom(ctx)

	var detail model.BookingDetail

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		current, err := s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		if current.Status != model.StatusPending {
			return model.ErrInvalidBookingConfirmation
		}

		if !caller.Owns(current.ClientID) {
			return model.ErrUnauthorizedBooking
		}

		query := availabilityModel.Query{CheckIn: current.CheckInDate, CheckOut: current.CheckOutDate, ExcludeBookingID: id}
		if _, err := s.availability.EnsureRoomFree(ctx, tx, current.RoomID, query); err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.repo.UpdateTx(ctx, tx, shared.TransformFields(dto.StatusUpdate{Status: model.StatusConfirmed}, caller.Email), byID(id)); err != nil {
			return fmt.Errorf("failed to confirm booking: %w", err)
		}

		record := checkinModel.New(uuid.NewString(), id, timezone.Now(), caller.Email)
		if err := s.checkinRepo.InsertTx(ctx, tx, record); err != nil {
			return fmt.Errorf("failed to create check-in record: %w", err)
		}

		if _, err := s.availability.SyncRoomStatus(ctx, tx, current.RoomID); err != nil {
			return err //nolint:wrapcheck
		}

		detail, err = s.reload(ctx, tx, id)

		return err
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("booking_id", id).Int("room", detail.RoomNumber).Str("by", caller.Email).Msg("booking confirmed")

	s.roomChanged(ctx, detail.RoomID)
	s.notify(ctx, notificationModel.TemplateBookingConfirmed, detail, dto.NotificationData(detail))

	res.FromModel(detail)

	return res, nil
}

func (s *serviceImpl) Modify(ctx context.Context, req dto.ModifyBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Modify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, err := req.ToQuery()
	if err != nil {
		return res, err
	}

	caller := shared.CallerFrom(ctx)

	var before, after model.BookingDetail

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		before, err = s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		if !caller.Owns(before.ClientID) {
			return model.ErrPermissionDenied
		}

		if !slices.Contains(model.ActiveStatuses, before.Status) || before.InStay(checkinModel.StatusCompleted) {
			return model.ErrInvalidBookingModification
		}

		query.ExcludeBookingID = id
		if query.RoomType == constant.Empty {
			query.RoomType = before.RoomType
		}

		roomID, err := s.pickRoom(ctx, tx, before, query)
		if err != nil {
			return err
		}

		update := dto.StayUpdate{RoomID: roomID, CheckInDate: query.CheckIn, CheckOutDate: query.CheckOut}
		if err := s.repo.UpdateTx(ctx, tx, shared.TransformFields(update, caller.Email), byID(id)); err != nil {
			return mapOverlap(err, model.ErrRoomNotAvailableForDates)
		}

		if before.Status == model.StatusConfirmed {
			if err := s.syncRooms(ctx, tx, roomID, before.RoomID); err != nil {
				return err
			}
		}

		after, err = s.reload(ctx, tx, id)

		return err
	})
	if err != nil {
		return res, err
	}

	log.Info().
		Str("booking_id", id).
		Int("from_room", before.RoomNumber).
		Int("to_room", after.RoomNumber).
		Str("by", caller.Email).
		Msg("booking modified")

	if before.Status == model.StatusConfirmed {
		s.roomChanged(ctx, before.RoomID, after.RoomID)
	}

	s.notify(ctx, notificationModel.TemplateBookingModified, after, dto.ModifiedNotificationData(before, after))

	res.FromModel(after)

	return res, nil
}

// pickRoom keeps the booked room when it still matches query, otherwise selects a replacement.
func (s *serviceImpl) pickRoom(ctx context.Context, tx *sqlx.Tx, current model.BookingDetail, query availabilityModel.Query) (string, error) {
	if query.RoomType == current.RoomType {
		_, err := s.availability.EnsureRoomFree(ctx, tx, current.RoomID, query)
		if err == nil {
			return current.RoomID, nil
		}

		if !errors.Is(err, availabilityModel.ErrRoomNotAvailable) {
			return constant.Empty, err //nolint:wrapcheck
		}
	}

	room, err := s.availability.SelectRoom(ctx, tx, query)
	if errors.Is(err, availabilityModel.ErrRoomNotAvailable) {
		return constant.Empty, model.ErrRoomNotAvailableForDates
	}

	if err != nil {
		return constant.Empty, err //nolint:wrapcheck
	}

	return room.ID, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := shared.CallerFrom(ctx)

	var detail model.BookingDetail

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		current, err := s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		if !caller.Owns(current.ClientID) {
			return model.ErrUnauthorizedCancellation
		}

		switch {
		case current.Status == model.StatusCancelled:
			return model.ErrAlreadyCanceled
		case !slices.Contains(model.ActiveStatuses, current.Status), current.InStay(checkinModel.StatusCompleted):
			return model.ErrInvalidBookingStatus
		}

		detail, err = s.close(ctx, tx, current, model.StatusCancelled, caller.Email)

		return err
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("booking_id", id).Str("by", caller.Email).Msg("booking cancelled")

	s.roomChanged(ctx, detail.RoomID)
	s.notify(ctx, notificationModel.TemplateBookingCancelled, detail, dto.NotificationData(detail))

	res.FromModel(detail)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.BookingFilter) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := shared.CallerFrom(ctx)
	if !caller.Privileged() {
		filter.ClientID = caller.ID
	}

	group, err := filter.ToFilterGroup()
	if err != nil {
		return res, err
	}

	params.AllowSort(model.FieldCheckInDate, gDto.SortDirAsc, dto.SortColumns...)
	params.SortBy = model.TableName + "." + params.SortBy

	total, err := s.detailRepo.Count(ctx, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	details, err := s.detailRepo.GetAll(ctx, params, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(details, total, params)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	detail, err := s.detailRepo.Get(ctx, byID(id))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, model.ErrBookingNotFound
	}

	if !shared.CallerFrom(ctx).Owns(detail.ClientID) {
		return res, model.ErrPermissionDenied
	}

	res.FromModel(detail)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var current model.BookingDetail

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		current, err = s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := s.repo.DeleteTx(ctx, tx, byID(id)); err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}

		if current.Status != model.StatusConfirmed {
			return nil
		}

		_, err := s.availability.SyncRoomStatus(ctx, tx, current.RoomID)

		return err //nolint:wrapcheck
	})
	if err != nil {
		return err
	}

	log.Info().Str("booking_id", id).Str("status", current.Status).Str("by", shared.Actor(ctx)).Msg("booking deleted")

	s.roomChanged(ctx, current.RoomID)

	return nil
}

func (s *serviceImpl) Expire(ctx context.Context, id string, deadline time.Time) (expired bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Expire")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var detail model.BookingDetail

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		current, err := s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		if current.Status != model.StatusPending || current.CheckInAt(s.cfg.Booking.CheckInHour).After(deadline) {
			return nil
		}

		detail, err = s.close(ctx, tx, current, model.StatusCancelled, constant.ContextSystem)
		expired = err == nil

		return err
	})
	if err != nil || !expired {
		return false, err
	}

	log.Info().Str("booking_id", id).Msg("pending booking expired")

	s.roomChanged(ctx, detail.RoomID)

	data := dto.NotificationData(detail)
	data["reason"] = reasonExpired

	s.notify(ctx, notificationModel.TemplateBookingCancelled, detail, data)

	return true, nil
}

func (s *serviceImpl) MarkNoShow(ctx context.Context, id string, cutoff time.Time) (marked bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.MarkNoShow")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var detail model.BookingDetail

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		current, err := s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		checkedIn := current.CheckInStatus != nil && *current.CheckInStatus == checkinModel.StatusCompleted
		if current.Status != model.StatusConfirmed || checkedIn || !current.CheckInAt(s.cfg.Booking.CheckInHour).Before(cutoff) {
			return nil
		}

		detail, err = s.close(ctx, tx, current, model.StatusNoShow, constant.ContextSystem)
		marked = err == nil

		return err
	})
	if err != nil || !marked {
		return false, err
	}

	log.Info().Str("booking_id", id).Msg("booking marked as no-show")

	s.roomChanged(ctx, detail.RoomID)
	s.notify(ctx, notificationModel.TemplateBookingNoShow, detail, dto.NotificationData(detail))

	return true, nil
}

// close ends an active booking without a stay: the booking takes status, its check-in
// record is canceled and the room status recomputed.
func (s *serviceImpl) close(ctx context.Context, tx *sqlx.Tx, current model.BookingDetail, status, actor string) (model.BookingDetail, error) {
	var update any = dto.StatusUpdate{Status: status}
	if status == model.StatusCancelled {
		update = dto.CancelUpdate{Status: status, CancelledAt: shared.Ptr(timezone.Now())}
	}

	if err := s.repo.UpdateTx(ctx, tx, shared.TransformFields(update, actor), byID(current.ID)); err != nil {
		return current, fmt.Errorf("failed to update booking status: %w", err)
	}

	if current.CheckInStatus != nil {
		filter := shared.FilterByID(current.ID, checkinModel.FieldBookingID, checkinModel.TableName)
		if err := s.checkinRepo.UpdateTx(ctx, tx, shared.TransformFields(checkinDto.NewCancelUpdate(), actor), filter); err != nil {
			return current, fmt.Errorf("failed to cancel check-in record: %w", err)
		}
	}

	if current.Status == model.StatusConfirmed {
		if _, err := s.availability.SyncRoomStatus(ctx, tx, current.RoomID); err != nil {
			return current, err //nolint:wrapcheck
		}
	}

	return s.reload(ctx, tx, current.ID)
}

// resolveClient returns the client a new booking belongs to. Only privileged callers may
// book on behalf of someone else.
func (s *serviceImpl) resolveClient(ctx context.Context, caller shared.Caller, requested string) (string, error) {
	if requested == constant.Empty || requested == caller.ID {
		return caller.ID, nil
	}

	if !caller.Privileged() {
		return constant.Empty, model.ErrPermissionDenied
	}

	exist, err := s.userRepo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Table: userModel.TableName, Field: userModel.FieldID, Value: requested, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Table: userModel.TableName, Field: userModel.FieldActive, Value: true, Operator: gDto.FilterOperatorEq},
		},
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to check client: %w", err)
	}

	if !exist {
		return constant.Empty, model.ErrClientNotFound
	}

	return requested, nil
}

// lock loads booking id with its row held until the transaction ends.
func (s *serviceImpl) lock(ctx context.Context, tx *sqlx.Tx, id string) (model.BookingDetail, error) {
	detail, err := s.detailRepo.GetTx(ctx, tx, byID(id), true)
	if err != nil {
		return detail, fmt.Errorf("failed to lock booking: %w", err)
	}

	if detail.ID == constant.Empty {
		return detail, model.ErrBookingNotFound
	}

	return detail, nil
}

func (s *serviceImpl) reload(ctx context.Context, tx *sqlx.Tx, id string) (model.BookingDetail, error) {
	detail, err := s.detailRepo.GetTx(ctx, tx, byID(id), false)
	if err != nil {
		return detail, fmt.Errorf("failed to reload booking: %w", err)
	}

	return detail, nil
}

func (s *serviceImpl) syncRooms(ctx context.Context, tx *sqlx.Tx, roomIDs ...string) error {
	for _, roomID := range slices.Compact(roomIDs) {
		if _, err := s.availability.SyncRoomStatus(ctx, tx, roomID); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) roomChanged(ctx context.Context, roomIDs ...string) {
	go roomService.InvalidateCaches(context.WithoutCancel(ctx), s.cache, slices.Compact(roomIDs)...)
}

func (s *serviceImpl) notify(ctx context.Context, template string, detail model.BookingDetail, data map[string]string) {
	s.notifier.Notify(ctx, notificationModel.Notification{
		Template:  template,
		Recipient: detail.ClientEmail,
		Data:      data,
	})
}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

// mapOverlap turns a storage level overlap or uniqueness violation into conflict.
func mapOverlap(err, conflict error) error {
	if shared.IsPqError(err, constant.PqErrorCodeExclusionViolation, constant.PqErrorCodeUniqueViolation) {
		return conflict
	}

	return fmt.Errorf("failed to write booking: %w", err)
}
