package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Availability=MockAvailabilityService

import (
	"context"
	"errors"
	"fmt"

	"hotel/infras/otel"
	"hotel/internal/domains/availability/model"
	"hotel/internal/domains/availability/model/dto"
	"hotel/internal/domains/availability/repository"
	roomModel "hotel/internal/domains/room/model"
	roomDto "hotel/internal/domains/room/model/dto"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Availability interface {
	ListAvailable(ctx context.Context, query model.Query) (dto.AvailableRoomsResponse, error)
	SelectRoom(ctx context.Context, tx *sqlx.Tx, query model.Query) (roomModel.Room, error)
	EnsureRoomFree(ctx context.Context, tx *sqlx.Tx, roomID string, query model.Query) (roomModel.Room, error)
	CheckRoom(ctx context.Context, number int, query *model.Query) (roomDto.RoomResponse, error)
	SyncRoomStatus(ctx context.Context, tx *sqlx.Tx, roomID string) (roomModel.Room, error)
}

type serviceImpl struct {
	repo     repository.Availability
	roomRepo roomRepo.Room
	otel     otel.Otel
}

func New(repo repository.Availability, roomRepo roomRepo.Room, otel otel.Otel) Availability {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		otel:     otel,
	}
}

func (s *serviceImpl) ListAvailable(ctx context.Context, query model.Query) (res dto.AvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.ListAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = query.Validate(); err != nil {
		return res, err
	}

	rooms, err := s.repo.ListAvailable(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to list available rooms")

		return res, fmt.Errorf("failed to list available rooms: %w", err)
	}

	if len(rooms) == 0 {
		return res, model.ErrNoRoomsAvailable
	}

	res.FromModels(rooms, query)

	return res, nil
}

// SelectRoom locks and returns the lowest numbered room free for query. Candidates whose
// locked re-check fails are skipped.
func (s *serviceImpl) SelectRoom(ctx context.Context, tx *sqlx.Tx, query model.Query) (room roomModel.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.SelectRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = query.Validate(); err != nil {
		return room, err
	}

	candidates, err := s.repo.ListAvailableTx(ctx, tx, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to list candidate rooms")

		return room, fmt.Errorf("failed to list candidate rooms: %w", err)
	}

	for _, candidate := range candidates {
		room, err = s.lockFree(ctx, tx, candidate.ID, query, true)
		if err == nil {
			return room, nil
		}

		if !errors.Is(err, model.ErrRoomNotAvailable) {
			return room, err
		}

		log.Debug().Int("room", candidate.Number).Msg("candidate room taken concurrently, trying next")
	}

	return roomModel.Room{}, model.ErrRoomNotAvailable
}

// EnsureRoomFree locks roomID and fails with ErrRoomNotAvailable when it is under
// maintenance or another active booking overlaps query.
func (s *serviceImpl) EnsureRoomFree(ctx context.Context, tx *sqlx.Tx, roomID string, query model.Query) (room roomModel.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.EnsureRoomFree")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = query.Validate(); err != nil {
		return room, err
	}

	return s.lockFree(ctx, tx, roomID, query, false)
}

func (s *serviceImpl) lockFree(ctx context.Context, tx *sqlx.Tx, roomID string, query model.Query, requireAvailable bool) (roomModel.Room, error) {
	room, err := s.roomRepo.GetTx(ctx, tx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName), true)
	if err != nil {
		return room, fmt.Errorf("failed to lock room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, roomModel.ErrRoomNotFound
	}

	if room.Status == roomModel.StatusMaintenance || (requireAvailable && room.Status != roomModel.StatusAvailable) {
		return room, model.ErrRoomNotAvailable
	}

	overlap, err := s.repo.HasOverlapTx(ctx, tx, roomID, query)
	if err != nil {
		return room, fmt.Errorf("failed to re-check overlap: %w", err)
	}

	if overlap {
		return room, model.ErrRoomNotAvailable
	}

	return room, nil
}

func (s *serviceImpl) CheckRoom(ctx context.Context, number int, query *model.Query) (res roomDto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.CheckRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.roomRepo.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Table: roomModel.TableName, Field: roomModel.FieldNumber, Value: number, Operator: gDto.FilterOperatorEq},
		},
	})
	if err != nil {
		log.Error().Err(err).Int("number", number).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, roomModel.ErrRoomNotFound
	}

	if room.Status != roomModel.StatusAvailable {
		return res, model.ErrRoomNotAvailable
	}

	if query != nil {
		if err = query.Validate(); err != nil {
			return res, err
		}

		overlap, err := s.repo.HasOverlap(ctx, room.ID, *query)
		if err != nil {
			log.Error().Err(err).Int("number", number).Msg("failed to check overlap")

			return res, fmt.Errorf("failed to check overlap: %w", err)
		}

		if overlap {
			return res, model.ErrRoomNotAvailable
		}
	}

	res.FromModel(room)

	return res, nil
}

// SyncRoomStatus recomputes the status of roomID from the bookings visible in tx:
// OCCUPIED while a guest is in-stay, BOOKED while a confirmed booking still holds it,
// AVAILABLE otherwise. Rooms under maintenance are left alone.
func (s *serviceImpl) SyncRoomStatus(ctx context.Context, tx *sqlx.Tx, roomID string) (room roomModel.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.SyncRoomStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName)

	room, err = s.roomRepo.GetTx(ctx, tx, filter, true)
	if err != nil {
		return room, fmt.Errorf("failed to lock room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, roomModel.ErrRoomNotFound
	}

	if room.Status == roomModel.StatusMaintenance {
		return room, nil
	}

	occupancy, err := s.repo.OccupancyTx(ctx, tx, roomID, timezone.Today())
	if err != nil {
		return room, fmt.Errorf("failed to read room occupancy: %w", err)
	}

	status := roomModel.StatusAvailable

	switch {
	case occupancy.InStay:
		status = roomModel.StatusOccupied
	case occupancy.Booked:
		status = roomModel.StatusBooked
	}

	if status == room.Status {
		return room, nil
	}

	if err = s.roomRepo.UpdateTx(ctx, tx, shared.TransformFields(roomDto.StatusUpdate{Status: status}, shared.Actor(ctx)), filter); err != nil {
		return room, fmt.Errorf("failed to update room status: %w", err)
	}

	log.Info().Int("room", room.Number).Str("from", room.Status).Str("to", status).Msg("room status changed")

	room.Status = status

	return room, nil
}
