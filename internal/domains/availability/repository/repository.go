package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/availability/model"
	bookingModel "hotel/internal/domains/booking/model"
	checkinModel "hotel/internal/domains/checkin/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"
	"hotel/shared/logger"

	"github.com/jmoiron/sqlx"
)

const (
	roomColumns = "rooms.id, rooms.number, rooms.type, rooms.status, rooms.price, rooms.description, rooms.image_url, " +
		"rooms.created_at, rooms.modified_at, rooms.created_by, rooms.modified_by"

	// overlapClause binds (pending, confirmed, check_out, check_in) and matches active bookings
	// intersecting [check_in, check_out).
	overlapClause = "bookings.status IN (?, ?) AND bookings.check_in_date < ? AND bookings.check_out_date > ?"

	queryOccupancy = `SELECT
	COALESCE(BOOL_OR(check_in_check_outs.check_in_status = $2 AND check_in_check_outs.check_out_status <> $2), FALSE) AS in_stay,
	COALESCE(BOOL_OR(bookings.check_out_date > $3), FALSE) AS booked
FROM bookings
LEFT JOIN check_in_check_outs ON check_in_check_outs.booking_id = bookings.id
WHERE bookings.room_id = $1 AND bookings.status = $4`
)

type queryer interface {
	sqlx.QueryerContext
	Rebind(query string) string
}

type Availability interface {
	ListAvailable(ctx context.Context, query model.Query) ([]roomModel.Room, error)
	ListAvailableTx(ctx context.Context, tx *sqlx.Tx, query model.Query) ([]roomModel.Room, error)
	HasOverlap(ctx context.Context, roomID string, query model.Query) (bool, error)
	HasOverlapTx(ctx context.Context, tx *sqlx.Tx, roomID string, query model.Query) (bool, error)
	OccupancyTx(ctx context.Context, tx *sqlx.Tx, roomID string, today time.Time) (model.Occupancy, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Availability {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func overlapArgs(query model.Query) []any {
	return []any{bookingModel.StatusPending, bookingModel.StatusConfirmed, query.CheckOut, query.CheckIn}
}

func buildAvailableQuery(query model.Query) (string, []any) {
	var sb strings.Builder

	args := []any{roomModel.StatusAvailable}

	sb.WriteString("SELECT " + roomColumns + " FROM rooms WHERE rooms.status = ?")

	if query.RoomType != constant.Empty {
		sb.WriteString(" AND rooms.type = ?")

		args = append(args, query.RoomType)
	}

	if query.MaxPrice != nil {
		sb.WriteString(" AND rooms.price <= ?")

		args = append(args, *query.MaxPrice)
	}

	sb.WriteString(" AND NOT EXISTS (SELECT 1 FROM bookings WHERE bookings.room_id = rooms.id AND " + overlapClause)

	args = append(args, overlapArgs(query)...)

	if query.ExcludeBookingID != constant.Empty {
		sb.WriteString(" AND bookings.id <> ?")

		args = append(args, query.ExcludeBookingID)
	}

	sb.WriteString(") ORDER BY rooms.number")

	return sb.String(), args
}

func buildOverlapQuery(roomID string, query model.Query) (string, []any) {
	sqlQuery := "SELECT EXISTS(SELECT 1 FROM bookings WHERE bookings.room_id = ? AND " + overlapClause
	args := append([]any{roomID}, overlapArgs(query)...)

	if query.ExcludeBookingID != constant.Empty {
		sqlQuery += " AND bookings.id <> ?"

		args = append(args, query.ExcludeBookingID)
	}

	return sqlQuery + ")", args
}

func (repo *repositoryImpl) listAvailable(ctx context.Context, db queryer, query model.Query) ([]roomModel.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.listAvailable")
	defer scope.End()

	sqlQuery, args := buildAvailableQuery(query)
	sqlQuery = db.Rebind(sqlQuery)

	scope.SetAttribute(constant.OtelQueryAttributeKey, sqlQuery)

	rooms := []roomModel.Room{}
	if err := sqlx.SelectContext(ctx, db, &rooms, sqlQuery, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}

	return rooms, nil
}

// ListAvailable reads from the replica and orders rooms by number.
func (repo *repositoryImpl) ListAvailable(ctx context.Context, query model.Query) ([]roomModel.Room, error) {
	return repo.listAvailable(ctx, repo.db.Read, query)
}

func (repo *repositoryImpl) ListAvailableTx(ctx context.Context, tx *sqlx.Tx, query model.Query) ([]roomModel.Room, error) {
	return repo.listAvailable(ctx, tx, query)
}

func (repo *repositoryImpl) hasOverlap(ctx context.Context, db queryer, roomID string, query model.Query) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.hasOverlap")
	defer scope.End()

	sqlQuery, args := buildOverlapQuery(roomID, query)
	sqlQuery = db.Rebind(sqlQuery)

	scope.SetAttribute(constant.OtelQueryAttributeKey, sqlQuery)

	var exists bool
	if err := sqlx.GetContext(ctx, db, &exists, sqlQuery, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check booking overlap: %w", err)
	}

	return exists, nil
}

func (repo *repositoryImpl) HasOverlap(ctx context.Context, roomID string, query model.Query) (bool, error) {
	return repo.hasOverlap(ctx, repo.db.Read, roomID, query)
}

func (repo *repositoryImpl) HasOverlapTx(ctx context.Context, tx *sqlx.Tx, roomID string, query model.Query) (bool, error) {
	return repo.hasOverlap(ctx, tx, roomID, query)
}

// OccupancyTx reports whether a confirmed booking of roomID is in-stay, and whether one
// still holds the room after today.
func (repo *repositoryImpl) OccupancyTx(ctx context.Context, tx *sqlx.Tx, roomID string, today time.Time) (model.Occupancy, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.OccupancyTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryOccupancy)

	var occupancy model.Occupancy
	if err := tx.GetContext(ctx, &occupancy, queryOccupancy, roomID, checkinModel.StatusCompleted, today, bookingModel.StatusConfirmed); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return occupancy, fmt.Errorf("failed to read room occupancy: %w", err)
	}

	return occupancy, nil
}
