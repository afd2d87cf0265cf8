package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const queryHasBookings = `SELECT EXISTS(SELECT 1 FROM bookings WHERE room_id = $1 AND status = ANY($2))`

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, lock bool, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	HasBookings(ctx context.Context, roomID string, statuses []string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// HasBookings reports whether any booking of roomID is in one of statuses.
func (repo *repositoryImpl) HasBookings(ctx context.Context, roomID string, statuses []string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.HasBookings")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryHasBookings)

	var exists bool
	if err := repo.db.Read.GetContext(ctx, &exists, queryHasBookings, roomID, pq.Array(statuses)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check room bookings: %w", err)
	}

	return exists, nil
}
