package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/checkin/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type CheckInCheckOut interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CheckInCheckOut, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.CheckInCheckOut) error
	GetTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, lock bool, columns ...string) (model.CheckInCheckOut, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CheckInCheckOut]
}

func New(db *postgres.Connection, otel otel.Otel) CheckInCheckOut {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CheckInCheckOut](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
