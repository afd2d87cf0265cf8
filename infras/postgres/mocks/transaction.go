package mocks

import (
	"context"

	"hotel/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type transactor struct{}

// WithTransaction implements postgres.Transactor by running fn without a real transaction.
func (t *transactor) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTransactor() postgres.Transactor {
	return &transactor{}
}
