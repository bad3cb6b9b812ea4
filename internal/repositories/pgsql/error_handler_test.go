package pgsql

import (
	"errors"
	"testing"

	"github.com/fsdevblog/qrshort/internal/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestConvertErrorType(t *testing.T) {
	assert.NoError(t, convertErrorType(nil))
	assert.ErrorIs(t, convertErrorType(&pgconn.PgError{Code: uniqueViolationCode}), repositories.ErrDuplicateKey)
	assert.ErrorIs(t, convertErrorType(pgx.ErrNoRows), repositories.ErrNotFound)

	other := &pgconn.PgError{Code: "42P01"}
	err := convertErrorType(other)
	assert.ErrorIs(t, err, repositories.ErrUnknown)
	assert.ErrorIs(t, err, other)
	assert.ErrorIs(t, convertErrorType(errors.New("boom")), repositories.ErrUnknown)
}
