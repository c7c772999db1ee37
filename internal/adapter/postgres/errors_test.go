package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/guidecr/placebot/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()
	assert.NoError(t, MapError(nil, "place", "№311"))
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	err := MapError(fmt.Errorf("query: %w", pgx.ErrNoRows), "place", "№311")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "№311")
}

func TestMapError_UniqueViolation(t *testing.T) {
	t.Parallel()

	err := MapError(&pgconn.PgError{Code: "23505"}, "place", "№311")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMapError_ContextCanceled(t *testing.T) {
	t.Parallel()

	err := MapError(context.Canceled, "place", "№311")

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestMapError_Passthrough(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := MapError(cause, "place", "№311")

	assert.ErrorIs(t, err, cause)
}
