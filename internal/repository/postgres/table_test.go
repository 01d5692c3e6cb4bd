package postgres

import (
	"errors"
	"fmt"
	"testing"

	"fidelite-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	dup := translate(&pgconn.PgError{Code: "23505", Detail: "Key (departement_code)=(59) already exists."})
	assert.ErrorIs(t, dup, domain.ErrAlreadyExists)
	assert.Contains(t, dup.Error(), "(59)")

	for _, code := range []string{"23503", "23502", "23514", "22001", "22003"} {
		err := translate(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: code, Message: "violation"}))
		assert.ErrorIs(t, err, domain.ErrConstraint, code)
	}

	other := errors.New("connection reset")
	assert.Same(t, other, translate(other))
	assert.NotErrorIs(t, translate(&pgconn.PgError{Code: "40001"}), domain.ErrConstraint)
}

func TestSetSkipsAbsentFields(t *testing.T) {
	var out []Assignment
	out = Set(out, "a", domain.Optional[string]{})
	out = Set(out, "b", domain.Some("x"))
	out = Set(out, "c", domain.Null[int64]())

	assert.Equal(t, []Assignment{
		{Column: "b", Value: "x"},
		{Column: "c", Value: nil},
	}, out)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$1, $2, $3", placeholders(1, 3))
	assert.Equal(t, "$4", placeholders(4, 1))
	assert.Equal(t, "", placeholders(1, 0))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"t_clients"`, quote("t_clients"))
}
