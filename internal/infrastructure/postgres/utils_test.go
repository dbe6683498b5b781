package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Compras-api/internal/domain"
)

func TestWriteError_TraduceCodigos(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}
	other := errors.New("conexión cerrada")

	assert.ErrorIs(t, writeError("insert supplier", unique), domain.ErrDuplicate)
	assert.ErrorIs(t, writeError("delete supplier", fk), domain.ErrConflict)

	err := writeError("update product", other)
	assert.ErrorIs(t, err, other)
	assert.Contains(t, err.Error(), "update product")
}

func TestWithIPv4Host_URLInvalidaSeConserva(t *testing.T) {
	assert.Equal(t, "::no-url", withIPv4Host("::no-url"))
	assert.Equal(t, "postgres://u:p@127.0.0.1:5432/db", withIPv4Host("postgres://u:p@127.0.0.1/db"))
}
