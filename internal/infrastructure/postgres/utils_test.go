package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
)

func TestClasificacionDeErroresPg(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isForeignKeyViolation(unique))
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isForeignKeyViolation(errors.New("timeout")))
}

func TestMapWriteError(t *testing.T) {
	assert.ErrorIs(t, mapWriteError("producto", &pgconn.PgError{Code: "23505"}), domain.ErrConflict)
	assert.ErrorIs(t, mapWriteError("producto", &pgconn.PgError{Code: "23503"}), domain.ErrInvalidInput)

	boom := errors.New("boom")
	err := mapWriteError("producto", boom)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMapDeleteError(t *testing.T) {
	assert.ErrorIs(t, mapDeleteError("categoría", &pgconn.PgError{Code: "23503"}), domain.ErrConflict)
}

func TestClasificacion_SoloPorCodigoSQLState(t *testing.T) {
	// Un mensaje que contiene esos dígitos no es una violación de constraint.
	assert.False(t, isForeignKeyViolation(errors.New("producto 123503 no encontrado")))
	assert.False(t, isUniqueViolation(fmt.Errorf("insert: %w", errors.New("id 23505"))))
	assert.NotErrorIs(t, mapDeleteError("categoría", errors.New("fila 23503")), domain.ErrConflict)
	assert.NotErrorIs(t, mapWriteError("producto", errors.New("lote 23505")), domain.ErrConflict)
}
