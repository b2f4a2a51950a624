package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, "23505")
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	return hasCode(err, "23503")
}

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// mapWriteError traduce errores de INSERT/UPDATE del catálogo:
// único → 409, referencia colgante → 400.
func mapWriteError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %s", domain.ErrConflict, op)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: %s hace referencia a un registro inexistente", domain.ErrInvalidInput, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// mapDeleteError traduce errores de DELETE: si otra tabla aún lo referencia → 409.
func mapDeleteError(op string, err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: %s tiene registros asociados", domain.ErrConflict, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// nullIfEmpty guarda NULL en lugar de cadena vacía para columnas opcionales.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
