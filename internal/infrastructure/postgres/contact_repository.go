package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo tabla contacto.
type ContactRepo struct {
	q Querier
}

func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

const contactSelect = `SELECT id_contacto, nombre, email, COALESCE(telefono, ''), mensaje, fecha, estado FROM contacto`

// Create inserta el mensaje y llena ID y Date.
func (r *ContactRepo) Create(ctx context.Context, m *entity.ContactMessage) error {
	if m.Status == "" {
		m.Status = entity.ContactStatusPending
	}
	query := `
		INSERT INTO contacto (nombre, email, telefono, mensaje, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_contacto, fecha`
	if err := r.q.QueryRow(ctx, query, m.Name, m.Email, m.Phone, m.Message, m.Status).Scan(&m.ID, &m.Date); err != nil {
		return fmt.Errorf("insert contacto: %w", err)
	}
	return nil
}

func (r *ContactRepo) GetByID(ctx context.Context, id int64) (*entity.ContactMessage, error) {
	m, err := scanContact(r.q.QueryRow(ctx, contactSelect+` WHERE id_contacto = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contacto: %w", err)
	}
	return m, nil
}

// List más recientes primero.
func (r *ContactRepo) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	rows, err := r.q.Query(ctx, contactSelect+` ORDER BY fecha DESC, id_contacto DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contactos: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.ContactMessage, 0)
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contacto: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *ContactRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE contacto SET estado = $2 WHERE id_contacto = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update estado contacto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: Mensaje no encontrado", domain.ErrNotFound)
	}
	return nil
}

func scanContact(row pgx.Row) (*entity.ContactMessage, error) {
	var m entity.ContactMessage
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.Date, &m.Status); err != nil {
		return nil, err
	}
	return &m, nil
}
