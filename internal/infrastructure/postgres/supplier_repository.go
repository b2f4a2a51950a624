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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo tabla proveedor.
type SupplierRepo struct {
	q Querier
}

func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO proveedor (nombre, direccion, telefono) VALUES ($1, $2, $3) RETURNING id_proveedor`,
		s.Name, s.Address, s.Phone,
	).Scan(&s.ID)
	if err != nil {
		return mapWriteError("insert proveedor", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(ctx,
		`SELECT id_proveedor, nombre, direccion, telefono FROM proveedor WHERE id_proveedor = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Address, &s.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `SELECT id_proveedor, nombre, direccion, telefono FROM proveedor ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Supplier, 0)
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Phone); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE proveedor SET nombre = $2, direccion = $3, telefono = $4 WHERE id_proveedor = $1`,
		s.ID, s.Name, s.Address, s.Phone,
	)
	if err != nil {
		return mapWriteError("update proveedor", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: Proveedor no encontrado", domain.ErrNotFound)
	}
	return nil
}

func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM proveedor WHERE id_proveedor = $1`, id)
	if err != nil {
		return mapDeleteError("proveedor", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: Proveedor no encontrado", domain.ErrNotFound)
	}
	return nil
}
