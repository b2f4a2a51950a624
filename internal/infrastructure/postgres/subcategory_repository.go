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

var _ repository.SubcategoryRepository = (*SubcategoryRepo)(nil)

// SubcategoryRepo tabla subcategoria; las lecturas traen el nombre de la categoría.
type SubcategoryRepo struct {
	q Querier
}

func NewSubcategoryRepository(q Querier) *SubcategoryRepo {
	return &SubcategoryRepo{q: q}
}

const subcategorySelect = `
	SELECT s.id_subcategoria, s.nombre, s.id_categoria, c.nombre
	FROM subcategoria s
	LEFT JOIN categoria c ON c.id_categoria = s.id_categoria`

func (r *SubcategoryRepo) Create(ctx context.Context, s *entity.Subcategory) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO subcategoria (nombre, id_categoria) VALUES ($1, $2) RETURNING id_subcategoria`,
		s.Name, s.CategoryID,
	).Scan(&s.ID)
	if err != nil {
		return mapWriteError("insert subcategoria", err)
	}
	return nil
}

func (r *SubcategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Subcategory, error) {
	var s entity.Subcategory
	err := r.q.QueryRow(ctx, subcategorySelect+` WHERE s.id_subcategoria = $1`, id).
		Scan(&s.ID, &s.Name, &s.CategoryID, &s.CategoryName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategoria: %w", err)
	}
	return &s, nil
}

func (r *SubcategoryRepo) List(ctx context.Context) ([]*entity.Subcategory, error) {
	return r.list(ctx, subcategorySelect+` ORDER BY c.nombre, s.nombre`)
}

func (r *SubcategoryRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Subcategory, error) {
	return r.list(ctx, subcategorySelect+` WHERE s.id_categoria = $1 ORDER BY s.nombre`, categoryID)
}

func (r *SubcategoryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Subcategory, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subcategorias: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Subcategory, 0)
	for rows.Next() {
		var s entity.Subcategory
		if err := rows.Scan(&s.ID, &s.Name, &s.CategoryID, &s.CategoryName); err != nil {
			return nil, fmt.Errorf("scan subcategoria: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SubcategoryRepo) Update(ctx context.Context, s *entity.Subcategory) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE subcategoria SET nombre = $2, id_categoria = $3 WHERE id_subcategoria = $1`,
		s.ID, s.Name, s.CategoryID,
	)
	if err != nil {
		return mapWriteError("update subcategoria", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: Subcategoría no encontrada", domain.ErrNotFound)
	}
	return nil
}

func (r *SubcategoryRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM subcategoria WHERE id_subcategoria = $1`, id)
	if err != nil {
		return mapDeleteError("subcategoria", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: Subcategoría no encontrada", domain.ErrNotFound)
	}
	return nil
}
