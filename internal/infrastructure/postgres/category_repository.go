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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo tabla categoria.
type CategoryRepo struct {
	q Querier
}

func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO categoria (nombre, descripcion) VALUES ($1, $2) RETURNING id_categoria`,
		c.Name, c.Description,
	).Scan(&c.ID)
	if err != nil {
		return mapWriteError("insert categoria", err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx,
		`SELECT id_categoria, nombre, descripcion FROM categoria WHERE id_categoria = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT id_categoria, nombre, descripcion FROM categoria ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE categoria SET nombre = $2, descripcion = $3 WHERE id_categoria = $1`,
		c.ID, c.Name, c.Description,
	)
	if err != nil {
		return mapWriteError("update categoria", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: Categoría no encontrada", domain.ErrNotFound)
	}
	return nil
}

// Delete falla con domain.ErrConflict si la categoría aún tiene subcategorías.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM categoria WHERE id_categoria = $1`, id)
	if err != nil {
		return mapDeleteError("categoria", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: Categoría no encontrada", domain.ErrNotFound)
	}
	return nil
}
