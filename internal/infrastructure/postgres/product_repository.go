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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Vista de producto con subcategoría, categoría y proveedor.
const productSelect = `
	SELECT p.id_producto, p.nombre, p.precio, p.marca, p.id_subcategoria, p.id_proveedor,
	       s.nombre, c.id_categoria, c.nombre, pr.nombre
	FROM producto p
	LEFT JOIN subcategoria s ON s.id_subcategoria = p.id_subcategoria
	LEFT JOIN categoria c ON c.id_categoria = s.id_categoria
	LEFT JOIN proveedor pr ON pr.id_proveedor = p.id_proveedor`

// Create persiste un nuevo producto y llena su ID.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO producto (nombre, precio, marca, id_subcategoria, id_proveedor)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_producto`
	err := r.q.QueryRow(ctx, query, p.Name, p.Price, p.Brand, p.SubcategoryID, p.SupplierID).Scan(&p.ID)
	if err != nil {
		return mapWriteError("insert producto", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE p.id_producto = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// List devuelve todos los productos ordenados por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, productSelect+` ORDER BY p.nombre, p.id_producto`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update reemplaza los datos del producto. domain.ErrNotFound si no existe.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE producto SET nombre = $2, precio = $3, marca = $4, id_subcategoria = $5, id_proveedor = $6
		WHERE id_producto = $1`
	cmd, err := r.q.Exec(ctx, query, p.ID, p.Name, p.Price, p.Brand, p.SubcategoryID, p.SupplierID)
	if err != nil {
		return mapWriteError("update producto", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: Producto no encontrado", domain.ErrNotFound)
	}
	return nil
}

// Delete elimina un producto. Si tiene ventas asociadas devuelve domain.ErrConflict.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM producto WHERE id_producto = $1`, id)
	if err != nil {
		return mapDeleteError("producto", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: Producto no encontrado", domain.ErrNotFound)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Price, &p.Brand, &p.SubcategoryID, &p.SupplierID,
		&p.SubcategoryName, &p.CategoryID, &p.CategoryName, &p.SupplierName,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
