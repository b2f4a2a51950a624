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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo tablas venta y detalle_venta. Las escrituras se hacen con la tx de TxRunner.RunSale.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool para lecturas o tx para registrar ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleSelect = `
	SELECT v.id_venta, v.factura, v.usuario_id, v.subtotal, v.iva, v.total, v.metodo_pago, v.fecha, u.nombre
	FROM venta v
	LEFT JOIN usuario u ON u.id_usuario = v.usuario_id`

const detailSelect = `
	SELECT d.id_detalle, d.id_venta, d.id_producto, d.cantidad, d.precio_unitario, d.subtotal, p.nombre, p.marca
	FROM detalle_venta d
	LEFT JOIN producto p ON p.id_producto = d.id_producto`

// NextInvoiceNumber toma el siguiente valor de venta_factura_seq.
// Un rollback no devuelve el número: puede haber huecos, nunca repetidos.
func (r *SaleRepo) NextInvoiceNumber(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT nextval('venta_factura_seq')`).Scan(&n); err != nil {
		return 0, fmt.Errorf("nextval venta_factura_seq: %w", err)
	}
	return n, nil
}

// Create inserta la cabecera y llena ID y Date con lo que asignó la BD.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO venta (factura, usuario_id, subtotal, iva, total, metodo_pago)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_venta, fecha`
	err := r.q.QueryRow(ctx, query,
		s.InvoiceCode, s.UserID, s.Subtotal, s.Tax, s.Total, s.PaymentMethod,
	).Scan(&s.ID, &s.Date)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: la factura %s ya existe", domain.ErrConflict, s.InvoiceCode)
		}
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateDetail inserta una línea. Un producto inexistente es entrada inválida.
func (r *SaleRepo) CreateDetail(ctx context.Context, d *entity.SaleDetail) error {
	query := `
		INSERT INTO detalle_venta (id_venta, id_producto, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_detalle`
	err := r.q.QueryRow(ctx, query, d.SaleID, d.ProductID, d.Quantity, d.UnitPrice, d.Subtotal).Scan(&d.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: El producto %d no existe", domain.ErrInvalidInput, d.ProductID)
		}
		return fmt.Errorf("insert detalle_venta: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera con el nombre del cliente. (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, saleSelect+` WHERE v.id_venta = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return s, nil
}

// GetDetails líneas de una venta en orden de inserción.
func (r *SaleRepo) GetDetails(ctx context.Context, saleID int64) ([]*entity.SaleDetail, error) {
	rows, err := r.q.Query(ctx, detailSelect+` WHERE d.id_venta = $1 ORDER BY d.id_detalle`, saleID)
	if err != nil {
		return nil, fmt.Errorf("list detalle_venta: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.SaleDetail, 0)
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// List todas las ventas, más recientes primero.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, saleSelect+` ORDER BY v.fecha DESC, v.id_venta DESC`)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// DetailsBySales carga en una sola consulta las líneas de varias ventas.
func (r *SaleRepo) DetailsBySales(ctx context.Context, saleIDs []int64) (map[int64][]*entity.SaleDetail, error) {
	out := make(map[int64][]*entity.SaleDetail, len(saleIDs))
	if len(saleIDs) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, detailSelect+` WHERE d.id_venta = ANY($1) ORDER BY d.id_venta, d.id_detalle`, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("list detalle_venta por ventas: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, err
		}
		out[d.SaleID] = append(out[d.SaleID], d)
	}
	return out, rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.InvoiceCode, &s.UserID, &s.Subtotal, &s.Tax, &s.Total,
		&s.PaymentMethod, &s.Date, &s.CustomerName,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanDetail(row pgx.Row) (*entity.SaleDetail, error) {
	var d entity.SaleDetail
	err := row.Scan(
		&d.ID, &d.SaleID, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.Subtotal,
		&d.ProductName, &d.ProductBrand,
	)
	if err != nil {
		return nil, fmt.Errorf("scan detalle_venta: %w", err)
	}
	return &d, nil
}
