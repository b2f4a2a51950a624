package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only del panel de estadísticas.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetCatalogCounters cuenta productos y usuarios con rol cliente.
func (r *AnalyticsRepo) GetCatalogCounters(ctx context.Context) (*repository.CatalogCounters, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM producto),
			(SELECT COUNT(*) FROM usuario WHERE rol = $1)`
	var c repository.CatalogCounters
	if err := r.pool.QueryRow(ctx, query, entity.RoleCliente).Scan(&c.Products, &c.Customers); err != nil {
		return nil, fmt.Errorf("contadores catálogo: %w", err)
	}
	return &c, nil
}

// GetSalesCounters número de facturas y suma de totales (0 sin ventas).
func (r *AnalyticsRepo) GetSalesCounters(ctx context.Context) (*repository.SalesCounters, error) {
	const query = `SELECT COUNT(*), COALESCE(SUM(total), 0) FROM venta`
	var s repository.SalesCounters
	if err := r.pool.QueryRow(ctx, query).Scan(&s.Invoices, &s.TotalSales); err != nil {
		return nil, fmt.Errorf("contadores ventas: %w", err)
	}
	return &s, nil
}
