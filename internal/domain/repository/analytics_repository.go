package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// CatalogCounters contadores de catálogo y clientes para el panel admin.
type CatalogCounters struct {
	Products  int64
	Customers int64
}

// SalesCounters agregados de ventas para el panel admin.
type SalesCounters struct {
	Invoices   int64
	TotalSales decimal.Decimal
}

// AnalyticsRepository puerto de lectura para el panel de estadísticas.
type AnalyticsRepository interface {
	GetCatalogCounters(ctx context.Context) (*CatalogCounters, error)
	GetSalesCounters(ctx context.Context) (*SalesCounters, error)
}
