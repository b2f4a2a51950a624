package dto

import "github.com/shopspring/decimal"

// StatsDTO contadores del panel de administración.
type StatsDTO struct {
	TotalProductos int64           `json:"total_productos"`
	TotalVentas    decimal.Decimal `json:"total_ventas"`
	TotalFacturas  int64           `json:"total_facturas"`
	TotalClientes  int64           `json:"total_clientes"`
}

// StatsResponse salida de GET /admin/estadisticas.
type StatsResponse struct {
	Success      bool     `json:"success"`
	Estadisticas StatsDTO `json:"estadisticas"`
}
