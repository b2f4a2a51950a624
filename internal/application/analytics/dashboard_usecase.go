// Package analytics contiene los casos de uso del panel de estadísticas del administrador.
package analytics

import (
	"context"
	"fmt"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/repository"
)

// StatsUseCase arma los contadores del panel: productos, clientes, facturas y total vendido.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type StatsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(analyticsRepo repository.AnalyticsRepository) *StatsUseCase {
	return &StatsUseCase{analyticsRepo: analyticsRepo}
}

// GetStats consulta catálogo y ventas en paralelo.
// Sin ventas, TotalVentas es 0.
func (uc *StatsUseCase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	type catalogResult struct {
		c   *repository.CatalogCounters
		err error
	}
	type salesResult struct {
		s   *repository.SalesCounters
		err error
	}

	catalogCh := make(chan catalogResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		c, err := uc.analyticsRepo.GetCatalogCounters(ctx)
		catalogCh <- catalogResult{c, err}
	}()
	go func() {
		s, err := uc.analyticsRepo.GetSalesCounters(ctx)
		salesCh <- salesResult{s, err}
	}()

	catalog := <-catalogCh
	sales := <-salesCh

	if catalog.err != nil {
		return nil, fmt.Errorf("estadisticas: catálogo: %w", catalog.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("estadisticas: ventas: %w", sales.err)
	}

	stats := dto.StatsDTO{}
	if catalog.c != nil {
		stats.TotalProductos = catalog.c.Products
		stats.TotalClientes = catalog.c.Customers
	}
	if sales.s != nil {
		stats.TotalFacturas = sales.s.Invoices
		stats.TotalVentas = sales.s.TotalSales.Round(2)
	}
	return &dto.StatsResponse{Success: true, Estadisticas: stats}, nil
}
