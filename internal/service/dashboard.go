package service

import (
	"context"
	"fmt"

	"github.com/robertroman/store-admin-console/internal/api"
	"github.com/robertroman/store-admin-console/internal/model"
)

// DashboardService defines the per-local aggregate read models.
type DashboardService interface {
	// Datos fetches the full dashboard for a date range.
	Datos(ctx context.Context, localID int64, fechaInicio, fechaFin string) (model.DashboardData, error)
	// Hoy fetches today's dashboard.
	Hoy(ctx context.Context, localID int64) (model.DashboardData, error)
	// Mes fetches the current month's dashboard.
	Mes(ctx context.Context, localID int64) (model.DashboardData, error)
	// ProductosMasVendidos ranks assignments by units sold.
	ProductosMasVendidos(ctx context.Context, localID int64) ([]model.ProductoVendido, error)
	// VentasPorCategoria breaks a range's sales down by category.
	VentasPorCategoria(ctx context.Context, localID int64, fechaInicio, fechaFin string) ([]model.VentaCategoria, error)
	// AlertasStock lists low/no-stock alerts.
	AlertasStock(ctx context.Context, localID int64) ([]model.AlertaStock, error)
	// Resumen fetches the quick today-at-a-glance summary.
	Resumen(ctx context.Context, localID int64) (model.ResumenRapido, error)
	// ComparacionMensual contrasts this month against the previous one.
	ComparacionMensual(ctx context.Context, localID int64) (model.ComparacionMensual, error)
}

type DashboardServiceImpl struct {
	api *api.Client
}

// NewDashboardService constructs DashboardService over the shared API client.
func NewDashboardService(c *api.Client) *DashboardServiceImpl {
	return &DashboardServiceImpl{api: c}
}

func (s *DashboardServiceImpl) Datos(ctx context.Context, localID int64, fechaInicio, fechaFin string) (model.DashboardData, error) {
	var out model.DashboardData
	path := fmt.Sprintf("/dashboard/local/%d?%s", localID, rangeQuery(fechaInicio, fechaFin))
	if err := s.api.Get(ctx, path, &out); err != nil {
		return model.DashboardData{}, err
	}
	return out, nil
}

func (s *DashboardServiceImpl) Hoy(ctx context.Context, localID int64) (model.DashboardData, error) {
	var out model.DashboardData
	if err := s.api.Get(ctx, fmt.Sprintf("/dashboard/local/%d/hoy", localID), &out); err != nil {
		return model.DashboardData{}, err
	}
	return out, nil
}

func (s *DashboardServiceImpl) Mes(ctx context.Context, localID int64) (model.DashboardData, error) {
	var out model.DashboardData
	if err := s.api.Get(ctx, fmt.Sprintf("/dashboard/local/%d/mes", localID), &out); err != nil {
		return model.DashboardData{}, err
	}
	return out, nil
}

func (s *DashboardServiceImpl) ProductosMasVendidos(ctx context.Context, localID int64) ([]model.ProductoVendido, error) {
	var out []model.ProductoVendido
	if err := s.api.Get(ctx, fmt.Sprintf("/dashboard/local/%d/productos-mas-vendidos", localID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DashboardServiceImpl) VentasPorCategoria(ctx context.Context, localID int64, fechaInicio, fechaFin string) ([]model.VentaCategoria, error) {
	var out []model.VentaCategoria
	path := fmt.Sprintf("/dashboard/local/%d/ventas-por-categoria?%s", localID, rangeQuery(fechaInicio, fechaFin))
	if err := s.api.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DashboardServiceImpl) AlertasStock(ctx context.Context, localID int64) ([]model.AlertaStock, error) {
	var out []model.AlertaStock
	if err := s.api.Get(ctx, fmt.Sprintf("/dashboard/local/%d/alertas-stock", localID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DashboardServiceImpl) Resumen(ctx context.Context, localID int64) (model.ResumenRapido, error) {
	var out model.ResumenRapido
	if err := s.api.Get(ctx, fmt.Sprintf("/dashboard/local/%d/resumen", localID), &out); err != nil {
		return model.ResumenRapido{}, err
	}
	return out, nil
}

func (s *DashboardServiceImpl) ComparacionMensual(ctx context.Context, localID int64) (model.ComparacionMensual, error) {
	var out model.ComparacionMensual
	if err := s.api.Get(ctx, fmt.Sprintf("/dashboard/local/%d/comparacion-mensual", localID), &out); err != nil {
		return model.ComparacionMensual{}, err
	}
	return out, nil
}
