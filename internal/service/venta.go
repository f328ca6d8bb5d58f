package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/robertroman/store-admin-console/internal/api"
	"github.com/robertroman/store-admin-console/internal/model"
)

// VentaService defines operations over sales.
type VentaService interface {
	// Crear submits a sale; the returned Venta carries the server total.
	Crear(ctx context.Context, req model.CrearVentaRequest) (model.Venta, error)
	// PorLocal lists one local's sales.
	PorLocal(ctx context.Context, localID int64) ([]model.Venta, error)
	// PorID fetches one sale.
	PorID(ctx context.Context, id int64) (model.Venta, error)
	// PorPeriodo lists sales within a date range.
	PorPeriodo(ctx context.Context, localID int64, fechaInicio, fechaFin string) ([]model.Venta, error)
	// Hoy lists today's sales.
	Hoy(ctx context.Context, localID int64) ([]model.Venta, error)
	// Cancelar cancels a sale with a mandatory reason.
	Cancelar(ctx context.Context, id int64, motivo string) (model.Venta, error)
	// Estadisticas aggregates sales over a range.
	Estadisticas(ctx context.Context, localID int64, fechaInicio, fechaFin string) (model.EstadisticasVentas, error)
	// EstadisticasHoy aggregates today's sales.
	EstadisticasHoy(ctx context.Context, localID int64) (model.EstadisticasVentas, error)
	// EstadisticasMes aggregates the current month's sales.
	EstadisticasMes(ctx context.Context, localID int64) (model.EstadisticasVentas, error)
}

type VentaServiceImpl struct {
	api *api.Client
}

// NewVentaService constructs VentaService over the shared API client.
func NewVentaService(c *api.Client) *VentaServiceImpl {
	return &VentaServiceImpl{api: c}
}

func (s *VentaServiceImpl) Crear(ctx context.Context, req model.CrearVentaRequest) (model.Venta, error) {
	var out model.Venta
	if err := s.api.Post(ctx, "/ventas", req, &out); err != nil {
		return model.Venta{}, err
	}
	return out, nil
}

func (s *VentaServiceImpl) PorLocal(ctx context.Context, localID int64) ([]model.Venta, error) {
	var out []model.Venta
	if err := s.api.Get(ctx, fmt.Sprintf("/ventas/local/%d", localID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *VentaServiceImpl) PorID(ctx context.Context, id int64) (model.Venta, error) {
	var out model.Venta
	if err := s.api.Get(ctx, fmt.Sprintf("/ventas/%d", id), &out); err != nil {
		return model.Venta{}, err
	}
	return out, nil
}

func (s *VentaServiceImpl) PorPeriodo(ctx context.Context, localID int64, fechaInicio, fechaFin string) ([]model.Venta, error) {
	var out []model.Venta
	path := fmt.Sprintf("/ventas/local/%d/periodo?%s", localID, rangeQuery(fechaInicio, fechaFin))
	if err := s.api.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *VentaServiceImpl) Hoy(ctx context.Context, localID int64) ([]model.Venta, error) {
	var out []model.Venta
	if err := s.api.Get(ctx, fmt.Sprintf("/ventas/local/%d/hoy", localID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *VentaServiceImpl) Cancelar(ctx context.Context, id int64, motivo string) (model.Venta, error) {
	var out model.Venta
	body := model.CancelarVentaRequest{Motivo: motivo}
	if err := s.api.Patch(ctx, fmt.Sprintf("/ventas/%d/cancelar", id), body, &out); err != nil {
		return model.Venta{}, err
	}
	return out, nil
}

func (s *VentaServiceImpl) Estadisticas(ctx context.Context, localID int64, fechaInicio, fechaFin string) (model.EstadisticasVentas, error) {
	var out model.EstadisticasVentas
	path := fmt.Sprintf("/ventas/local/%d/estadisticas?%s", localID, rangeQuery(fechaInicio, fechaFin))
	if err := s.api.Get(ctx, path, &out); err != nil {
		return model.EstadisticasVentas{}, err
	}
	return out, nil
}

func (s *VentaServiceImpl) EstadisticasHoy(ctx context.Context, localID int64) (model.EstadisticasVentas, error) {
	var out model.EstadisticasVentas
	if err := s.api.Get(ctx, fmt.Sprintf("/ventas/local/%d/estadisticas/hoy", localID), &out); err != nil {
		return model.EstadisticasVentas{}, err
	}
	return out, nil
}

func (s *VentaServiceImpl) EstadisticasMes(ctx context.Context, localID int64) (model.EstadisticasVentas, error) {
	var out model.EstadisticasVentas
	if err := s.api.Get(ctx, fmt.Sprintf("/ventas/local/%d/estadisticas/mes", localID), &out); err != nil {
		return model.EstadisticasVentas{}, err
	}
	return out, nil
}

// rangeQuery builds the fechaInicio/fechaFin query string shared by the
// period endpoints.
func rangeQuery(fechaInicio, fechaFin string) string {
	q := url.Values{}
	q.Set("fechaInicio", fechaInicio)
	q.Set("fechaFin", fechaFin)
	return q.Encode()
}
