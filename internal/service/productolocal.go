package service

import (
	"context"
	"fmt"

	"github.com/robertroman/store-admin-console/internal/api"
	"github.com/robertroman/store-admin-console/internal/model"
)

// ProductoLocalService defines operations over product-store assignments.
type ProductoLocalService interface {
	// Asignar links a product to a local with initial stock and price.
	Asignar(ctx context.Context, req model.AsignarProductoRequest) (model.ProductoLocal, error)
	// ActualizarStock sets the absolute stock and returns the updated row.
	ActualizarStock(ctx context.Context, req model.ActualizarStockRequest) (model.ProductoLocal, error)
	// AumentarStock increments stock; the response carries no updated row,
	// so callers must refetch the local's inventory afterwards.
	AumentarStock(ctx context.Context, req model.AumentarStockRequest) (model.Mensaje, error)
	// PorLocal lists one local's inventory.
	PorLocal(ctx context.Context, localID int64) ([]model.ProductoLocal, error)
	// Stock fetches the current stock of one (producto, local) pair.
	Stock(ctx context.Context, productoID, localID int64) (model.StockActual, error)
	// StockBajo lists assignments at or below their minimum.
	StockBajo(ctx context.Context, localID int64) ([]model.ProductoLocal, error)
	// SinStock lists assignments with zero stock.
	SinStock(ctx context.Context, localID int64) ([]model.ProductoLocal, error)
	// ValorInventario totals the local's inventory value.
	ValorInventario(ctx context.Context, localID int64) (model.ValorInventario, error)
	// Resumen summarizes counts and value for one local.
	Resumen(ctx context.Context, localID int64) (model.ResumenInventario, error)
	// ActualizarPrecio changes the sale price and returns the updated row.
	ActualizarPrecio(ctx context.Context, req model.ActualizarPrecioRequest) (model.ProductoLocal, error)
}

type ProductoLocalServiceImpl struct {
	api *api.Client
}

// NewProductoLocalService constructs ProductoLocalService over the shared API client.
func NewProductoLocalService(c *api.Client) *ProductoLocalServiceImpl {
	return &ProductoLocalServiceImpl{api: c}
}

func (s *ProductoLocalServiceImpl) Asignar(ctx context.Context, req model.AsignarProductoRequest) (model.ProductoLocal, error) {
	var out model.ProductoLocal
	if err := s.api.Post(ctx, "/productos-local/asignar", req, &out); err != nil {
		return model.ProductoLocal{}, err
	}
	return out, nil
}

func (s *ProductoLocalServiceImpl) ActualizarStock(ctx context.Context, req model.ActualizarStockRequest) (model.ProductoLocal, error) {
	var out model.ProductoLocal
	if err := s.api.Put(ctx, "/productos-local/stock", req, &out); err != nil {
		return model.ProductoLocal{}, err
	}
	return out, nil
}

func (s *ProductoLocalServiceImpl) AumentarStock(ctx context.Context, req model.AumentarStockRequest) (model.Mensaje, error) {
	var out model.Mensaje
	if err := s.api.Patch(ctx, "/productos-local/aumentar-stock", req, &out); err != nil {
		return model.Mensaje{}, err
	}
	return out, nil
}

func (s *ProductoLocalServiceImpl) PorLocal(ctx context.Context, localID int64) ([]model.ProductoLocal, error) {
	var out []model.ProductoLocal
	if err := s.api.Get(ctx, fmt.Sprintf("/productos-local/local/%d", localID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductoLocalServiceImpl) Stock(ctx context.Context, productoID, localID int64) (model.StockActual, error) {
	var out model.StockActual
	if err := s.api.Get(ctx, fmt.Sprintf("/productos-local/stock/%d/%d", productoID, localID), &out); err != nil {
		return model.StockActual{}, err
	}
	return out, nil
}

func (s *ProductoLocalServiceImpl) StockBajo(ctx context.Context, localID int64) ([]model.ProductoLocal, error) {
	var out []model.ProductoLocal
	if err := s.api.Get(ctx, fmt.Sprintf("/productos-local/local/%d/stock-bajo", localID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductoLocalServiceImpl) SinStock(ctx context.Context, localID int64) ([]model.ProductoLocal, error) {
	var out []model.ProductoLocal
	if err := s.api.Get(ctx, fmt.Sprintf("/productos-local/local/%d/sin-stock", localID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductoLocalServiceImpl) ValorInventario(ctx context.Context, localID int64) (model.ValorInventario, error) {
	var out model.ValorInventario
	if err := s.api.Get(ctx, fmt.Sprintf("/productos-local/local/%d/valor-inventario", localID), &out); err != nil {
		return model.ValorInventario{}, err
	}
	return out, nil
}

func (s *ProductoLocalServiceImpl) Resumen(ctx context.Context, localID int64) (model.ResumenInventario, error) {
	var out model.ResumenInventario
	if err := s.api.Get(ctx, fmt.Sprintf("/productos-local/local/%d/resumen", localID), &out); err != nil {
		return model.ResumenInventario{}, err
	}
	return out, nil
}

func (s *ProductoLocalServiceImpl) ActualizarPrecio(ctx context.Context, req model.ActualizarPrecioRequest) (model.ProductoLocal, error) {
	var out model.ProductoLocal
	if err := s.api.Patch(ctx, "/productos-local/precio-venta", req, &out); err != nil {
		return model.ProductoLocal{}, err
	}
	return out, nil
}
