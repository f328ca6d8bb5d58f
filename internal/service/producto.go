package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/robertroman/store-admin-console/internal/api"
	"github.com/robertroman/store-admin-console/internal/model"
)

// ProductoService defines operations over the product catalog.
type ProductoService interface {
	// Listar returns the full catalog.
	Listar(ctx context.Context) ([]model.Producto, error)
	// Crear registers a product; SKU uniqueness is server-validated.
	Crear(ctx context.Context, p model.Producto) (model.Producto, error)
	// Actualizar sends a partial product update.
	Actualizar(ctx context.Context, id int64, cambios model.Producto) (model.Producto, error)
	// PorID fetches one product.
	PorID(ctx context.Context, id int64) (model.Producto, error)
	// Buscar searches products by name.
	Buscar(ctx context.Context, nombre string) ([]model.Producto, error)
	// PorCategoria lists products of one category.
	PorCategoria(ctx context.Context, categoria string) ([]model.Producto, error)
	// Categorias lists known category names.
	Categorias(ctx context.Context) ([]string, error)
	// CheckSKU reports whether a SKU is still available.
	CheckSKU(ctx context.Context, sku string) (model.SKUDisponibilidad, error)
}

type ProductoServiceImpl struct {
	api *api.Client
}

// NewProductoService constructs ProductoService over the shared API client.
func NewProductoService(c *api.Client) *ProductoServiceImpl {
	return &ProductoServiceImpl{api: c}
}

func (s *ProductoServiceImpl) Listar(ctx context.Context) ([]model.Producto, error) {
	var out []model.Producto
	if err := s.api.Get(ctx, "/productos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductoServiceImpl) Crear(ctx context.Context, p model.Producto) (model.Producto, error) {
	p.ID = 0 // server-assigned
	var out model.Producto
	if err := s.api.Post(ctx, "/productos", p, &out); err != nil {
		return model.Producto{}, err
	}
	return out, nil
}

func (s *ProductoServiceImpl) Actualizar(ctx context.Context, id int64, cambios model.Producto) (model.Producto, error) {
	var out model.Producto
	if err := s.api.Put(ctx, fmt.Sprintf("/productos/%d", id), cambios, &out); err != nil {
		return model.Producto{}, err
	}
	return out, nil
}

func (s *ProductoServiceImpl) PorID(ctx context.Context, id int64) (model.Producto, error) {
	var out model.Producto
	if err := s.api.Get(ctx, fmt.Sprintf("/productos/%d", id), &out); err != nil {
		return model.Producto{}, err
	}
	return out, nil
}

func (s *ProductoServiceImpl) Buscar(ctx context.Context, nombre string) ([]model.Producto, error) {
	var out []model.Producto
	path := "/productos/buscar?nombre=" + url.QueryEscape(nombre)
	if err := s.api.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductoServiceImpl) PorCategoria(ctx context.Context, categoria string) ([]model.Producto, error) {
	var out []model.Producto
	path := "/productos/categoria/" + url.PathEscape(categoria)
	if err := s.api.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductoServiceImpl) Categorias(ctx context.Context) ([]string, error) {
	var out []string
	if err := s.api.Get(ctx, "/productos/categorias", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductoServiceImpl) CheckSKU(ctx context.Context, sku string) (model.SKUDisponibilidad, error) {
	var out model.SKUDisponibilidad
	path := "/productos/check-sku/" + url.PathEscape(sku)
	if err := s.api.Get(ctx, path, &out); err != nil {
		return model.SKUDisponibilidad{}, err
	}
	return out, nil
}
