package state

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/robertroman/store-admin-console/internal/api"
	"github.com/robertroman/store-admin-console/internal/model"
	"github.com/robertroman/store-admin-console/internal/service"
)

// ProductosState is the slice state for the product catalog.
type ProductosState struct {
	Productos    []model.Producto
	Categorias   []string
	Seleccionado *model.Producto
	Loading      bool
	Error        string
}

func productosPending(s ProductosState) ProductosState {
	s.Loading = true
	s.Error = ""
	return s
}

func productosRejected(s ProductosState, msg string) ProductosState {
	s.Loading = false
	s.Error = msg
	return s
}

// productosFetched replaces the whole collection.
func productosFetched(s ProductosState, productos []model.Producto) ProductosState {
	s.Loading = false
	s.Productos = productos
	return s
}

func productosCreated(s ProductosState, p model.Producto) ProductosState {
	s.Loading = false
	s.Productos = append(s.Productos[:len(s.Productos):len(s.Productos)], p)
	return s
}

func productosUpdated(s ProductosState, p model.Producto) ProductosState {
	s.Loading = false
	for i := range s.Productos {
		if s.Productos[i].ID == p.ID {
			updated := append([]model.Producto(nil), s.Productos...)
			updated[i] = p
			s.Productos = updated
			break
		}
	}
	return s
}

// categoriasFetched merges categories without touching Loading/Error; the
// category fetch rides alongside other operations.
func categoriasFetched(s ProductosState, categorias []string) ProductosState {
	s.Categorias = categorias
	return s
}

// ProductosSlice holds the catalog state and runs its async actions.
type ProductosSlice struct {
	mu  sync.Mutex
	st  ProductosState
	svc service.ProductoService
	log *zap.Logger
}

// NewProductosSlice constructs the slice over its service.
func NewProductosSlice(svc service.ProductoService, log *zap.Logger) *ProductosSlice {
	return &ProductosSlice{svc: svc, log: log}
}

// State returns a snapshot of the slice state.
func (s *ProductosSlice) State() ProductosState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.st
	if st.Seleccionado != nil {
		sel := *st.Seleccionado
		st.Seleccionado = &sel
	}
	return st
}

func (s *ProductosSlice) apply(f func(ProductosState) ProductosState) {
	s.mu.Lock()
	s.st = f(s.st)
	s.mu.Unlock()
}

// Fetch loads the full catalog.
func (s *ProductosSlice) Fetch(ctx context.Context) error {
	s.apply(productosPending)
	productos, err := s.svc.Listar(ctx)
	if err != nil {
		msg := api.ErrorMessage(err, "Error al cargar productos")
		s.log.Warn("fetch productos", zap.String("error", msg))
		s.apply(func(st ProductosState) ProductosState { return productosRejected(st, msg) })
		return err
	}
	s.apply(func(st ProductosState) ProductosState { return productosFetched(st, productos) })
	return nil
}

// Crear registers a product and appends the confirmed entity.
func (s *ProductosSlice) Crear(ctx context.Context, p model.Producto) (model.Producto, error) {
	s.apply(productosPending)
	created, err := s.svc.Crear(ctx, p)
	if err != nil {
		msg := api.ErrorMessage(err, "Error al crear producto")
		s.apply(func(st ProductosState) ProductosState { return productosRejected(st, msg) })
		return model.Producto{}, err
	}
	s.apply(func(st ProductosState) ProductosState { return productosCreated(st, created) })
	return created, nil
}

// Actualizar round-trips a product update and merges the result by id.
func (s *ProductosSlice) Actualizar(ctx context.Context, id int64, cambios model.Producto) (model.Producto, error) {
	s.apply(productosPending)
	updated, err := s.svc.Actualizar(ctx, id, cambios)
	if err != nil {
		msg := api.ErrorMessage(err, "Error al actualizar producto")
		s.apply(func(st ProductosState) ProductosState { return productosRejected(st, msg) })
		return model.Producto{}, err
	}
	s.apply(func(st ProductosState) ProductosState { return productosUpdated(st, updated) })
	return updated, nil
}

// Buscar replaces the collection with the name-search result.
func (s *ProductosSlice) Buscar(ctx context.Context, nombre string) error {
	s.apply(productosPending)
	productos, err := s.svc.Buscar(ctx, nombre)
	if err != nil {
		msg := api.ErrorMessage(err, "Error al buscar productos")
		s.apply(func(st ProductosState) ProductosState { return productosRejected(st, msg) })
		return err
	}
	s.apply(func(st ProductosState) ProductosState { return productosFetched(st, productos) })
	return nil
}

// FetchCategorias merges category names on success; the collection and
// loading flags are untouched either way.
func (s *ProductosSlice) FetchCategorias(ctx context.Context) error {
	categorias, err := s.svc.Categorias(ctx)
	if err != nil {
		return err
	}
	s.apply(func(st ProductosState) ProductosState { return categoriasFetched(st, categorias) })
	return nil
}

// Seleccionar sets the selected product explicitly.
func (s *ProductosSlice) Seleccionar(p model.Producto) {
	s.apply(func(st ProductosState) ProductosState {
		st.Seleccionado = &p
		return st
	})
}

// LimpiarSeleccion clears the selection explicitly.
func (s *ProductosSlice) LimpiarSeleccion() {
	s.apply(func(st ProductosState) ProductosState {
		st.Seleccionado = nil
		return st
	})
}

// LimpiarError clears the error field.
func (s *ProductosSlice) LimpiarError() {
	s.apply(func(st ProductosState) ProductosState {
		st.Error = ""
		return st
	})
}
