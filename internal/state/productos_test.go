package state

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/robertroman/store-admin-console/internal/api"
	"github.com/robertroman/store-admin-console/internal/model"
	"github.com/robertroman/store-admin-console/internal/service"
)

type fakeProductoService struct {
	listar     func(ctx context.Context) ([]model.Producto, error)
	buscar     func(ctx context.Context, nombre string) ([]model.Producto, error)
	categorias func(ctx context.Context) ([]string, error)
}

var _ service.ProductoService = (*fakeProductoService)(nil)

func (f *fakeProductoService) Listar(ctx context.Context) ([]model.Producto, error) {
	return f.listar(ctx)
}
func (f *fakeProductoService) Crear(_ context.Context, p model.Producto) (model.Producto, error) {
	p.ID = 1
	return p, nil
}
func (f *fakeProductoService) Actualizar(_ context.Context, id int64, cambios model.Producto) (model.Producto, error) {
	cambios.ID = id
	return cambios, nil
}
func (f *fakeProductoService) PorID(context.Context, int64) (model.Producto, error) {
	return model.Producto{}, nil
}
func (f *fakeProductoService) Buscar(ctx context.Context, nombre string) ([]model.Producto, error) {
	return f.buscar(ctx, nombre)
}
func (f *fakeProductoService) PorCategoria(context.Context, string) ([]model.Producto, error) {
	return nil, nil
}
func (f *fakeProductoService) Categorias(ctx context.Context) ([]string, error) {
	return f.categorias(ctx)
}
func (f *fakeProductoService) CheckSKU(context.Context, string) (model.SKUDisponibilidad, error) {
	return model.SKUDisponibilidad{}, nil
}

func TestProductosSlice_BuscarReplacesCollection(t *testing.T) {
	svc := &fakeProductoService{
		listar: func(context.Context) ([]model.Producto, error) {
			return []model.Producto{{ID: 1}, {ID: 2}, {ID: 3}}, nil
		},
		buscar: func(_ context.Context, nombre string) ([]model.Producto, error) {
			return []model.Producto{{ID: 2, Nombre: nombre}}, nil
		},
	}
	s := NewProductosSlice(svc, zap.NewNop())
	_ = s.Fetch(context.Background())

	if err := s.Buscar(context.Background(), "café"); err != nil {
		t.Fatalf("buscar: %v", err)
	}
	st := s.State()
	if len(st.Productos) != 1 || st.Productos[0].ID != 2 {
		t.Fatalf("search did not replace the collection: %+v", st.Productos)
	}
}

func TestProductosSlice_FetchCategoriasRidesAlongside(t *testing.T) {
	svc := &fakeProductoService{
		categorias: func(context.Context) ([]string, error) {
			return []string{"Bebidas", "Snacks"}, nil
		},
	}
	s := NewProductosSlice(svc, zap.NewNop())
	// Seed an error as if a prior operation failed.
	s.apply(func(st ProductosState) ProductosState { return productosRejected(st, "previo") })

	if err := s.FetchCategorias(context.Background()); err != nil {
		t.Fatalf("categorias: %v", err)
	}
	st := s.State()
	if len(st.Categorias) != 2 {
		t.Fatalf("categories not merged: %+v", st.Categorias)
	}
	// The category fetch never touches the main lifecycle fields.
	if st.Error != "previo" || st.Loading {
		t.Fatalf("category fetch disturbed lifecycle state: %+v", st)
	}
}

func TestProductosSlice_FetchCategoriasFailureIsSilent(t *testing.T) {
	svc := &fakeProductoService{
		categorias: func(context.Context) ([]string, error) {
			return nil, &api.Error{Status: 500, Message: "boom"}
		},
	}
	s := NewProductosSlice(svc, zap.NewNop())

	if err := s.FetchCategorias(context.Background()); err == nil {
		t.Fatalf("expected error returned to caller")
	}
	if st := s.State(); st.Error != "" {
		t.Fatalf("category failure leaked into slice error: %q", st.Error)
	}
}

func TestProductosSlice_CrearAppendsAndKeepsSelection(t *testing.T) {
	svc := &fakeProductoService{
		listar: func(context.Context) ([]model.Producto, error) {
			return []model.Producto{{ID: 5, Nombre: "Té"}}, nil
		},
	}
	s := NewProductosSlice(svc, zap.NewNop())
	_ = s.Fetch(context.Background())
	s.Seleccionar(model.Producto{ID: 5, Nombre: "Té"})

	if _, err := s.Crear(context.Background(), model.Producto{Nombre: "Café"}); err != nil {
		t.Fatalf("crear: %v", err)
	}
	st := s.State()
	if len(st.Productos) != 2 {
		t.Fatalf("create did not append: %+v", st.Productos)
	}
	if st.Seleccionado == nil || st.Seleccionado.ID != 5 {
		t.Fatalf("selection changed by create: %+v", st.Seleccionado)
	}
}
