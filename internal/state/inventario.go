package state

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/robertroman/store-admin-console/internal/api"
	"github.com/robertroman/store-admin-console/internal/model"
	"github.com/robertroman/store-admin-console/internal/service"
)

// InventarioState is the slice state for one local's product assignments.
type InventarioState struct {
	ProductosLocal []model.ProductoLocal
	Loading        bool
	Error          string
}

func inventarioPending(s InventarioState) InventarioState {
	s.Loading = true
	s.Error = ""
	return s
}

func inventarioRejected(s InventarioState, msg string) InventarioState {
	s.Loading = false
	s.Error = msg
	return s
}

// inventarioFetched replaces the collection with the listed inventory.
func inventarioFetched(s InventarioState, rows []model.ProductoLocal) InventarioState {
	s.Loading = false
	s.ProductosLocal = rows
	return s
}

// inventarioAssigned appends the confirmed assignment.
func inventarioAssigned(s InventarioState, row model.ProductoLocal) InventarioState {
	s.Loading = false
	s.ProductosLocal = append(s.ProductosLocal[:len(s.ProductosLocal):len(s.ProductosLocal)], row)
	return s
}

// inventarioRowUpdated replaces the matching row; an unknown id is a
// defined no-op.
func inventarioRowUpdated(s InventarioState, row model.ProductoLocal) InventarioState {
	s.Loading = false
	for i := range s.ProductosLocal {
		if s.ProductosLocal[i].ID == row.ID {
			updated := append([]model.ProductoLocal(nil), s.ProductosLocal...)
			updated[i] = row
			s.ProductosLocal = updated
			break
		}
	}
	return s
}

// inventarioSettled clears the busy flag without merging anything. Used by
// the relative increment, whose response carries no updated row.
func inventarioSettled(s InventarioState) InventarioState {
	s.Loading = false
	return s
}

// InventarioSlice holds the inventory state and runs its async actions.
type InventarioSlice struct {
	mu  sync.Mutex
	st  InventarioState
	svc service.ProductoLocalService
	log *zap.Logger
}

// NewInventarioSlice constructs the slice over its service.
func NewInventarioSlice(svc service.ProductoLocalService, log *zap.Logger) *InventarioSlice {
	return &InventarioSlice{svc: svc, log: log}
}

// State returns a snapshot of the slice state.
func (s *InventarioSlice) State() InventarioState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st
}

func (s *InventarioSlice) apply(f func(InventarioState) InventarioState) {
	s.mu.Lock()
	s.st = f(s.st)
	s.mu.Unlock()
}

// FetchPorLocal loads one local's inventory, replacing the collection.
func (s *InventarioSlice) FetchPorLocal(ctx context.Context, localID int64) error {
	s.apply(inventarioPending)
	rows, err := s.svc.PorLocal(ctx, localID)
	if err != nil {
		msg := api.ErrorMessage(err, "Error al cargar productos del local")
		s.log.Warn("fetch inventario", zap.Int64("local", localID), zap.String("error", msg))
		s.apply(func(st InventarioState) InventarioState { return inventarioRejected(st, msg) })
		return err
	}
	s.apply(func(st InventarioState) InventarioState { return inventarioFetched(st, rows) })
	return nil
}

// Asignar links a product to the local and appends the confirmed row.
func (s *InventarioSlice) Asignar(ctx context.Context, req model.AsignarProductoRequest) (model.ProductoLocal, error) {
	s.apply(inventarioPending)
	row, err := s.svc.Asignar(ctx, req)
	if err != nil {
		msg := api.ErrorMessage(err, "Error al asignar producto")
		s.apply(func(st InventarioState) InventarioState { return inventarioRejected(st, msg) })
		return model.ProductoLocal{}, err
	}
	s.apply(func(st InventarioState) InventarioState { return inventarioAssigned(st, row) })
	return row, nil
}

// ActualizarStock sets an absolute stock value and merges the returned row
// by id.
func (s *InventarioSlice) ActualizarStock(ctx context.Context, req model.ActualizarStockRequest) (model.ProductoLocal, error) {
	s.apply(inventarioPending)
	row, err := s.svc.ActualizarStock(ctx, req)
	if err != nil {
		msg := api.ErrorMessage(err, "Error al actualizar stock")
		s.apply(func(st InventarioState) InventarioState { return inventarioRejected(st, msg) })
		return model.ProductoLocal{}, err
	}
	s.apply(func(st InventarioState) InventarioState { return inventarioRowUpdated(st, row) })
	return row, nil
}

// AumentarStock increments stock by a relative quantity. The increment
// response carries no updated row, so on success the action refetches the
// same local's inventory; the collection becomes eventually consistent
// with the server-computed value. On failure nothing is refetched.
func (s *InventarioSlice) AumentarStock(ctx context.Context, productoID, localID int64, cantidad int) error {
	s.apply(inventarioPending)
	req := model.AumentarStockRequest{ProductoID: productoID, LocalID: localID, Cantidad: cantidad}
	if _, err := s.svc.AumentarStock(ctx, req); err != nil {
		msg := api.ErrorMessage(err, "Error al aumentar stock")
		s.apply(func(st InventarioState) InventarioState { return inventarioRejected(st, msg) })
		return err
	}
	s.apply(inventarioSettled)
	return s.FetchPorLocal(ctx, localID)
}

// ActualizarPrecio changes the sale price and merges the returned row by id.
func (s *InventarioSlice) ActualizarPrecio(ctx context.Context, req model.ActualizarPrecioRequest) (model.ProductoLocal, error) {
	s.apply(inventarioPending)
	row, err := s.svc.ActualizarPrecio(ctx, req)
	if err != nil {
		msg := api.ErrorMessage(err, "Error al actualizar precio")
		s.apply(func(st InventarioState) InventarioState { return inventarioRejected(st, msg) })
		return model.ProductoLocal{}, err
	}
	s.apply(func(st InventarioState) InventarioState { return inventarioRowUpdated(st, row) })
	return row, nil
}

// Limpiar empties the collection (e.g. when the selected local changes).
func (s *InventarioSlice) Limpiar() {
	s.apply(func(st InventarioState) InventarioState {
		st.ProductosLocal = nil
		return st
	})
}

// LimpiarError clears the error field.
func (s *InventarioSlice) LimpiarError() {
	s.apply(func(st InventarioState) InventarioState {
		st.Error = ""
		return st
	})
}
