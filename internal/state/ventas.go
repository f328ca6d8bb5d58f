package state

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/robertroman/store-admin-console/internal/api"
	"github.com/robertroman/store-admin-console/internal/model"
	"github.com/robertroman/store-admin-console/internal/service"
)

// VentasState is the slice state for recorded sales.
type VentasState struct {
	Ventas  []model.Venta
	Loading bool
	Error   string
}

func ventasPending(s VentasState) VentasState {
	s.Loading = true
	s.Error = ""
	return s
}

func ventasRejected(s VentasState, msg string) VentasState {
	s.Loading = false
	s.Error = msg
	return s
}

func ventasFetched(s VentasState, ventas []model.Venta) VentasState {
	s.Loading = false
	s.Ventas = ventas
	return s
}

// ventaCreated appends the sale as confirmed by the server; the server
// total in the payload is the persisted one.
func ventaCreated(s VentasState, v model.Venta) VentasState {
	s.Loading = false
	s.Ventas = append(s.Ventas[:len(s.Ventas):len(s.Ventas)], v)
	return s
}

// ventaReplaced merges a state-changing result (e.g. cancellation) by id;
// an unknown id is a defined no-op.
func ventaReplaced(s VentasState, v model.Venta) VentasState {
	s.Loading = false
	for i := range s.Ventas {
		if s.Ventas[i].ID == v.ID {
			updated := append([]model.Venta(nil), s.Ventas...)
			updated[i] = v
			s.Ventas = updated
			break
		}
	}
	return s
}

// VentasSlice holds the sales state and runs its async actions.
type VentasSlice struct {
	mu  sync.Mutex
	st  VentasState
	svc service.VentaService
	log *zap.Logger
}

// NewVentasSlice constructs the slice over its service.
func NewVentasSlice(svc service.VentaService, log *zap.Logger) *VentasSlice {
	return &VentasSlice{svc: svc, log: log}
}

// State returns a snapshot of the slice state.
func (s *VentasSlice) State() VentasState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st
}

func (s *VentasSlice) apply(f func(VentasState) VentasState) {
	s.mu.Lock()
	s.st = f(s.st)
	s.mu.Unlock()
}

// FetchPorLocal loads one local's sales, replacing the collection.
func (s *VentasSlice) FetchPorLocal(ctx context.Context, localID int64) error {
	s.apply(ventasPending)
	ventas, err := s.svc.PorLocal(ctx, localID)
	if err != nil {
		msg := api.ErrorMessage(err, "Error al cargar ventas")
		s.log.Warn("fetch ventas", zap.Int64("local", localID), zap.String("error", msg))
		s.apply(func(st VentasState) VentasState { return ventasRejected(st, msg) })
		return err
	}
	s.apply(func(st VentasState) VentasState { return ventasFetched(st, ventas) })
	return nil
}

// Crear submits a sale. Only components travel; the appended entity carries
// the server-computed total.
func (s *VentasSlice) Crear(ctx context.Context, req model.CrearVentaRequest) (model.Venta, error) {
	s.apply(ventasPending)
	venta, err := s.svc.Crear(ctx, req)
	if err != nil {
		msg := api.ErrorMessage(err, "Error al registrar la venta")
		s.apply(func(st VentasState) VentasState { return ventasRejected(st, msg) })
		return model.Venta{}, err
	}
	s.apply(func(st VentasState) VentasState { return ventaCreated(st, venta) })
	return venta, nil
}

// Cancelar cancels a sale with a reason and merges the result by id.
func (s *VentasSlice) Cancelar(ctx context.Context, id int64, motivo string) (model.Venta, error) {
	s.apply(ventasPending)
	venta, err := s.svc.Cancelar(ctx, id, motivo)
	if err != nil {
		msg := api.ErrorMessage(err, "Error al cancelar la venta")
		s.apply(func(st VentasState) VentasState { return ventasRejected(st, msg) })
		return model.Venta{}, err
	}
	s.apply(func(st VentasState) VentasState { return ventaReplaced(st, venta) })
	return venta, nil
}

// LimpiarError clears the error field.
func (s *VentasSlice) LimpiarError() {
	s.apply(func(st VentasState) VentasState {
		st.Error = ""
		return st
	})
}
