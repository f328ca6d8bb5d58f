package state

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/robertroman/store-admin-console/internal/api"
	"github.com/robertroman/store-admin-console/internal/model"
	"github.com/robertroman/store-admin-console/internal/service"
)

// DashboardState holds the last fetched read models for one local. They are
// never mutated client-side, only replaced by a fresh fetch.
type DashboardState struct {
	Datos   *model.DashboardData
	Alertas []model.AlertaStock
	Resumen *model.ResumenRapido
	Loading bool
	Error   string
}

func dashboardPending(s DashboardState) DashboardState {
	s.Loading = true
	s.Error = ""
	return s
}

func dashboardRejected(s DashboardState, msg string) DashboardState {
	s.Loading = false
	s.Error = msg
	return s
}

func dashboardFetched(s DashboardState, d model.DashboardData) DashboardState {
	s.Loading = false
	s.Datos = &d
	return s
}

// DashboardSlice holds the dashboard state and runs its async actions.
type DashboardSlice struct {
	mu  sync.Mutex
	st  DashboardState
	svc service.DashboardService
	log *zap.Logger
}

// NewDashboardSlice constructs the slice over its service.
func NewDashboardSlice(svc service.DashboardService, log *zap.Logger) *DashboardSlice {
	return &DashboardSlice{svc: svc, log: log}
}

// State returns a snapshot of the slice state.
func (s *DashboardSlice) State() DashboardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.st
	if st.Datos != nil {
		d := *st.Datos
		st.Datos = &d
	}
	if st.Resumen != nil {
		r := *st.Resumen
		st.Resumen = &r
	}
	return st
}

func (s *DashboardSlice) apply(f func(DashboardState) DashboardState) {
	s.mu.Lock()
	s.st = f(s.st)
	s.mu.Unlock()
}

func (s *DashboardSlice) fetch(call func() (model.DashboardData, error)) error {
	s.apply(dashboardPending)
	datos, err := call()
	if err != nil {
		msg := api.ErrorMessage(err, "Error al cargar el dashboard")
		s.log.Warn("fetch dashboard", zap.String("error", msg))
		s.apply(func(st DashboardState) DashboardState { return dashboardRejected(st, msg) })
		return err
	}
	s.apply(func(st DashboardState) DashboardState { return dashboardFetched(st, datos) })
	return nil
}

// FetchHoy replaces the aggregate with today's figures.
func (s *DashboardSlice) FetchHoy(ctx context.Context, localID int64) error {
	return s.fetch(func() (model.DashboardData, error) { return s.svc.Hoy(ctx, localID) })
}

// FetchMes replaces the aggregate with the current month's figures.
func (s *DashboardSlice) FetchMes(ctx context.Context, localID int64) error {
	return s.fetch(func() (model.DashboardData, error) { return s.svc.Mes(ctx, localID) })
}

// FetchRango replaces the aggregate with a custom date range.
func (s *DashboardSlice) FetchRango(ctx context.Context, localID int64, fechaInicio, fechaFin string) error {
	return s.fetch(func() (model.DashboardData, error) {
		return s.svc.Datos(ctx, localID, fechaInicio, fechaFin)
	})
}

// FetchAlertas replaces the stock alert list.
func (s *DashboardSlice) FetchAlertas(ctx context.Context, localID int64) error {
	s.apply(dashboardPending)
	alertas, err := s.svc.AlertasStock(ctx, localID)
	if err != nil {
		msg := api.ErrorMessage(err, "Error al cargar alertas de stock")
		s.apply(func(st DashboardState) DashboardState { return dashboardRejected(st, msg) })
		return err
	}
	s.apply(func(st DashboardState) DashboardState {
		st.Loading = false
		st.Alertas = alertas
		return st
	})
	return nil
}

// FetchResumen replaces the quick summary.
func (s *DashboardSlice) FetchResumen(ctx context.Context, localID int64) error {
	s.apply(dashboardPending)
	resumen, err := s.svc.Resumen(ctx, localID)
	if err != nil {
		msg := api.ErrorMessage(err, "Error al cargar el resumen")
		s.apply(func(st DashboardState) DashboardState { return dashboardRejected(st, msg) })
		return err
	}
	s.apply(func(st DashboardState) DashboardState {
		st.Loading = false
		st.Resumen = &resumen
		return st
	})
	return nil
}

// LimpiarError clears the error field.
func (s *DashboardSlice) LimpiarError() {
	s.apply(func(st DashboardState) DashboardState {
		st.Error = ""
		return st
	})
}
