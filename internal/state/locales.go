package state

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/robertroman/store-admin-console/internal/api"
	"github.com/robertroman/store-admin-console/internal/model"
	"github.com/robertroman/store-admin-console/internal/service"
)

// LocalesState is the slice state for stores ("locales"). Seleccionado is
// independent of Loading/Error: it changes only by explicit selection or
// the auto-select rule applied when a list arrives.
type LocalesState struct {
	Locales      []model.Local
	Seleccionado *model.Local
	Loading      bool
	Error        string
}

// localesPending marks the slice busy and clears any prior error.
func localesPending(s LocalesState) LocalesState {
	s.Loading = true
	s.Error = ""
	return s
}

// localesRejected records the failure message; the collection is untouched.
func localesRejected(s LocalesState, msg string) LocalesState {
	s.Loading = false
	s.Error = msg
	return s
}

// localesFetched replaces the collection and auto-selects the first entry
// when nothing is selected yet. This cross-field rule fires only here.
func localesFetched(s LocalesState, locales []model.Local) LocalesState {
	s.Loading = false
	s.Locales = locales
	if s.Seleccionado == nil && len(locales) > 0 {
		first := locales[0]
		s.Seleccionado = &first
	}
	return s
}

// localesCreated appends the server-confirmed local.
func localesCreated(s LocalesState, local model.Local) LocalesState {
	s.Loading = false
	s.Locales = append(s.Locales[:len(s.Locales):len(s.Locales)], local)
	return s
}

// localesUpdated replaces the matching entry in place; an unknown id is a
// defined no-op, not an error.
func localesUpdated(s LocalesState, local model.Local) LocalesState {
	s.Loading = false
	for i := range s.Locales {
		if s.Locales[i].ID == local.ID {
			updated := append([]model.Local(nil), s.Locales...)
			updated[i] = local
			s.Locales = updated
			break
		}
	}
	return s
}

// LocalesSlice holds the locales state and runs its async actions.
type LocalesSlice struct {
	mu  sync.Mutex
	st  LocalesState
	svc service.LocalService
	log *zap.Logger
}

// NewLocalesSlice constructs the slice over its service.
func NewLocalesSlice(svc service.LocalService, log *zap.Logger) *LocalesSlice {
	return &LocalesSlice{svc: svc, log: log}
}

// State returns a snapshot of the slice state.
func (s *LocalesSlice) State() LocalesState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.st
	if st.Seleccionado != nil {
		sel := *st.Seleccionado
		st.Seleccionado = &sel
	}
	return st
}

func (s *LocalesSlice) apply(f func(LocalesState) LocalesState) {
	s.mu.Lock()
	s.st = f(s.st)
	s.mu.Unlock()
}

// FetchMisLocales loads the user's locales, replacing the collection.
func (s *LocalesSlice) FetchMisLocales(ctx context.Context) error {
	s.apply(localesPending)
	locales, err := s.svc.MisLocales(ctx)
	if err != nil {
		msg := api.ErrorMessage(err, "Error al cargar locales")
		s.log.Warn("fetch locales", zap.String("error", msg))
		s.apply(func(st LocalesState) LocalesState { return localesRejected(st, msg) })
		return err
	}
	s.apply(func(st LocalesState) LocalesState { return localesFetched(st, locales) })
	return nil
}

// Crear registers a local and appends the confirmed entity.
func (s *LocalesSlice) Crear(ctx context.Context, local model.Local) (model.Local, error) {
	s.apply(localesPending)
	created, err := s.svc.Crear(ctx, local)
	if err != nil {
		msg := api.ErrorMessage(err, "Error al crear local")
		s.apply(func(st LocalesState) LocalesState { return localesRejected(st, msg) })
		return model.Local{}, err
	}
	s.apply(func(st LocalesState) LocalesState { return localesCreated(st, created) })
	return created, nil
}

// Actualizar round-trips a partial update and merges the result by id.
func (s *LocalesSlice) Actualizar(ctx context.Context, id int64, cambios model.Local) (model.Local, error) {
	s.apply(localesPending)
	updated, err := s.svc.Actualizar(ctx, id, cambios)
	if err != nil {
		msg := api.ErrorMessage(err, "Error al actualizar local")
		s.apply(func(st LocalesState) LocalesState { return localesRejected(st, msg) })
		return model.Local{}, err
	}
	s.apply(func(st LocalesState) LocalesState { return localesUpdated(st, updated) })
	return updated, nil
}

// Seleccionar sets the selected local explicitly.
func (s *LocalesSlice) Seleccionar(local model.Local) {
	s.apply(func(st LocalesState) LocalesState {
		st.Seleccionado = &local
		return st
	})
}

// LimpiarSeleccion clears the selection explicitly.
func (s *LocalesSlice) LimpiarSeleccion() {
	s.apply(func(st LocalesState) LocalesState {
		st.Seleccionado = nil
		return st
	})
}

// LimpiarError clears the error field.
func (s *LocalesSlice) LimpiarError() {
	s.apply(func(st LocalesState) LocalesState {
		st.Error = ""
		return st
	})
}
