package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/robertroman/store-admin-console/internal/api"
	"github.com/robertroman/store-admin-console/internal/model"
)

// LocalService defines operations over stores ("locales").
type LocalService interface {
	// MisLocales lists the locales owned by the authenticated user.
	MisLocales(ctx context.Context) ([]model.Local, error)
	// Crear registers a new local; the server assigns the id.
	Crear(ctx context.Context, local model.Local) (model.Local, error)
	// Actualizar sends a partial update for one local.
	Actualizar(ctx context.Context, id int64, cambios model.Local) (model.Local, error)
	// PorID fetches a single local.
	PorID(ctx context.Context, id int64) (model.Local, error)
	// Buscar searches locales by name.
	Buscar(ctx context.Context, nombre string) ([]model.Local, error)
	// Ciudades lists distinct cities across the user's locales.
	Ciudades(ctx context.Context) ([]string, error)
	// Desactivar flags a local inactive (never a removal).
	Desactivar(ctx context.Context, id int64) (model.Mensaje, error)
	// Activar re-enables a deactivated local.
	Activar(ctx context.Context, id int64) (model.Mensaje, error)
}

type LocalServiceImpl struct {
	api *api.Client
}

// NewLocalService constructs LocalService over the shared API client.
func NewLocalService(c *api.Client) *LocalServiceImpl {
	return &LocalServiceImpl{api: c}
}

func (s *LocalServiceImpl) MisLocales(ctx context.Context) ([]model.Local, error) {
	var out []model.Local
	if err := s.api.Get(ctx, "/locales/mis-locales", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LocalServiceImpl) Crear(ctx context.Context, local model.Local) (model.Local, error) {
	local.ID = 0 // server-assigned
	var out model.Local
	if err := s.api.Post(ctx, "/locales", local, &out); err != nil {
		return model.Local{}, err
	}
	return out, nil
}

func (s *LocalServiceImpl) Actualizar(ctx context.Context, id int64, cambios model.Local) (model.Local, error) {
	var out model.Local
	if err := s.api.Put(ctx, fmt.Sprintf("/locales/%d", id), cambios, &out); err != nil {
		return model.Local{}, err
	}
	return out, nil
}

func (s *LocalServiceImpl) PorID(ctx context.Context, id int64) (model.Local, error) {
	var out model.Local
	if err := s.api.Get(ctx, fmt.Sprintf("/locales/%d", id), &out); err != nil {
		return model.Local{}, err
	}
	return out, nil
}

func (s *LocalServiceImpl) Buscar(ctx context.Context, nombre string) ([]model.Local, error) {
	var out []model.Local
	path := "/locales/buscar?nombre=" + url.QueryEscape(nombre)
	if err := s.api.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LocalServiceImpl) Ciudades(ctx context.Context) ([]string, error) {
	var out []string
	if err := s.api.Get(ctx, "/locales/ciudades", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LocalServiceImpl) Desactivar(ctx context.Context, id int64) (model.Mensaje, error) {
	var out model.Mensaje
	if err := s.api.Delete(ctx, fmt.Sprintf("/locales/%d", id), &out); err != nil {
		return model.Mensaje{}, err
	}
	return out, nil
}

func (s *LocalServiceImpl) Activar(ctx context.Context, id int64) (model.Mensaje, error) {
	var out model.Mensaje
	if err := s.api.Patch(ctx, fmt.Sprintf("/locales/%d/activar", id), nil, &out); err != nil {
		return model.Mensaje{}, err
	}
	return out, nil
}
