package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robertroman/store-admin-console/internal/model"
)

func TestLocalService_MisLocales(t *testing.T) {
	t.Parallel()

	var cap capture
	c := newTestAPI(t, http.StatusOK, `[{"id":1,"nombre":"Centro"},{"id":2,"nombre":"Norte"}]`, &cap)
	svc := NewLocalService(c)

	locales, err := svc.MisLocales(context.Background())
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, cap.method)
	require.Equal(t, "/locales/mis-locales", cap.path)
	require.Len(t, locales, 2)
	require.Equal(t, "Centro", locales[0].Nombre)
}

func TestLocalService_Crear_OmitsID(t *testing.T) {
	t.Parallel()

	var cap capture
	c := newTestAPI(t, http.StatusCreated, `{"id":7,"nombre":"Sur","activo":true}`, &cap)
	svc := NewLocalService(c)

	created, err := svc.Crear(context.Background(), model.Local{ID: 99, Nombre: "Sur", Ciudad: "Lima"})
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, cap.method)
	require.Equal(t, "/locales", cap.path)
	require.NotContains(t, cap.body, "id") // server assigns identity
	require.Equal(t, "Sur", cap.body["nombre"])
	require.EqualValues(t, 7, created.ID)
}

func TestLocalService_Actualizar(t *testing.T) {
	t.Parallel()

	var cap capture
	c := newTestAPI(t, http.StatusOK, `{"id":3,"nombre":"Renombrado"}`, &cap)
	svc := NewLocalService(c)

	updated, err := svc.Actualizar(context.Background(), 3, model.Local{Nombre: "Renombrado"})
	require.NoError(t, err)
	require.Equal(t, http.MethodPut, cap.method)
	require.Equal(t, "/locales/3", cap.path)
	require.Equal(t, "Renombrado", updated.Nombre)
}

func TestLocalService_Buscar_EscapesQuery(t *testing.T) {
	t.Parallel()

	var cap capture
	c := newTestAPI(t, http.StatusOK, `[]`, &cap)
	svc := NewLocalService(c)

	_, err := svc.Buscar(context.Background(), "tienda central")
	require.NoError(t, err)
	require.Equal(t, "/locales/buscar", cap.path)
	require.Equal(t, "nombre=tienda+central", cap.query)
}

func TestLocalService_DesactivarActivar(t *testing.T) {
	t.Parallel()

	var cap capture
	c := newTestAPI(t, http.StatusOK, `{"message":"ok"}`, &cap)
	svc := NewLocalService(c)

	_, err := svc.Desactivar(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, http.MethodDelete, cap.method)
	require.Equal(t, "/locales/4", cap.path)

	_, err = svc.Activar(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, http.MethodPatch, cap.method)
	require.Equal(t, "/locales/4/activar", cap.path)
}

func TestLocalService_PorID(t *testing.T) {
	t.Parallel()

	var cap capture
	c := newTestAPI(t, http.StatusOK, `{"id":3,"nombre":"Sur","ciudad":"Lima"}`, &cap)
	svc := NewLocalService(c)

	local, err := svc.PorID(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, cap.method)
	require.Equal(t, "/locales/3", cap.path)
	require.Equal(t, "Sur", local.Nombre)
}

func TestLocalService_Ciudades(t *testing.T) {
	t.Parallel()

	var cap capture
	c := newTestAPI(t, http.StatusOK, `["Lima","Cusco"]`, &cap)
	svc := NewLocalService(c)

	ciudades, err := svc.Ciudades(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/locales/ciudades", cap.path)
	require.Equal(t, []string{"Lima", "Cusco"}, ciudades)
}
