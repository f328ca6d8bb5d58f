package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductoService_PorID(t *testing.T) {
	t.Parallel()

	var cap capture
	c := newTestAPI(t, http.StatusOK, `{"id":7,"nombre":"Café","precioBase":3.5}`, &cap)
	svc := NewProductoService(c)

	p, err := svc.PorID(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, cap.method)
	require.Equal(t, "/productos/7", cap.path)
	require.Equal(t, "Café", p.Nombre)
}

func TestProductoService_PorCategoria_EscapesPath(t *testing.T) {
	t.Parallel()

	var cap capture
	c := newTestAPI(t, http.StatusOK, `[{"id":7,"categoria":"Aseo y Hogar"}]`, &cap)
	svc := NewProductoService(c)

	productos, err := svc.PorCategoria(context.Background(), "Aseo y Hogar")
	require.NoError(t, err)
	require.Equal(t, "/productos/categoria/Aseo y Hogar", cap.path)
	require.Len(t, productos, 1)
}

func TestProductoService_CheckSKU(t *testing.T) {
	t.Parallel()

	var cap capture
	c := newTestAPI(t, http.StatusOK, `{"available":false,"message":"SKU en uso"}`, &cap)
	svc := NewProductoService(c)

	disp, err := svc.CheckSKU(context.Background(), "ABC-123")
	require.NoError(t, err)
	require.Equal(t, "/productos/check-sku/ABC-123", cap.path)
	require.False(t, disp.Available)
}
