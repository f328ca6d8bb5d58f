package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDashboardService_HoyYMes(t *testing.T) {
	t.Parallel()

	var cap capture
	c := newTestAPI(t, http.StatusOK,
		`{"totalVentas":120.5,"cantidadVentas":4,"promedioVenta":30.125,"valorInventario":900,"productosStockBajo":2,"productosSinStock":1}`, &cap)
	svc := NewDashboardService(c)

	d, err := svc.Hoy(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "/dashboard/local/1/hoy", cap.path)
	require.Equal(t, 120.5, d.TotalVentas)
	require.EqualValues(t, 4, d.CantidadVentas)

	_, err = svc.Mes(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "/dashboard/local/1/mes", cap.path)
}

func TestDashboardService_VentasPorCategoria(t *testing.T) {
	t.Parallel()

	var cap capture
	c := newTestAPI(t, http.StatusOK,
		`[{"categoria":"Bebidas","cantidadVendida":9,"totalVentas":45.5}]`, &cap)
	svc := NewDashboardService(c)

	categorias, err := svc.VentasPorCategoria(context.Background(), 1, "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, cap.method)
	require.Equal(t, "/dashboard/local/1/ventas-por-categoria", cap.path)
	require.Equal(t, "fechaFin=2026-08-31&fechaInicio=2026-08-01", cap.query)
	require.Len(t, categorias, 1)
	require.Equal(t, "Bebidas", categorias[0].Categoria)
}

func TestDashboardService_ComparacionMensual(t *testing.T) {
	t.Parallel()

	var cap capture
	c := newTestAPI(t, http.StatusOK,
		`{"periodo1Total":300,"periodo1Cantidad":10,"periodo2Total":200,"periodo2Cantidad":8,"porcentajeCambioTotal":50}`, &cap)
	svc := NewDashboardService(c)

	comp, err := svc.ComparacionMensual(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "/dashboard/local/1/comparacion-mensual", cap.path)
	require.Equal(t, float64(50), comp.PorcentajeCambioTotal)
}
