package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robertroman/store-admin-console/internal/model"
)

func TestVentaService_Crear(t *testing.T) {
	t.Parallel()

	var cap capture
	c := newTestAPI(t, http.StatusCreated,
		`{"id":5,"total":23,"estado":"COMPLETADA","local":{"id":1,"nombre":"Centro"},"fechaVenta":"2026-08-30T12:00:00"}`, &cap)
	svc := NewVentaService(c)

	venta, err := svc.Crear(context.Background(), model.CrearVentaRequest{
		LocalID: 1,
		Items: []model.ItemVenta{
			{ProductoID: 7, Cantidad: 2, PrecioUnitario: 10, DescuentoItem: 1},
		},
		MetodoPago: model.PagoEfectivo,
		Impuestos:  2,
		Descuento:  3,
	})
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, cap.method)
	require.Equal(t, "/ventas", cap.path)
	require.EqualValues(t, 1, cap.body["localId"])
	require.Equal(t, "EFECTIVO", cap.body["metodoPago"])
	require.NotContains(t, cap.body, "total") // only components travel
	require.Equal(t, float64(23), venta.Total)
	require.Equal(t, model.VentaCompletada, venta.Estado)
}

func TestVentaService_Cancelar(t *testing.T) {
	t.Parallel()

	var cap capture
	c := newTestAPI(t, http.StatusOK,
		`{"id":5,"estado":"CANCELADA","local":{"id":1,"nombre":"Centro"},"fechaVenta":"2026-08-30T12:00:00"}`, &cap)
	svc := NewVentaService(c)

	venta, err := svc.Cancelar(context.Background(), 5, "cliente se arrepintió")
	require.NoError(t, err)
	require.Equal(t, http.MethodPatch, cap.method)
	require.Equal(t, "/ventas/5/cancelar", cap.path)
	require.Equal(t, "cliente se arrepintió", cap.body["motivo"])
	require.Equal(t, model.VentaCancelada, venta.Estado)
}

func TestVentaService_PorPeriodo(t *testing.T) {
	t.Parallel()

	var cap capture
	c := newTestAPI(t, http.StatusOK, `[]`, &cap)
	svc := NewVentaService(c)

	_, err := svc.PorPeriodo(context.Background(), 1, "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Equal(t, "/ventas/local/1/periodo", cap.path)
	require.Equal(t, "fechaFin=2026-08-31&fechaInicio=2026-08-01", cap.query)
}

func TestVentaService_PorIDYHoy(t *testing.T) {
	t.Parallel()

	var cap capture
	c := newTestAPI(t, http.StatusOK,
		`{"id":5,"total":23,"estado":"COMPLETADA","local":{"id":1},"fechaVenta":"2026-08-30T12:00:00"}`, &cap)
	svc := NewVentaService(c)

	venta, err := svc.PorID(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, cap.method)
	require.Equal(t, "/ventas/5", cap.path)
	require.EqualValues(t, 5, venta.ID)

	var cap2 capture
	c2 := newTestAPI(t, http.StatusOK, `[]`, &cap2)
	_, err = NewVentaService(c2).Hoy(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "/ventas/local/1/hoy", cap2.path)
}

func TestVentaService_Estadisticas(t *testing.T) {
	t.Parallel()

	var cap capture
	c := newTestAPI(t, http.StatusOK, `{"totalVentas":100,"cantidadVentas":3}`, &cap)
	svc := NewVentaService(c)

	est, err := svc.Estadisticas(context.Background(), 1, "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Equal(t, "/ventas/local/1/estadisticas", cap.path)
	require.Equal(t, "fechaFin=2026-08-31&fechaInicio=2026-08-01", cap.query)
	require.Equal(t, float64(100), est.TotalVentas)

	_, err = svc.EstadisticasHoy(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "/ventas/local/1/estadisticas/hoy", cap.path)

	_, err = svc.EstadisticasMes(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "/ventas/local/1/estadisticas/mes", cap.path)
}
