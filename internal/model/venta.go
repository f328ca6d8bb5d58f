package model

// EstadoVenta is the sale lifecycle status as stored by the server.
type EstadoVenta string

const (
	VentaPendiente  EstadoVenta = "PENDIENTE"
	VentaCompletada EstadoVenta = "COMPLETADA"
	VentaCancelada  EstadoVenta = "CANCELADA"
	VentaDevuelta   EstadoVenta = "DEVUELTA"
)

// MetodoPago enumerates accepted payment methods.
type MetodoPago string

const (
	PagoEfectivo       MetodoPago = "EFECTIVO"
	PagoTarjetaCredito MetodoPago = "TARJETA_CREDITO"
	PagoTarjetaDebito  MetodoPago = "TARJETA_DEBITO"
	PagoTransferencia  MetodoPago = "TRANSFERENCIA"
	PagoOtro           MetodoPago = "OTRO"
)

// Venta is a recorded sale. Total is always the server-computed value; the
// client never persists its own arithmetic.
type Venta struct {
	ID            int64          `json:"id,omitempty"`
	Local         Local          `json:"local"`
	Total         float64        `json:"total"`
	Subtotal      float64        `json:"subtotal,omitempty"`
	Impuestos     float64        `json:"impuestos,omitempty"`
	Descuento     float64        `json:"descuento,omitempty"`
	Estado        EstadoVenta    `json:"estado"`
	MetodoPago    MetodoPago     `json:"metodoPago,omitempty"`
	NumeroFactura string         `json:"numeroFactura,omitempty"`
	Observaciones string         `json:"observaciones,omitempty"`
	FechaVenta    string         `json:"fechaVenta"`
	Detalles      []DetalleVenta `json:"detalles,omitempty"`
}

// DetalleVenta is one persisted line of a sale.
type DetalleVenta struct {
	ID             int64         `json:"id,omitempty"`
	ProductoLocal  ProductoLocal `json:"productoLocal"`
	Cantidad       int           `json:"cantidad"`
	PrecioUnitario float64       `json:"precioUnitario"`
	Subtotal       float64       `json:"subtotal"`
	DescuentoItem  float64       `json:"descuentoItem,omitempty"`
}

// ItemVenta is a draft sale line as submitted to the server.
type ItemVenta struct {
	ProductoID     int64   `json:"productoId"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precioUnitario,omitempty"`
	DescuentoItem  float64 `json:"descuentoItem,omitempty"`
}

// Valido reports whether the line participates in a sale: a product must be
// chosen and both quantity and unit price must be positive.
func (it ItemVenta) Valido() bool {
	return it.ProductoID > 0 && it.Cantidad > 0 && it.PrecioUnitario > 0
}

// CrearVentaRequest is the POST /ventas body. Only components travel; the
// server recomputes the authoritative total.
type CrearVentaRequest struct {
	LocalID       int64       `json:"localId"`
	Items         []ItemVenta `json:"items"`
	MetodoPago    MetodoPago  `json:"metodoPago"`
	Descuento     float64     `json:"descuento,omitempty"`
	Impuestos     float64     `json:"impuestos,omitempty"`
	Observaciones string      `json:"observaciones,omitempty"`
}

// CancelarVentaRequest carries the mandatory cancellation reason.
type CancelarVentaRequest struct {
	Motivo string `json:"motivo"`
}

// EstadisticasVentas aggregates sales over a period.
type EstadisticasVentas struct {
	TotalVentas    float64 `json:"totalVentas"`
	CantidadVentas int64   `json:"cantidadVentas"`
	PromedioVenta  float64 `json:"promedioVenta"`
}

// PreviewTotal estimates the sale total for display while the form is being
// filled. Lines that are not yet valid contribute nothing. The server
// remains the source of truth for the persisted total.
func PreviewTotal(items []ItemVenta, impuestos, descuento float64) float64 {
	var subtotal float64
	for _, it := range items {
		if !it.Valido() {
			continue
		}
		subtotal += float64(it.Cantidad)*it.PrecioUnitario - it.DescuentoItem
	}
	return subtotal + impuestos - descuento
}
