package model

// DashboardData is the full per-local aggregate for a date range. It is a
// read model: never mutated client-side, only re-fetched.
type DashboardData struct {
	TotalVentas          float64           `json:"totalVentas"`
	CantidadVentas       int64             `json:"cantidadVentas"`
	PromedioVenta        float64           `json:"promedioVenta"`
	ValorInventario      float64           `json:"valorInventario"`
	ProductosStockBajo   int               `json:"productosStockBajo"`
	ProductosSinStock    int               `json:"productosSinStock"`
	ProductosMasVendidos []ProductoVendido `json:"productosMasVendidos,omitempty"`
	VentasPorCategoria   []VentaCategoria  `json:"ventasPorCategoria,omitempty"`
}

// ProductoVendido ranks one assignment by units sold.
type ProductoVendido struct {
	ProductoLocal   ProductoLocal `json:"productoLocal"`
	CantidadVendida int64         `json:"cantidadVendida"`
}

// VentaCategoria breaks sales down by product category.
type VentaCategoria struct {
	Categoria       string  `json:"categoria"`
	CantidadVendida int64   `json:"cantidadVendida"`
	TotalVentas     float64 `json:"totalVentas"`
}

// AlertaStock flags an assignment that is out of or low on stock.
type AlertaStock struct {
	ProductoLocal ProductoLocal `json:"productoLocal"`
	TipoAlerta    string        `json:"tipoAlerta"`
	Mensaje       string        `json:"mensaje"`
}

// ResumenRapido is the compact "today at a glance" dashboard payload.
type ResumenRapido struct {
	VentasHoy          float64 `json:"ventasHoy"`
	CantidadVentasHoy  int64   `json:"cantidadVentasHoy"`
	PromedioVenta      float64 `json:"promedioVenta"`
	ValorInventario    float64 `json:"valorInventario"`
	ProductosStockBajo int     `json:"productosStockBajo"`
	ProductosSinStock  int     `json:"productosSinStock"`
}

// ComparacionMensual contrasts the current month against the previous one.
type ComparacionMensual struct {
	Periodo1Total         float64 `json:"periodo1Total"`
	Periodo1Cantidad      int64   `json:"periodo1Cantidad"`
	Periodo2Total         float64 `json:"periodo2Total"`
	Periodo2Cantidad      int64   `json:"periodo2Cantidad"`
	PorcentajeCambioTotal float64 `json:"porcentajeCambioTotal"`
}
