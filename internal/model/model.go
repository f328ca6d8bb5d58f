// Package model defines client-side representations of store-admin server resources.
package model

// User is the authenticated account as reported by the login endpoint.
type User struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginRequest carries credentials for POST /auth/login.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// AuthResponse is the login payload: bearer token plus user identity.
type AuthResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Local is a physical point-of-sale location. ID is zero until the server
// assigns one; timestamps stay in the server's wire format.
type Local struct {
	ID        int64  `json:"id,omitempty"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Ciudad    string `json:"ciudad,omitempty"`
	Activo    bool   `json:"activo,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Producto is a catalog product with its base (store-independent) price.
type Producto struct {
	ID          int64   `json:"id,omitempty"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion,omitempty"`
	PrecioBase  float64 `json:"precioBase"`
	Categoria   string  `json:"categoria,omitempty"`
	SKU         string  `json:"sku,omitempty"`
	Activo      bool    `json:"activo,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// ProductoLocal links one product to one local with store-specific stock
// and price. The server enforces uniqueness of the (producto, local) pair.
type ProductoLocal struct {
	ID          int64    `json:"id,omitempty"`
	Producto    Producto `json:"producto"`
	Local       Local    `json:"local"`
	Stock       int      `json:"stock"`
	StockMinimo int      `json:"stockMinimo"`
	PrecioVenta float64  `json:"precioVenta"`
	Activo      bool     `json:"activo,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// StockStatus is derived client-side from stock against the minimum; it is
// never stored.
type StockStatus string

const (
	SinStock  StockStatus = "SIN_STOCK"
	StockBajo StockStatus = "STOCK_BAJO"
	EnStock   StockStatus = "EN_STOCK"
)

// Status derives the stock status: empty, at-or-below minimum, or fine.
func (pl ProductoLocal) Status() StockStatus {
	switch {
	case pl.Stock == 0:
		return SinStock
	case pl.Stock <= pl.StockMinimo:
		return StockBajo
	default:
		return EnStock
	}
}

// AsignarProductoRequest creates a producto-local assignment.
type AsignarProductoRequest struct {
	ProductoID  int64   `json:"productoId"`
	LocalID     int64   `json:"localId"`
	Stock       int     `json:"stock"`
	PrecioVenta float64 `json:"precioVenta"`
	StockMinimo int     `json:"stockMinimo"`
}

// ActualizarStockRequest sets an absolute stock value.
type ActualizarStockRequest struct {
	ProductoID int64 `json:"productoId"`
	LocalID    int64 `json:"localId"`
	NuevoStock int   `json:"nuevoStock"`
}

// AumentarStockRequest increments stock by a relative quantity; the server
// computes the new absolute value.
type AumentarStockRequest struct {
	ProductoID int64 `json:"productoId"`
	LocalID    int64 `json:"localId"`
	Cantidad   int   `json:"cantidad"`
}

// ActualizarPrecioRequest changes the store-specific sale price.
type ActualizarPrecioRequest struct {
	ProductoID  int64   `json:"productoId"`
	LocalID     int64   `json:"localId"`
	NuevoPrecio float64 `json:"nuevoPrecio"`
}

// Mensaje is the generic {message} acknowledgement some endpoints return.
type Mensaje struct {
	Message string `json:"message"`
}

// SKUDisponibilidad reports whether a SKU is free to use.
type SKUDisponibilidad struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}

// StockActual is the single-pair stock lookup payload.
type StockActual struct {
	Stock int `json:"stock"`
}

// ValorInventario is the inventory valuation payload for one local.
type ValorInventario struct {
	Valor float64 `json:"valor"`
}

// ResumenInventario summarizes one local's inventory counts and value.
type ResumenInventario struct {
	TotalProductos       int     `json:"totalProductos"`
	ProductosStockBajo   int     `json:"productosStockBajo"`
	ProductosSinStock    int     `json:"productosSinStock"`
	ValorTotalInventario float64 `json:"valorTotalInventario"`
}
