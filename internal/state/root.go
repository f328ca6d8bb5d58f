// Package state holds the client-side state slices that mirror server
// resources. Each slice owns its collection plus loading/error flags and
// moves through pending/fulfilled/rejected on every async operation; a
// rejected settlement never touches the collection. Slices are
// independent: nothing reads another slice's state, and the only
// cross-slice effect (stock increment then inventory refetch) is explicit
// sequential orchestration inside the acting slice.
package state

import (
	"go.uber.org/zap"

	"github.com/robertroman/store-admin-console/internal/service"
	"github.com/robertroman/store-admin-console/internal/session"
)

// Services collects the per-entity services a Root needs.
type Services struct {
	Auth          service.AuthService
	Locales       service.LocalService
	Productos     service.ProductoService
	ProductoLocal service.ProductoLocalService
	Ventas        service.VentaService
	Dashboard     service.DashboardService
}

// Root composes every slice into one addressable state container. One Root
// is created at process start and injected into the view layer; there is
// no ambient singleton.
type Root struct {
	Auth       *AuthSlice
	Locales    *LocalesSlice
	Productos  *ProductosSlice
	Inventario *InventarioSlice
	Ventas     *VentasSlice
	Dashboard  *DashboardSlice
	UI         *UISlice
}

// NewRoot wires each slice to its service.
func NewRoot(svcs Services, sess *session.Store, log *zap.Logger) *Root {
	if log == nil {
		log = zap.NewNop()
	}
	return &Root{
		Auth:       NewAuthSlice(svcs.Auth, sess, log),
		Locales:    NewLocalesSlice(svcs.Locales, log),
		Productos:  NewProductosSlice(svcs.Productos, log),
		Inventario: NewInventarioSlice(svcs.ProductoLocal, log),
		Ventas:     NewVentasSlice(svcs.Ventas, log),
		Dashboard:  NewDashboardSlice(svcs.Dashboard, log),
		UI:         NewUISlice(),
	}
}
