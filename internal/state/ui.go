package state

import "sync"

// Vista enumerates the console's main views.
type Vista string

const (
	VistaDashboard  Vista = "dashboard"
	VistaProductos  Vista = "productos"
	VistaInventario Vista = "inventario"
	VistaVentas     Vista = "ventas"
	VistaLocales    Vista = "locales"
)

// Modal enumerates the interface's modal dialogs.
type Modal string

const (
	ModalCrearProducto   Modal = "crear-producto"
	ModalCrearLocal      Modal = "crear-local"
	ModalAsignarProducto Modal = "asignar-producto"
	ModalActualizarStock Modal = "actualizar-stock"
	ModalCrearVenta      Modal = "crear-venta"
)

// UIState is cross-cutting interface state; it never touches the server.
type UIState struct {
	SidebarAbierto bool
	VistaActual    Vista
	Modales        map[Modal]bool
}

// UISlice holds interface state behind synchronous transitions.
type UISlice struct {
	mu sync.Mutex
	st UIState
}

// NewUISlice starts with the sidebar open on the dashboard view.
func NewUISlice() *UISlice {
	return &UISlice{st: UIState{
		SidebarAbierto: true,
		VistaActual:    VistaDashboard,
		Modales:        map[Modal]bool{},
	}}
}

// State returns a snapshot of the interface state.
func (s *UISlice) State() UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.st
	modales := make(map[Modal]bool, len(st.Modales))
	for k, v := range st.Modales {
		modales[k] = v
	}
	st.Modales = modales
	return st
}

// ToggleSidebar flips the sidebar flag.
func (s *UISlice) ToggleSidebar() {
	s.mu.Lock()
	s.st.SidebarAbierto = !s.st.SidebarAbierto
	s.mu.Unlock()
}

// SetVista switches the active view.
func (s *UISlice) SetVista(v Vista) {
	s.mu.Lock()
	s.st.VistaActual = v
	s.mu.Unlock()
}

// AbrirModal shows one modal.
func (s *UISlice) AbrirModal(m Modal) {
	s.mu.Lock()
	s.st.Modales[m] = true
	s.mu.Unlock()
}

// CerrarModal hides one modal.
func (s *UISlice) CerrarModal(m Modal) {
	s.mu.Lock()
	delete(s.st.Modales, m)
	s.mu.Unlock()
}
