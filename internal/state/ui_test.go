package state

import "testing"

func TestUISlice_Defaults(t *testing.T) {
	s := NewUISlice()
	st := s.State()
	if !st.SidebarAbierto || st.VistaActual != VistaDashboard {
		t.Fatalf("unexpected defaults: %+v", st)
	}
}

func TestUISlice_Transitions(t *testing.T) {
	s := NewUISlice()

	s.ToggleSidebar()
	if s.State().SidebarAbierto {
		t.Fatalf("sidebar still open after toggle")
	}

	s.SetVista(VistaVentas)
	if s.State().VistaActual != VistaVentas {
		t.Fatalf("view not switched")
	}

	s.AbrirModal(ModalCrearVenta)
	if !s.State().Modales[ModalCrearVenta] {
		t.Fatalf("modal not opened")
	}
	s.CerrarModal(ModalCrearVenta)
	if s.State().Modales[ModalCrearVenta] {
		t.Fatalf("modal not closed")
	}
}

func TestUISlice_StateSnapshotIsDetached(t *testing.T) {
	s := NewUISlice()
	st := s.State()
	st.Modales[ModalCrearLocal] = true
	if s.State().Modales[ModalCrearLocal] {
		t.Fatalf("snapshot map aliases internal state")
	}
}
