package main

import (
	"testing"

	"github.com/robertroman/store-admin-console/internal/model"
)

func TestParseItems(t *testing.T) {
	items, err := parseItems("7:2:10.5,3:1:4:0.5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items", len(items))
	}
	want := model.ItemVenta{ProductoID: 7, Cantidad: 2, PrecioUnitario: 10.5}
	if items[0] != want {
		t.Fatalf("item 0: %+v", items[0])
	}
	if items[1].DescuentoItem != 0.5 {
		t.Fatalf("item 1 descuento: %v", items[1].DescuentoItem)
	}
}

func TestParseItems_Errors(t *testing.T) {
	for _, spec := range []string{"", "  ", "7:2", "7:2:10:1:9", "x:2:10", "7:y:10", "7:2:z", "7:2:10:w"} {
		if _, err := parseItems(spec); err == nil {
			t.Fatalf("accepted %q", spec)
		}
	}
}
