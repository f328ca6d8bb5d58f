// cmd/console/render.go
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/robertroman/store-admin-console/internal/model"
	"github.com/robertroman/store-admin-console/internal/state"
)

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// parseItems turns "productoId:cantidad:precio[:descuento],..." into draft
// sale lines. The preview and the server both ignore invalid lines, but a
// syntactically broken spec is rejected here.
func parseItems(spec string) ([]model.ItemVenta, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("need -items (productoId:cantidad:precio[:descuento],...)")
	}
	var items []model.ItemVenta
	for _, raw := range strings.Split(spec, ",") {
		parts := strings.Split(strings.TrimSpace(raw), ":")
		if len(parts) < 3 || len(parts) > 4 {
			return nil, fmt.Errorf("bad item %q", raw)
		}
		productoID, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad productoId in %q", raw)
		}
		cantidad, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("bad cantidad in %q", raw)
		}
		precio, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("bad precio in %q", raw)
		}
		item := model.ItemVenta{ProductoID: productoID, Cantidad: cantidad, PrecioUnitario: precio}
		if len(parts) == 4 {
			descuento, err := strconv.ParseFloat(parts[3], 64)
			if err != nil {
				return nil, fmt.Errorf("bad descuento in %q", raw)
			}
			item.DescuentoItem = descuento
		}
		items = append(items, item)
	}
	return items, nil
}

func printLocales(st state.LocalesState) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tCIUDAD\tACTIVO\t")
	for _, l := range st.Locales {
		marker := ""
		if st.Seleccionado != nil && st.Seleccionado.ID == l.ID {
			marker = " *"
		}
		fmt.Fprintf(w, "%d%s\t%s\t%s\t%t\t\n", l.ID, marker, l.Nombre, l.Ciudad, l.Activo)
	}
	_ = w.Flush()
}

func printProductos(st state.ProductosState) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tCATEGORIA\tSKU\tPRECIO BASE\t")
	for _, p := range st.Productos {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t\n", p.ID, p.Nombre, p.Categoria, p.SKU, p.PrecioBase)
	}
	_ = w.Flush()
}

func printInventario(st state.InventarioState) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCTO\tSTOCK\tMINIMO\tPRECIO\tESTADO\t")
	for _, pl := range st.ProductosLocal {
		fmt.Fprintf(w, "%s (%d)\t%d\t%d\t%.2f\t%s\t\n",
			pl.Producto.Nombre, pl.Producto.ID, pl.Stock, pl.StockMinimo, pl.PrecioVenta, pl.Status())
	}
	_ = w.Flush()
}

func printVentas(st state.VentasState) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFECHA\tESTADO\tPAGO\tTOTAL\t")
	for _, v := range st.Ventas {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t\n", v.ID, v.FechaVenta, v.Estado, v.MetodoPago, v.Total)
	}
	_ = w.Flush()
}

func printDashboard(st state.DashboardState) {
	if st.Datos == nil {
		fmt.Println("sin datos")
		return
	}
	d := st.Datos
	fmt.Printf("ventas: %.2f (%d operaciones, promedio %.2f)\n", d.TotalVentas, d.CantidadVentas, d.PromedioVenta)
	fmt.Printf("inventario: %.2f (stock bajo: %d, sin stock: %d)\n", d.ValorInventario, d.ProductosStockBajo, d.ProductosSinStock)
	if len(d.ProductosMasVendidos) > 0 {
		fmt.Println("más vendidos:")
		for _, pv := range d.ProductosMasVendidos {
			fmt.Printf("  %s: %d\n", pv.ProductoLocal.Producto.Nombre, pv.CantidadVendida)
		}
	}
	if len(d.VentasPorCategoria) > 0 {
		fmt.Println("por categoría:")
		for _, vc := range d.VentasPorCategoria {
			fmt.Printf("  %s: %.2f (%d uds)\n", vc.Categoria, vc.TotalVentas, vc.CantidadVendida)
		}
	}
}
