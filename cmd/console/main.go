// Command console is the terminal administrative console for the
// store-admin backend: locales, catalog, per-local inventory, sales and
// dashboard, all backed by the remote HTTP API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/robertroman/store-admin-console/internal/api"
	"github.com/robertroman/store-admin-console/internal/config"
	"github.com/robertroman/store-admin-console/internal/errs"
	"github.com/robertroman/store-admin-console/internal/model"
	"github.com/robertroman/store-admin-console/internal/service"
	"github.com/robertroman/store-admin-console/internal/session"
	"github.com/robertroman/store-admin-console/internal/state"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func usage() {
	fmt.Fprintf(os.Stderr, `store-admin console
Usage:
  console [-env file] [-api URL] [-debug] <cmd> [args]

Commands:
  version
  login       -u <usuario o email> -p <password>
  logout
  whoami
  locales     list | ver | create | update | buscar | activar | desactivar | ciudades
  productos   list | ver | create | buscar | categoria | categorias | check-sku
  inventario  list | asignar | stock | consultar | aumentar | precio |
              stock-bajo | sin-stock | valor | resumen                  [-local id]
  ventas      list | hoy | periodo | ver | crear | cancelar | estadisticas  [-local id]
  dashboard   hoy | mes | rango | resumen | alertas | top | categorias |
              comparacion                                               [-local id]
`)
	os.Exit(2)
}

// main wires config, session, API client and the root state container,
// then dispatches one subcommand.
func main() {
	envFile := flag.String("env", "", "path to .env file (optional)")
	apiURL := flag.String("api", "", "API base URL (overrides STORE_ADMIN_API_URL)")
	debug := flag.Bool("debug", false, "log every request")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fail(err)
	}
	if *apiURL != "" {
		cfg.APIURL = *apiURL
	}

	logger := zap.NewNop()
	if *debug || cfg.Debug {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()

	sess := session.NewStore()
	client := api.NewClient(api.Config{
		BaseURL: cfg.APIURL,
		Timeout: cfg.Timeout,
		Tokens:  sess,
		Logger:  logger,
	})
	svcs := state.Services{
		Auth:          service.NewAuthService(client),
		Locales:       service.NewLocalService(client),
		Productos:     service.NewProductoService(client),
		ProductoLocal: service.NewProductoLocalService(client),
		Ventas:        service.NewVentaService(client),
		Dashboard:     service.NewDashboardService(client),
	}
	root := state.NewRoot(svcs, sess, logger)

	// Generous outer bound; each request has its own client timeout.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout+30*time.Second)
	defer cancel()

	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	switch cmd {
	case "version":
		fmt.Printf("console %s (%s)\n", version, buildDate)
	case "login":
		cmdLogin(ctx, root, args)
	case "logout":
		cmdLogout(root)
	case "whoami":
		cmdWhoami(root, sess)
	case "locales":
		cmdLocales(ctx, root, svcs, args)
	case "productos":
		cmdProductos(ctx, root, svcs, args)
	case "inventario":
		cmdInventario(ctx, root, svcs, args)
	case "ventas":
		cmdVentas(ctx, root, svcs, args)
	case "dashboard":
		cmdDashboard(ctx, root, svcs, args)
	default:
		usage()
	}
}

func cmdLogin(ctx context.Context, root *state.Root, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	u := fs.String("u", "", "username or email")
	p := fs.String("p", "", "password")
	_ = fs.Parse(args)
	if *u == "" || *p == "" {
		fmt.Fprintln(os.Stderr, "need -u and -p")
		os.Exit(1)
	}
	if err := root.Auth.Login(ctx, model.LoginRequest{UsernameOrEmail: *u, Password: *p}); err != nil {
		failState(root.Auth.State().Error, err)
	}
	st := root.Auth.State()
	fmt.Printf("sesión iniciada como %s\n", st.Usuario.Username)
}

func cmdLogout(root *state.Root) {
	if err := root.Auth.Logout(); err != nil {
		fail(err)
	}
	fmt.Println("sesión cerrada")
}

func cmdWhoami(root *state.Root, sess *session.Store) {
	st := root.Auth.State()
	if !st.Autenticado {
		fmt.Println("anónimo")
		return
	}
	fmt.Printf("usuario: %s <%s>\n", st.Usuario.Username, st.Usuario.Email)
	if claims, err := sess.Claims(); err == nil && !claims.ExpiresAt.IsZero() {
		// informational only; an expired token is still "authenticated"
		// until the server says otherwise
		fmt.Printf("token expira: %s\n", claims.ExpiresAt.UTC().Format(time.RFC3339))
	}
}

func cmdLocales(ctx context.Context, root *state.Root, svcs state.Services, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}
	switch sub {
	case "list":
		if err := root.Locales.FetchMisLocales(ctx); err != nil {
			failState(root.Locales.State().Error, err)
		}
		printLocales(root.Locales.State())
	case "create":
		fs := flag.NewFlagSet("locales create", flag.ExitOnError)
		nombre := fs.String("nombre", "", "store name (required)")
		direccion := fs.String("direccion", "", "address")
		telefono := fs.String("telefono", "", "phone")
		ciudad := fs.String("ciudad", "", "city")
		_ = fs.Parse(args)
		if *nombre == "" {
			fmt.Fprintln(os.Stderr, "need -nombre")
			os.Exit(1)
		}
		local, err := root.Locales.Crear(ctx, model.Local{
			Nombre: *nombre, Direccion: *direccion, Telefono: *telefono, Ciudad: *ciudad,
		})
		if err != nil {
			failState(root.Locales.State().Error, err)
		}
		printJSON(local)
	case "update":
		fs := flag.NewFlagSet("locales update", flag.ExitOnError)
		id := fs.Int64("id", 0, "local id (required)")
		nombre := fs.String("nombre", "", "store name")
		direccion := fs.String("direccion", "", "address")
		telefono := fs.String("telefono", "", "phone")
		ciudad := fs.String("ciudad", "", "city")
		_ = fs.Parse(args)
		if *id <= 0 {
			fmt.Fprintln(os.Stderr, "need -id")
			os.Exit(1)
		}
		local, err := root.Locales.Actualizar(ctx, *id, model.Local{
			Nombre: *nombre, Direccion: *direccion, Telefono: *telefono, Ciudad: *ciudad,
		})
		if err != nil {
			failState(root.Locales.State().Error, err)
		}
		printJSON(local)
	case "ver":
		fs := flag.NewFlagSet("locales ver", flag.ExitOnError)
		id := fs.Int64("id", 0, "local id (required)")
		_ = fs.Parse(args)
		if *id <= 0 {
			fmt.Fprintln(os.Stderr, "need -id")
			os.Exit(1)
		}
		local, err := svcs.Locales.PorID(ctx, *id)
		if err != nil {
			fail(err)
		}
		printJSON(local)
	case "buscar":
		fs := flag.NewFlagSet("locales buscar", flag.ExitOnError)
		nombre := fs.String("nombre", "", "name to search (required)")
		_ = fs.Parse(args)
		if *nombre == "" {
			fmt.Fprintln(os.Stderr, "need -nombre")
			os.Exit(1)
		}
		locales, err := svcs.Locales.Buscar(ctx, *nombre)
		if err != nil {
			fail(err)
		}
		printLocales(state.LocalesState{Locales: locales})
	case "activar", "desactivar":
		fs := flag.NewFlagSet("locales "+sub, flag.ExitOnError)
		id := fs.Int64("id", 0, "local id (required)")
		_ = fs.Parse(args)
		if *id <= 0 {
			fmt.Fprintln(os.Stderr, "need -id")
			os.Exit(1)
		}
		var msg model.Mensaje
		var err error
		if sub == "activar" {
			msg, err = svcs.Locales.Activar(ctx, *id)
		} else {
			msg, err = svcs.Locales.Desactivar(ctx, *id)
		}
		if err != nil {
			fail(err)
		}
		fmt.Println(msg.Message)
	case "ciudades":
		ciudades, err := svcs.Locales.Ciudades(ctx)
		if err != nil {
			fail(err)
		}
		printJSON(ciudades)
	default:
		usage()
	}
}

func cmdProductos(ctx context.Context, root *state.Root, svcs state.Services, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}
	switch sub {
	case "list":
		if err := root.Productos.Fetch(ctx); err != nil {
			failState(root.Productos.State().Error, err)
		}
		printProductos(root.Productos.State())
	case "create":
		fs := flag.NewFlagSet("productos create", flag.ExitOnError)
		nombre := fs.String("nombre", "", "product name (required)")
		descripcion := fs.String("descripcion", "", "description")
		precio := fs.Float64("precio", 0, "base price")
		categoria := fs.String("categoria", "", "category")
		sku := fs.String("sku", "", "SKU")
		_ = fs.Parse(args)
		if *nombre == "" || *precio < 0 {
			fmt.Fprintln(os.Stderr, "need -nombre and a non-negative -precio")
			os.Exit(1)
		}
		p, err := root.Productos.Crear(ctx, model.Producto{
			Nombre: *nombre, Descripcion: *descripcion, PrecioBase: *precio,
			Categoria: *categoria, SKU: *sku,
		})
		if err != nil {
			failState(root.Productos.State().Error, err)
		}
		printJSON(p)
	case "buscar":
		fs := flag.NewFlagSet("productos buscar", flag.ExitOnError)
		nombre := fs.String("nombre", "", "name to search (required)")
		_ = fs.Parse(args)
		if *nombre == "" {
			fmt.Fprintln(os.Stderr, "need -nombre")
			os.Exit(1)
		}
		if err := root.Productos.Buscar(ctx, *nombre); err != nil {
			failState(root.Productos.State().Error, err)
		}
		printProductos(root.Productos.State())
	case "ver":
		fs := flag.NewFlagSet("productos ver", flag.ExitOnError)
		id := fs.Int64("id", 0, "product id (required)")
		_ = fs.Parse(args)
		if *id <= 0 {
			fmt.Fprintln(os.Stderr, "need -id")
			os.Exit(1)
		}
		p, err := svcs.Productos.PorID(ctx, *id)
		if err != nil {
			fail(err)
		}
		printJSON(p)
	case "categoria":
		fs := flag.NewFlagSet("productos categoria", flag.ExitOnError)
		categoria := fs.String("categoria", "", "category name (required)")
		_ = fs.Parse(args)
		if *categoria == "" {
			fmt.Fprintln(os.Stderr, "need -categoria")
			os.Exit(1)
		}
		productos, err := svcs.Productos.PorCategoria(ctx, *categoria)
		if err != nil {
			fail(err)
		}
		printProductos(state.ProductosState{Productos: productos})
	case "categorias":
		if err := root.Productos.FetchCategorias(ctx); err != nil {
			fail(err)
		}
		printJSON(root.Productos.State().Categorias)
	case "check-sku":
		fs := flag.NewFlagSet("productos check-sku", flag.ExitOnError)
		sku := fs.String("sku", "", "SKU to check (required)")
		_ = fs.Parse(args)
		if *sku == "" {
			fmt.Fprintln(os.Stderr, "need -sku")
			os.Exit(1)
		}
		disp, err := svcs.Productos.CheckSKU(ctx, *sku)
		if err != nil {
			fail(err)
		}
		printJSON(disp)
	default:
		usage()
	}
}

func cmdInventario(ctx context.Context, root *state.Root, svcs state.Services, args []string) {
	fs := flag.NewFlagSet("inventario", flag.ExitOnError)
	localID := fs.Int64("local", 0, "local id (defaults to the auto-selected local)")
	productoID := fs.Int64("producto", 0, "product id")
	stock := fs.Int("stock", 0, "stock value")
	minimo := fs.Int("minimo", 0, "minimum stock")
	precio := fs.Float64("precio", 0, "sale price")
	cantidad := fs.Int("cantidad", 0, "quantity to add")

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}
	_ = fs.Parse(args)

	id := resolveLocal(ctx, root, *localID)

	switch sub {
	case "list":
		if err := root.Inventario.FetchPorLocal(ctx, id); err != nil {
			failState(root.Inventario.State().Error, err)
		}
		printInventario(root.Inventario.State())
	case "asignar":
		if *productoID <= 0 {
			fmt.Fprintln(os.Stderr, "need -producto")
			os.Exit(1)
		}
		row, err := root.Inventario.Asignar(ctx, model.AsignarProductoRequest{
			ProductoID: *productoID, LocalID: id,
			Stock: *stock, PrecioVenta: *precio, StockMinimo: *minimo,
		})
		if err != nil {
			failState(root.Inventario.State().Error, err)
		}
		printJSON(row)
	case "stock":
		if *productoID <= 0 {
			fmt.Fprintln(os.Stderr, "need -producto")
			os.Exit(1)
		}
		row, err := root.Inventario.ActualizarStock(ctx, model.ActualizarStockRequest{
			ProductoID: *productoID, LocalID: id, NuevoStock: *stock,
		})
		if err != nil {
			failState(root.Inventario.State().Error, err)
		}
		printJSON(row)
	case "aumentar":
		if *productoID <= 0 || *cantidad <= 0 {
			fmt.Fprintln(os.Stderr, "need -producto and a positive -cantidad")
			os.Exit(1)
		}
		if err := root.Inventario.AumentarStock(ctx, *productoID, id, *cantidad); err != nil {
			failState(root.Inventario.State().Error, err)
		}
		printInventario(root.Inventario.State())
	case "precio":
		if *productoID <= 0 || *precio <= 0 {
			fmt.Fprintln(os.Stderr, "need -producto and a positive -precio")
			os.Exit(1)
		}
		row, err := root.Inventario.ActualizarPrecio(ctx, model.ActualizarPrecioRequest{
			ProductoID: *productoID, LocalID: id, NuevoPrecio: *precio,
		})
		if err != nil {
			failState(root.Inventario.State().Error, err)
		}
		printJSON(row)
	case "consultar":
		if *productoID <= 0 {
			fmt.Fprintln(os.Stderr, "need -producto")
			os.Exit(1)
		}
		actual, err := svcs.ProductoLocal.Stock(ctx, *productoID, id)
		if err != nil {
			fail(err)
		}
		fmt.Printf("stock actual: %d\n", actual.Stock)
	case "stock-bajo":
		rows, err := svcs.ProductoLocal.StockBajo(ctx, id)
		if err != nil {
			fail(err)
		}
		printInventario(state.InventarioState{ProductosLocal: rows})
	case "sin-stock":
		rows, err := svcs.ProductoLocal.SinStock(ctx, id)
		if err != nil {
			fail(err)
		}
		printInventario(state.InventarioState{ProductosLocal: rows})
	case "valor":
		valor, err := svcs.ProductoLocal.ValorInventario(ctx, id)
		if err != nil {
			fail(err)
		}
		fmt.Printf("valor del inventario: %.2f\n", valor.Valor)
	case "resumen":
		resumen, err := svcs.ProductoLocal.Resumen(ctx, id)
		if err != nil {
			fail(err)
		}
		printJSON(resumen)
	default:
		usage()
	}
}

func cmdVentas(ctx context.Context, root *state.Root, svcs state.Services, args []string) {
	fs := flag.NewFlagSet("ventas", flag.ExitOnError)
	localID := fs.Int64("local", 0, "local id (defaults to the auto-selected local)")
	items := fs.String("items", "", "sale lines: productoId:cantidad:precio[:descuento],...")
	pago := fs.String("pago", string(model.PagoEfectivo), "payment method")
	descuento := fs.Float64("descuento", 0, "overall discount")
	impuestos := fs.Float64("impuestos", 0, "tax amount")
	notas := fs.String("notas", "", "notes")
	ventaID := fs.Int64("id", 0, "sale id")
	motivo := fs.String("motivo", "", "cancellation reason")
	desde := fs.String("desde", "", "range start (YYYY-MM-DD)")
	hasta := fs.String("hasta", "", "range end (YYYY-MM-DD)")
	mes := fs.Bool("mes", false, "aggregate the current month")

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}
	_ = fs.Parse(args)

	switch sub {
	case "list":
		id := resolveLocal(ctx, root, *localID)
		if err := root.Ventas.FetchPorLocal(ctx, id); err != nil {
			failState(root.Ventas.State().Error, err)
		}
		printVentas(root.Ventas.State())
	case "hoy":
		id := resolveLocal(ctx, root, *localID)
		ventas, err := svcs.Ventas.Hoy(ctx, id)
		if err != nil {
			fail(err)
		}
		printVentas(state.VentasState{Ventas: ventas})
	case "periodo":
		if *desde == "" || *hasta == "" {
			fmt.Fprintln(os.Stderr, "need -desde and -hasta")
			os.Exit(1)
		}
		id := resolveLocal(ctx, root, *localID)
		ventas, err := svcs.Ventas.PorPeriodo(ctx, id, *desde, *hasta)
		if err != nil {
			fail(err)
		}
		printVentas(state.VentasState{Ventas: ventas})
	case "ver":
		if *ventaID <= 0 {
			fmt.Fprintln(os.Stderr, "need -id")
			os.Exit(1)
		}
		venta, err := svcs.Ventas.PorID(ctx, *ventaID)
		if err != nil {
			fail(err)
		}
		printJSON(venta)
	case "crear":
		id := resolveLocal(ctx, root, *localID)
		lineas, err := parseItems(*items)
		if err != nil {
			fail(err)
		}
		preview := model.PreviewTotal(lineas, *impuestos, *descuento)
		fmt.Printf("total estimado: %.2f (el servidor calcula el definitivo)\n", preview)
		venta, err := root.Ventas.Crear(ctx, model.CrearVentaRequest{
			LocalID: id, Items: lineas, MetodoPago: model.MetodoPago(*pago),
			Descuento: *descuento, Impuestos: *impuestos, Observaciones: *notas,
		})
		if err != nil {
			failState(root.Ventas.State().Error, err)
		}
		fmt.Printf("venta %d registrada, total %.2f\n", venta.ID, venta.Total)
	case "cancelar":
		if *ventaID <= 0 || *motivo == "" {
			fmt.Fprintln(os.Stderr, "need -id and -motivo")
			os.Exit(1)
		}
		venta, err := root.Ventas.Cancelar(ctx, *ventaID, *motivo)
		if err != nil {
			failState(root.Ventas.State().Error, err)
		}
		printJSON(venta)
	case "estadisticas":
		id := resolveLocal(ctx, root, *localID)
		var est model.EstadisticasVentas
		var err error
		switch {
		case *desde != "" && *hasta != "":
			est, err = svcs.Ventas.Estadisticas(ctx, id, *desde, *hasta)
		case *mes:
			est, err = svcs.Ventas.EstadisticasMes(ctx, id)
		default:
			est, err = svcs.Ventas.EstadisticasHoy(ctx, id)
		}
		if err != nil {
			fail(err)
		}
		printJSON(est)
	default:
		usage()
	}
}

func cmdDashboard(ctx context.Context, root *state.Root, svcs state.Services, args []string) {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	localID := fs.Int64("local", 0, "local id (defaults to the auto-selected local)")
	desde := fs.String("desde", "", "range start (YYYY-MM-DD)")
	hasta := fs.String("hasta", "", "range end (YYYY-MM-DD)")

	sub := "hoy"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}
	_ = fs.Parse(args)

	id := resolveLocal(ctx, root, *localID)

	switch sub {
	case "hoy":
		if err := root.Dashboard.FetchHoy(ctx, id); err != nil {
			failState(root.Dashboard.State().Error, err)
		}
		printDashboard(root.Dashboard.State())
	case "mes":
		if err := root.Dashboard.FetchMes(ctx, id); err != nil {
			failState(root.Dashboard.State().Error, err)
		}
		printDashboard(root.Dashboard.State())
	case "rango":
		if *desde == "" || *hasta == "" {
			fmt.Fprintln(os.Stderr, "need -desde and -hasta")
			os.Exit(1)
		}
		if err := root.Dashboard.FetchRango(ctx, id, *desde, *hasta); err != nil {
			failState(root.Dashboard.State().Error, err)
		}
		printDashboard(root.Dashboard.State())
	case "resumen":
		if err := root.Dashboard.FetchResumen(ctx, id); err != nil {
			failState(root.Dashboard.State().Error, err)
		}
		printJSON(root.Dashboard.State().Resumen)
	case "alertas":
		if err := root.Dashboard.FetchAlertas(ctx, id); err != nil {
			failState(root.Dashboard.State().Error, err)
		}
		printJSON(root.Dashboard.State().Alertas)
	case "top":
		top, err := svcs.Dashboard.ProductosMasVendidos(ctx, id)
		if err != nil {
			fail(err)
		}
		printJSON(top)
	case "categorias":
		if *desde == "" || *hasta == "" {
			fmt.Fprintln(os.Stderr, "need -desde and -hasta")
			os.Exit(1)
		}
		categorias, err := svcs.Dashboard.VentasPorCategoria(ctx, id, *desde, *hasta)
		if err != nil {
			fail(err)
		}
		printJSON(categorias)
	case "comparacion":
		comparacion, err := svcs.Dashboard.ComparacionMensual(ctx, id)
		if err != nil {
			fail(err)
		}
		printJSON(comparacion)
	default:
		usage()
	}
}

// resolveLocal returns the explicitly requested local or falls back to the
// auto-selected one after loading the user's locales.
func resolveLocal(ctx context.Context, root *state.Root, localID int64) int64 {
	if localID > 0 {
		return localID
	}
	if sel := root.Locales.State().Seleccionado; sel != nil {
		return sel.ID
	}
	if err := root.Locales.FetchMisLocales(ctx); err != nil {
		failState(root.Locales.State().Error, err)
	}
	sel := root.Locales.State().Seleccionado
	if sel == nil {
		fmt.Fprintln(os.Stderr, "no hay locales; crea uno con 'locales create'")
		os.Exit(1)
	}
	return sel.ID
}

func fail(err error) {
	if errors.Is(err, errs.ErrNoSession) || errors.Is(err, errs.ErrUnauthorized) {
		fmt.Fprintln(os.Stderr, "no autenticado: usa 'login'")
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// failState prefers the slice's normalized message over the raw error.
func failState(msg string, err error) {
	if errors.Is(err, errs.ErrUnauthorized) {
		fmt.Fprintln(os.Stderr, "no autenticado: usa 'login'")
		os.Exit(1)
	}
	if msg != "" {
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
	fail(err)
}
