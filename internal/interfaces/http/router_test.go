package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/auth"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/lookup"
	"github.com/jhoicas/Compras-api/internal/application/orders"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/infrastructure/memory"
	"github.com/jhoicas/Compras-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Compras-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Compras-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Compras-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newTestServer arma la API completa sobre el store en memoria.
func newTestServer(t *testing.T) (*fiber.App, *metrics.Metrics) {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repos()
	checker := lookup.NewChecker(repos.Suppliers, repos.Customers, repos.Products, repos.PurchaseOrders, repos.SaleOrders)
	m := metrics.New("test")
	settings := orders.Settings{
		Recorder:  m,
		Documents: pdf.NewOrderDocumentRenderer("Compras Test"),
		Logger:    zerolog.Nop(),
	}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SupplierUC: usecase.NewSupplierUseCase(repos.Suppliers, checker),
		CustomerUC: usecase.NewCustomerUseCase(repos.Customers, checker),
		ProductUC:  usecase.NewProductUseCase(repos.Products, checker),
		UserUC:     usecase.NewUserUseCase(store.Users()),
		PurchaseUC: orders.NewPurchaseUseCase(store, repos.PurchaseOrders, checker, settings),
		SaleUC:     orders.NewSaleUseCase(store, repos.SaleOrders, checker, settings),
		AuthUC:     auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		JWTSecret:  testJWTSecret,
		AppName:    "compras-api",
		Logger:     zerolog.Nop(),
		Metrics:    m,
	})
	return app, m
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func call(t *testing.T, app *fiber.App, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// seedCatalog crea proveedor 900 con el producto 1001 y devuelve el header de bodeguero.
func seedCatalog(t *testing.T, app *fiber.App) string {
	t.Helper()
	bodega := bearer(t, "bodeguero")
	resp := call(t, app, http.MethodPost, "/api/supps", bodega, dto.PartyRequest{TaxID: 900, Name: "Acme"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = call(t, app, http.MethodPost, "/api/supp/900/prod", bodega, dto.CreateProductRequest{PortNumber: 1001, Name: "Tornillo"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	return bodega
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas públicas y autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_WelcomeYHealth(t *testing.T) {
	app, _ := newTestServer(t)

	resp := call(t, app, http.MethodGet, "/", "", nil)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body["message"], "compras-api")

	resp = call(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestRouter_ApiRequiereToken(t *testing.T) {
	app, _ := newTestServer(t)

	resp := call(t, app, http.MethodGet, "/api/supps", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_RegisterLoginYMe(t *testing.T) {
	app, _ := newTestServer(t)

	resp := call(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: "Ana@Example.com", Password: "secreto123", Name: "Ana", Role: "bodeguero",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: "ana@example.com", Password: "secreto123",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "email duplicado sin importar mayúsculas")
	resp.Body.Close()

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ana@example.com", Password: "malo-malo"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[dto.LoginResponse](t, resp)
	require.NotEmpty(t, login.Token)

	resp = call(t, app, http.MethodGet, "/api/me", "Bearer "+login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decode[dto.UserResponse](t, resp)
	assert.Equal(t, "ana@example.com", me.Email)
	assert.Equal(t, "bodeguero", me.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// RBAC y mapeo de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_VendedorNoEscribeProveedores(t *testing.T) {
	app, _ := newTestServer(t)

	resp := call(t, app, http.MethodPost, "/api/supps", bearer(t, "vendedor"), dto.PartyRequest{TaxID: 1, Name: "X"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp2 := call(t, app, http.MethodGet, "/api/supps", bearer(t, "vendedor"), nil)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode, "la lectura está abierta a cualquier rol")
}

func TestRouter_BodegueroNoEscribeClientes(t *testing.T) {
	app, _ := newTestServer(t)

	resp := call(t, app, http.MethodPost, "/api/custs", bearer(t, "bodeguero"), dto.PartyRequest{TaxID: 1, Name: "X"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_ErroresDeDominio(t *testing.T) {
	app, _ := newTestServer(t)
	bodega := seedCatalog(t, app)

	resp := call(t, app, http.MethodGet, "/api/supp/12345", bodega, nil)
	notFound := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", notFound.Code)

	resp = call(t, app, http.MethodPost, "/api/supps", bodega, dto.PartyRequest{TaxID: 901, Name: "Acme"})
	dup := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", dup.Code)

	resp = call(t, app, http.MethodGet, "/api/supp/abc", bodega, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodDelete, "/api/supp/900", bodega, nil)
	conflict := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, "el proveedor aún tiene productos")
	assert.Equal(t, "CONFLICT", conflict.Code)

	resp = call(t, app, http.MethodPost, "/api/pos", bodega, dto.PurchaseOrderRequest{ProductPN: 1001, CostPrice: 0, Amount: 1})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPost, "/api/pos", bodega, dto.PurchaseOrderRequest{ProductPN: 7777, CostPrice: 10, Amount: 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de compra y venta
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_CompraConciliaYSeConsultaPorOrderID(t *testing.T) {
	app, m := newTestServer(t)
	bodega := seedCatalog(t, app)

	resp := call(t, app, http.MethodPost, "/api/pos", bodega, dto.PurchaseOrderRequest{ProductPN: 1001, CostPrice: 100, Amount: 10})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	po := decode[dto.PurchaseOrderResponse](t, resp)
	assert.Equal(t, int64(900), po.SupplierTaxID)
	assert.Equal(t, "Acme", po.SupplierName)
	assert.Equal(t, "Tornillo", po.ProductName)
	assert.Equal(t, "1000", po.TotalPrice.String())

	resp = call(t, app, http.MethodPost, "/api/pos", bodega, dto.PurchaseOrderRequest{ProductPN: 1001, CostPrice: 200, Amount: 10})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/supp/900/prod/1001", bodega, nil)
	prod := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, int64(150), prod.CostPrice)
	assert.Equal(t, int64(20), prod.Amount)

	resp = call(t, app, http.MethodGet, "/api/po/"+strconv.FormatInt(po.OrderID, 10), bodega, nil)
	byCode := decode[dto.PurchaseOrderResponse](t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, po.ID, byCode.ID, "order_id repetido resuelve a la orden más antigua")

	resp = call(t, app, http.MethodGet, "/api/pos", bodega, nil)
	list := decode[[]dto.PurchaseOrderResponse](t, resp)
	assert.Len(t, list, 2)

	resp = call(t, app, http.MethodGet, "/metrics", "", nil)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(raw), `test_orders_created_total{kind="purchase"} 2`)
	assert.NotNil(t, m.Registry())
}

func TestRouter_VentaDescuentaStockYRechazaSinStock(t *testing.T) {
	app, _ := newTestServer(t)
	bodega := seedCatalog(t, app)
	ventas := bearer(t, "vendedor")

	resp := call(t, app, http.MethodPost, "/api/pos", bodega, dto.PurchaseOrderRequest{ProductPN: 1001, CostPrice: 100, Amount: 10})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = call(t, app, http.MethodPost, "/api/custs", ventas, dto.PartyRequest{TaxID: 500, Name: "Cliente Uno"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPost, "/api/sos", ventas, dto.SaleOrderRequest{ProductPN: 1001, CustomerTaxID: 500, SalePrice: 150, Amount: 3})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	so := decode[dto.SaleOrderResponse](t, resp)
	assert.Equal(t, "Cliente Uno", so.CustomerName)

	resp = call(t, app, http.MethodPost, "/api/sos", ventas, dto.SaleOrderRequest{ProductPN: 1001, CustomerTaxID: 500, SalePrice: 150, Amount: 50})
	insuf := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", insuf.Code)

	resp = call(t, app, http.MethodGet, "/api/prods", ventas, nil)
	prods := decode[[]dto.ProductResponse](t, resp)
	require.Len(t, prods, 1)
	assert.Equal(t, int64(7), prods[0].Amount)
	assert.Equal(t, int64(150), prods[0].SalePrice)
	assert.Equal(t, int64(3), prods[0].SaleAmount)

	resp = call(t, app, http.MethodGet, "/api/so_id/"+strconv.FormatInt(so.ID, 10)+"/pdf", ventas, nil)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	resp = call(t, app, http.MethodDelete, "/api/so_id/"+strconv.FormatInt(so.ID, 10), ventas, nil)
	deleted := decode[bool](t, resp)
	assert.True(t, deleted)

	resp = call(t, app, http.MethodGet, "/api/supp/900/prod/1001", ventas, nil)
	prod := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, int64(7), prod.Amount, "borrar la venta no devuelve stock")
}

func TestRouter_EditarCompraNoReconcilia(t *testing.T) {
	app, _ := newTestServer(t)
	bodega := seedCatalog(t, app)

	resp := call(t, app, http.MethodPost, "/api/pos", bodega, dto.PurchaseOrderRequest{ProductPN: 1001, CostPrice: 100, Amount: 10})
	po := decode[dto.PurchaseOrderResponse](t, resp)

	resp = call(t, app, http.MethodPatch, "/api/po_id/"+strconv.FormatInt(po.ID, 10), bodega, dto.PurchaseOrderRequest{ProductPN: 1001, CostPrice: 300, Amount: 5})
	edited := decode[dto.PurchaseOrderResponse](t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(300), edited.CostPrice)
	assert.Equal(t, po.UID, edited.UID)

	resp = call(t, app, http.MethodGet, "/api/supp/900/prod/1001", bodega, nil)
	prod := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, int64(100), prod.CostPrice)
	assert.Equal(t, int64(10), prod.Amount)
}

func TestRouter_RequestIDSePropaga(t *testing.T) {
	app, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-42")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "req-42", resp.Header.Get(apphttp.HeaderRequestID))

	resp2 := call(t, app, http.MethodGet, "/health", "", nil)
	defer resp2.Body.Close()
	assert.NotEmpty(t, resp2.Header.Get(apphttp.HeaderRequestID))
}
