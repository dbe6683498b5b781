package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/orders"
	"github.com/jhoicas/Compras-api/internal/infrastructure/metrics"
)

func TestRecorder_CuentaEventos(t *testing.T) {
	m := metrics.New("test")
	m.OrderCreated(orders.KindPurchase, 33)
	m.OrderCreated(orders.KindPurchase, 11)
	m.OrderCreated(orders.KindSale, 10)
	m.ConcurrentUpdate(orders.KindSale)

	expected := `
# HELP test_order_units_total Total units moved by created orders
# TYPE test_order_units_total counter
test_order_units_total{kind="purchase"} 44
test_order_units_total{kind="sale"} 10
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "test_order_units_total"))

	n, err := testutil.GatherAndCount(m.Registry(), "test_product_version_conflicts_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMiddleware_EtiquetaPorRuta(t *testing.T) {
	m := metrics.New("test")
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/api/supp/:taxid", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/supp/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `test_http_requests_total{method="GET",path="/api/supp/:taxid",status="200"} 1`)
}
