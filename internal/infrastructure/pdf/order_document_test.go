package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

func TestRenderPurchaseOrder_GeneraPDF(t *testing.T) {
	o := &entity.PurchaseOrder{
		ID: 1, UID: "0b6f7c1e-8a51-4f3e-9d4c-2b1a0e9f8d7c", OrderID: 20231129080509,
		SupplierTaxID: 1001, SupplierName: "Acme",
		ProductPN: 77, ProductName: "Tornillo",
		CreatedAt: time.Date(2023, 11, 29, 8, 5, 9, 0, time.UTC),
	}
	o.SetLine(200, 33)

	out, err := NewOrderDocumentRenderer("Compras").RenderPurchaseOrder(o)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
}

func TestRenderSaleOrder_GeneraPDF(t *testing.T) {
	o := &entity.SaleOrder{
		ID: 2, UID: "5d8e9f10-1a2b-4c3d-8e4f-5a6b7c8d9e0f", OrderID: 20231129080510,
		CustomerTaxID: 5005, CustomerName: "Cliente",
		ProductPN: 77, ProductName: "Tornillo",
		CreatedAt: time.Now(),
	}
	o.SetLine(400, 10)

	out, err := NewOrderDocumentRenderer("Compras").RenderSaleOrder(o)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "999", formatMoney("999"))
	assert.Equal(t, "25.000", formatMoney("25000"))
	assert.Equal(t, "1.000.000", formatMoney("1000000"))
	assert.Equal(t, "-1.000", formatMoney("-1000"))
}
