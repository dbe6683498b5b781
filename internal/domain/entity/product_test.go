package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

func TestProduct_ApplyPurchase_PrimeraCompra(t *testing.T) {
	p := &entity.Product{}
	require.NoError(t, p.ApplyPurchase(200, 33))
	assert.Equal(t, int64(200), p.CostPrice)
	assert.Equal(t, int64(33), p.Amount)
}

func TestProduct_ApplyPurchase_PromedioPonderado(t *testing.T) {
	p := &entity.Product{CostPrice: 200, Amount: 33}
	require.NoError(t, p.ApplyPurchase(300, 11))
	assert.Equal(t, int64(225), p.CostPrice)
	assert.Equal(t, int64(44), p.Amount)
}

func TestProduct_ApplySale_DescuentaStock(t *testing.T) {
	p := &entity.Product{CostPrice: 225, Amount: 44}
	require.NoError(t, p.ApplySale(400, 10))
	assert.Equal(t, int64(400), p.SalePrice)
	assert.Equal(t, int64(10), p.SaleAmount)
	assert.Equal(t, int64(34), p.Amount)
	assert.Equal(t, int64(225), p.CostPrice, "la venta no altera el costo")
}

func TestProduct_ApplySale_PromedioDeVenta(t *testing.T) {
	p := &entity.Product{Amount: 34, SalePrice: 400, SaleAmount: 10}
	require.NoError(t, p.ApplySale(500, 5))
	// floor((400*10 + 500*5) / 15) = floor(6500/15) = 433
	assert.Equal(t, int64(433), p.SalePrice)
	assert.Equal(t, int64(15), p.SaleAmount)
	assert.Equal(t, int64(29), p.Amount)
}

func TestProduct_ApplySale_StockInsuficienteNoModifica(t *testing.T) {
	p := &entity.Product{Amount: 3, SalePrice: 10, SaleAmount: 1}
	err := p.ApplySale(10, 4)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, &entity.Product{Amount: 3, SalePrice: 10, SaleAmount: 1}, p)
}

func TestProduct_Apply_RechazaCantidadOPrecioNoPositivo(t *testing.T) {
	p := &entity.Product{Amount: 10}
	assert.ErrorIs(t, p.ApplyPurchase(100, 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, p.ApplyPurchase(0, 5), domain.ErrInvalidInput)
	assert.ErrorIs(t, p.ApplySale(100, -1), domain.ErrInvalidInput)
	assert.Equal(t, int64(10), p.Amount)
}

func TestOrderCode_FormatoFecha(t *testing.T) {
	ts := time.Date(2023, 11, 29, 8, 5, 9, 0, time.UTC)
	assert.Equal(t, int64(20231129080509), entity.OrderCode(ts))
}

func TestOrderCode_UsaLaZonaDelInstante(t *testing.T) {
	bogota := time.FixedZone("COT", -5*60*60)
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).In(bogota)
	assert.Equal(t, int64(20231231190000), entity.OrderCode(ts))
	assert.Equal(t, int64(99991231235959), entity.OrderCode(time.Date(9999, 12, 31, 23, 59, 59, 999, time.UTC)))
}

func TestPurchaseOrder_SetLineCalculaTotal(t *testing.T) {
	var o entity.PurchaseOrder
	o.SetLine(300, 11)
	assert.Equal(t, "3300", o.TotalPrice.String())
}
