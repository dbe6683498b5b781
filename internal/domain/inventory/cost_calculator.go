package inventory

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/domain"
)

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// WeightedAverage implementa el promedio ponderado con división entera (servicio de dominio).
// Sin historial (precio y cantidad actuales en 0) adopta el precio entrante; si no:
// NuevoPrecio = floor(((PrecioActual * CantActual) + (PrecioEntrada * CantEntrada)) / (CantActual + CantEntrada))
// Los productos intermedios se calculan en decimal para no desbordar int64.
func WeightedAverage(currentPrice, currentQty, price, qty int64) (int64, error) {
	if currentPrice == 0 && currentQty == 0 {
		return price, nil
	}
	cq := decimal.NewFromInt(currentQty)
	q := decimal.NewFromInt(qty)
	sum := cq.Add(q)
	if sum.Sign() <= 0 {
		return 0, domain.ErrReconciliation
	}
	num := decimal.NewFromInt(currentPrice).Mul(cq).Add(decimal.NewFromInt(price).Mul(q))
	return floorDiv(num, sum)
}

// AddQuantity suma dos cantidades detectando desbordamiento.
func AddQuantity(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, domain.ErrReconciliation
	}
	return a + b, nil
}

// floorDiv divide num/den (den > 0) redondeando hacia -inf. QuoRem trunca hacia cero.
func floorDiv(num, den decimal.Decimal) (int64, error) {
	quo, rem := num.QuoRem(den, 0)
	if rem.Sign() < 0 {
		quo = quo.Sub(decimal.NewFromInt(1))
	}
	if quo.GreaterThan(maxInt64) || quo.LessThan(maxInt64.Neg()) {
		return 0, domain.ErrReconciliation
	}
	return quo.IntPart(), nil
}
