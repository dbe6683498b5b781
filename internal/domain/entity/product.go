package entity

import (
	"time"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/inventory"
)

// Product representa un producto (número de parte único) de un proveedor.
// CostPrice y SalePrice son promedios ponderados; Amount es el stock disponible y SaleAmount
// el acumulado vendido. Se modifican solo vía ApplyPurchase/ApplySale.
// Version se usa para control de concurrencia optimista al persistir los agregados.
type Product struct {
	ID            int64
	PortNumber    int64
	Name          string
	SupplierTaxID int64
	CostPrice     int64
	Amount        int64
	SalePrice     int64
	SaleAmount    int64
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ApplyPurchase recalcula costo promedio y stock tras una compra de qty unidades a price.
// Si falla, el producto queda sin cambios.
func (p *Product) ApplyPurchase(price, qty int64) error {
	if price <= 0 || qty <= 0 {
		return domain.ErrInvalidInput
	}
	newCost, err := inventory.WeightedAverage(p.CostPrice, p.Amount, price, qty)
	if err != nil {
		return err
	}
	newAmount, err := inventory.AddQuantity(p.Amount, qty)
	if err != nil {
		return err
	}
	p.CostPrice = newCost
	p.Amount = newAmount
	return nil
}

// ApplySale recalcula precio promedio de venta, acumulado vendido y stock tras una venta.
// Rechaza con ErrInsufficientStock si qty supera el stock (Amount nunca queda negativo).
func (p *Product) ApplySale(price, qty int64) error {
	if price <= 0 || qty <= 0 {
		return domain.ErrInvalidInput
	}
	if qty > p.Amount {
		return domain.ErrInsufficientStock
	}
	newSalePrice, err := inventory.WeightedAverage(p.SalePrice, p.SaleAmount, price, qty)
	if err != nil {
		return err
	}
	newSaleAmount, err := inventory.AddQuantity(p.SaleAmount, qty)
	if err != nil {
		return err
	}
	p.SalePrice = newSalePrice
	p.SaleAmount = newSaleAmount
	p.Amount -= qty
	return nil
}
