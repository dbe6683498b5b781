package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleOrder representa una orden de venta a un cliente. Simétrica a PurchaseOrder.
type SaleOrder struct {
	ID            int64
	UID           string
	OrderID       int64
	CustomerTaxID int64
	CustomerName  string
	ProductID     int64
	ProductPN     int64
	ProductName   string
	SalePrice     int64
	Amount        int64
	TotalPrice    decimal.Decimal // SalePrice * Amount
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SnapshotCustomer copia los datos actuales del cliente en la orden.
func (o *SaleOrder) SnapshotCustomer(c *Customer) {
	o.CustomerTaxID = c.TaxID
	o.CustomerName = c.Name
}

// SnapshotProduct copia los datos actuales del producto en la orden.
func (o *SaleOrder) SnapshotProduct(p *Product) {
	o.ProductID = p.ID
	o.ProductPN = p.PortNumber
	o.ProductName = p.Name
}

// SetLine fija precio y cantidad y recalcula el total.
func (o *SaleOrder) SetLine(price, amount int64) {
	o.SalePrice = price
	o.Amount = amount
	o.TotalPrice = LineTotal(price, amount)
}
