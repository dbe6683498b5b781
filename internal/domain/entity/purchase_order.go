package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder representa una orden de compra (entrada de mercancía de un proveedor).
// Supplier* y Product* son copias (snapshot) tomadas al crear o editar la orden.
// ID es la clave sustituta, UID la clave única aleatoria y OrderID el código de fecha.
type PurchaseOrder struct {
	ID            int64
	UID           string
	OrderID       int64
	SupplierTaxID int64
	SupplierName  string
	ProductID     int64
	ProductPN     int64
	ProductName   string
	CostPrice     int64
	Amount        int64
	TotalPrice    decimal.Decimal // CostPrice * Amount
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SnapshotSupplier copia los datos actuales del proveedor en la orden.
func (o *PurchaseOrder) SnapshotSupplier(s *Supplier) {
	o.SupplierTaxID = s.TaxID
	o.SupplierName = s.Name
}

// SnapshotProduct copia los datos actuales del producto en la orden.
func (o *PurchaseOrder) SnapshotProduct(p *Product) {
	o.ProductID = p.ID
	o.ProductPN = p.PortNumber
	o.ProductName = p.Name
}

// SetLine fija precio y cantidad y recalcula el total.
func (o *PurchaseOrder) SetLine(price, amount int64) {
	o.CostPrice = price
	o.Amount = amount
	o.TotalPrice = LineTotal(price, amount)
}

// LineTotal devuelve price * amount sin riesgo de desbordamiento.
func LineTotal(price, amount int64) decimal.Decimal {
	return decimal.NewFromInt(price).Mul(decimal.NewFromInt(amount))
}
