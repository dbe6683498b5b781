package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderRequest entrada para crear o editar una orden de compra.
// El proveedor se deriva del producto.
type PurchaseOrderRequest struct {
	ProductPN int64 `json:"product_pn"`
	CostPrice int64 `json:"cost_price"`
	Amount    int64 `json:"amount"`
}

// PurchaseOrderResponse orden de compra con snapshot de proveedor y producto.
type PurchaseOrderResponse struct {
	ID            int64           `json:"id"`
	UID           string          `json:"uid"`
	OrderID       int64           `json:"order_id"`
	SupplierTaxID int64           `json:"supplier_taxid"`
	SupplierName  string          `json:"supplier_name"`
	ProductID     int64           `json:"product_id"`
	ProductPN     int64           `json:"product_pn"`
	ProductName   string          `json:"product_name"`
	CostPrice     int64           `json:"cost_price"`
	Amount        int64           `json:"amount"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SaleOrderRequest entrada para crear o editar una orden de venta.
type SaleOrderRequest struct {
	ProductPN     int64 `json:"product_pn"`
	CustomerTaxID int64 `json:"customer_taxid"`
	SalePrice     int64 `json:"sale_price"`
	Amount        int64 `json:"amount"`
}

// SaleOrderResponse orden de venta con snapshot de cliente y producto.
type SaleOrderResponse struct {
	ID            int64           `json:"id"`
	UID           string          `json:"uid"`
	OrderID       int64           `json:"order_id"`
	CustomerTaxID int64           `json:"customer_taxid"`
	CustomerName  string          `json:"customer_name"`
	ProductID     int64           `json:"product_id"`
	ProductPN     int64           `json:"product_pn"`
	ProductName   string          `json:"product_name"`
	SalePrice     int64           `json:"sale_price"`
	Amount        int64           `json:"amount"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
