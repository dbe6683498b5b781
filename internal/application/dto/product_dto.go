package dto

import "time"

// CreateProductRequest entrada para crear un producto de un proveedor.
type CreateProductRequest struct {
	PortNumber int64  `json:"port_number"`
	Name       string `json:"name"`
}

// UpdateProductRequest entrada para actualizar un producto (sin agregados de costo/stock).
// Los campos nil conservan el valor actual.
type UpdateProductRequest struct {
	PortNumber    *int64  `json:"port_number"`
	Name          *string `json:"name"`
	SupplierTaxID *int64  `json:"supplier_taxid"`
}

// ProductResponse salida de un producto con sus agregados.
type ProductResponse struct {
	ID            int64     `json:"id"`
	PortNumber    int64     `json:"port_number"`
	Name          string    `json:"name"`
	SupplierTaxID int64     `json:"supplier_taxid"`
	CostPrice     int64     `json:"cost_price"`
	Amount        int64     `json:"amount"`
	SalePrice     int64     `json:"sale_price"`
	SaleAmount    int64     `json:"sale_amount"`
	Version       int64     `json:"version"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
