package dto

import "time"

// PartyRequest entrada para crear o actualizar un proveedor o cliente.
type PartyRequest struct {
	TaxID int64  `json:"taxid"`
	Name  string `json:"name"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID        int64     `json:"id"`
	TaxID     int64     `json:"taxid"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	TaxID     int64     `json:"taxid"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
