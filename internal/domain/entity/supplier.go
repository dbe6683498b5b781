package entity

import "time"

// Supplier representa un proveedor. TaxID es la clave de negocio (única); Name también es único.
type Supplier struct {
	ID        int64
	TaxID     int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
