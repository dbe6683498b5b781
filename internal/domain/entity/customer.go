package entity

import "time"

// Customer representa un cliente. Independiente de Supplier aunque comparte la forma (TaxID + Name únicos).
type Customer struct {
	ID        int64
	TaxID     int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
