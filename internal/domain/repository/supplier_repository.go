package repository

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (clave de negocio: taxid).
// Los Get devuelven (nil, nil) cuando el registro no existe.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByTaxID(ctx context.Context, taxID int64) (*entity.Supplier, error)
	ExistsByTaxID(ctx context.Context, taxID int64) (bool, error)
	// Update reemplaza taxid y name del proveedor identificado por currentTaxID.
	// El cambio de taxid se propaga a los productos del proveedor.
	Update(ctx context.Context, currentTaxID int64, supplier *entity.Supplier) error
	// Delete devuelve domain.ErrConflict si el proveedor aún tiene productos.
	Delete(ctx context.Context, taxID int64) error
	List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error)
}
