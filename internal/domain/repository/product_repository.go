package repository

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (clave de negocio: port_number).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByPortNumber(ctx context.Context, portNumber int64) (*entity.Product, error)
	// GetByPortNumberForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetByPortNumberForUpdate(ctx context.Context, portNumber int64) (*entity.Product, error)
	ExistsByPortNumber(ctx context.Context, portNumber int64) (bool, error)
	// Update modifica port_number, name y supplier_taxid. Nunca toca los agregados.
	Update(ctx context.Context, currentPortNumber int64, product *entity.Product) error
	// UpdateAggregates persiste costo/stock/venta si la versión coincide con product.Version;
	// si no, devuelve domain.ErrConcurrentUpdate. En éxito incrementa product.Version.
	UpdateAggregates(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, portNumber int64) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	ListBySupplier(ctx context.Context, supplierTaxID int64, limit, offset int) ([]*entity.Product, error)
}
