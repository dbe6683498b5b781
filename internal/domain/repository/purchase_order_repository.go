package repository

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para órdenes de compra.
// Create asigna el ID sustituto.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id int64) (*entity.PurchaseOrder, error)
	// GetByOrderID devuelve la orden más antigua con ese código de fecha.
	GetByOrderID(ctx context.Context, orderID int64) (*entity.PurchaseOrder, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByOrderID(ctx context.Context, orderID int64) (bool, error)
	Update(ctx context.Context, order *entity.PurchaseOrder) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*entity.PurchaseOrder, error)
}
