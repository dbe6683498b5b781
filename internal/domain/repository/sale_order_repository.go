package repository

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// SaleOrderRepository define el puerto de persistencia para órdenes de venta.
type SaleOrderRepository interface {
	Create(ctx context.Context, order *entity.SaleOrder) error
	GetByID(ctx context.Context, id int64) (*entity.SaleOrder, error)
	GetByOrderID(ctx context.Context, orderID int64) (*entity.SaleOrder, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByOrderID(ctx context.Context, orderID int64) (bool, error)
	Update(ctx context.Context, order *entity.SaleOrder) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*entity.SaleOrder, error)
}
