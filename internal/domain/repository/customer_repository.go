package repository

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (clave de negocio: taxid).
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByTaxID(ctx context.Context, taxID int64) (*entity.Customer, error)
	ExistsByTaxID(ctx context.Context, taxID int64) (bool, error)
	Update(ctx context.Context, currentTaxID int64, customer *entity.Customer) error
	Delete(ctx context.Context, taxID int64) error
	List(ctx context.Context, limit, offset int) ([]*entity.Customer, error)
}
