// Package lookup agrupa los predicados de existencia que preceden a toda mutación:
// ninguna escritura ni cálculo de conciliación ocurre si la entidad referida no existe.
package lookup

import (
	"context"
	"fmt"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// Checker verifica existencia por clave de negocio (conteo > 0 en el almacén).
type Checker struct {
	suppliers repository.SupplierRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	purchases repository.PurchaseOrderRepository
	sales     repository.SaleOrderRepository
}

// NewChecker construye el verificador.
func NewChecker(
	suppliers repository.SupplierRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	purchases repository.PurchaseOrderRepository,
	sales repository.SaleOrderRepository,
) *Checker {
	return &Checker{
		suppliers: suppliers,
		customers: customers,
		products:  products,
		purchases: purchases,
		sales:     sales,
	}
}

// SupplierExists indica si existe un proveedor con ese taxid.
func (c *Checker) SupplierExists(ctx context.Context, taxID int64) (bool, error) {
	return c.suppliers.ExistsByTaxID(ctx, taxID)
}

// CustomerExists indica si existe un cliente con ese taxid.
func (c *Checker) CustomerExists(ctx context.Context, taxID int64) (bool, error) {
	return c.customers.ExistsByTaxID(ctx, taxID)
}

// ProductExists indica si existe un producto con ese número de parte.
func (c *Checker) ProductExists(ctx context.Context, portNumber int64) (bool, error) {
	return c.products.ExistsByPortNumber(ctx, portNumber)
}

// RequireSupplier devuelve domain.ErrSupplierNotFound si el proveedor no existe.
func (c *Checker) RequireSupplier(ctx context.Context, taxID int64) error {
	return require(c.suppliers.ExistsByTaxID(ctx, taxID))(domain.ErrSupplierNotFound)
}

// RequireCustomer devuelve domain.ErrCustomerNotFound si el cliente no existe.
func (c *Checker) RequireCustomer(ctx context.Context, taxID int64) error {
	return require(c.customers.ExistsByTaxID(ctx, taxID))(domain.ErrCustomerNotFound)
}

// RequireProduct devuelve domain.ErrProductNotFound si el producto no existe.
func (c *Checker) RequireProduct(ctx context.Context, portNumber int64) error {
	return require(c.products.ExistsByPortNumber(ctx, portNumber))(domain.ErrProductNotFound)
}

// RequirePurchaseOrder verifica por ID sustituto.
func (c *Checker) RequirePurchaseOrder(ctx context.Context, id int64) error {
	return require(c.purchases.ExistsByID(ctx, id))(domain.ErrPurchaseOrderNotFound)
}

// RequirePurchaseOrderCode verifica por código de fecha (order_id).
func (c *Checker) RequirePurchaseOrderCode(ctx context.Context, orderID int64) error {
	return require(c.purchases.ExistsByOrderID(ctx, orderID))(domain.ErrPurchaseOrderNotFound)
}

// RequireSaleOrder verifica por ID sustituto.
func (c *Checker) RequireSaleOrder(ctx context.Context, id int64) error {
	return require(c.sales.ExistsByID(ctx, id))(domain.ErrSaleOrderNotFound)
}

// RequireSaleOrderCode verifica por código de fecha (order_id).
func (c *Checker) RequireSaleOrderCode(ctx context.Context, orderID int64) error {
	return require(c.sales.ExistsByOrderID(ctx, orderID))(domain.ErrSaleOrderNotFound)
}

func require(exists bool, err error) func(notFound error) error {
	return func(notFound error) error {
		if err != nil {
			return fmt.Errorf("lookup: %w", err)
		}
		if !exists {
			return notFound
		}
		return nil
	}
}
