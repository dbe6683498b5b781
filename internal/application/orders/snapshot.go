package orders

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// Constructor de snapshot: copia nombre y clave de producto, proveedor o cliente en la orden.
// Se usa al crear y al editar; las órdenes no se refrescan cuando cambian las entidades.

// lockProduct lee el producto bloqueando su fila hasta el fin de la transacción.
func lockProduct(ctx context.Context, repos TxRepos, portNumber int64) (*entity.Product, error) {
	product, err := repos.Products.GetByPortNumberForUpdate(ctx, portNumber)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// stampPurchase resuelve el proveedor por el taxid del producto y copia ambos en la orden.
func stampPurchase(ctx context.Context, repos TxRepos, order *entity.PurchaseOrder, product *entity.Product) error {
	supplier, err := repos.Suppliers.GetByTaxID(ctx, product.SupplierTaxID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrSupplierNotFound
	}
	order.SnapshotSupplier(supplier)
	order.SnapshotProduct(product)
	return nil
}

// stampSale resuelve el cliente por taxid y copia cliente y producto en la orden.
func stampSale(ctx context.Context, repos TxRepos, order *entity.SaleOrder, product *entity.Product, customerTaxID int64) error {
	customer, err := repos.Customers.GetByTaxID(ctx, customerTaxID)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrCustomerNotFound
	}
	order.SnapshotCustomer(customer)
	order.SnapshotProduct(product)
	return nil
}
