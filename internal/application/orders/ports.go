package orders

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción.
type TxRepos struct {
	Suppliers      repository.SupplierRepository
	Customers      repository.CustomerRepository
	Products       repository.ProductRepository
	PurchaseOrders repository.PurchaseOrderRepository
	SaleOrders     repository.SaleOrderRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback en otro caso.
// La fila del producto y la orden se escriben juntas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}

// Tipos de orden usados como etiqueta en logs y métricas.
const (
	KindPurchase = "purchase"
	KindSale     = "sale"
)

// Recorder recibe los eventos observables del motor de conciliación.
type Recorder interface {
	OrderCreated(kind string, units int64)
	OrderUpdated(kind string)
	OrderDeleted(kind string)
	ReconciliationFailed(kind string)
	ConcurrentUpdate(kind string)
}

// DocumentRenderer genera el documento imprimible de una orden.
type DocumentRenderer interface {
	RenderPurchaseOrder(order *entity.PurchaseOrder) ([]byte, error)
	RenderSaleOrder(order *entity.SaleOrder) ([]byte, error)
}

type nopRecorder struct{}

func (nopRecorder) OrderCreated(string, int64) {}
func (nopRecorder) OrderUpdated(string) {}
func (nopRecorder) OrderDeleted(string) {}
func (nopRecorder) ReconciliationFailed(string) {}
func (nopRecorder) ConcurrentUpdate(string) {}
