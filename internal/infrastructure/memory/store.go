// Package memory implementa el almacén de entidades en memoria (STORE_DRIVER=memory y pruebas).
// Replica las restricciones del esquema PostgreSQL: claves únicas, la FK de productos a
// proveedores (ON UPDATE CASCADE, ON DELETE RESTRICT) y la versión optimista de productos.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/Compras-api/internal/application/orders"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

var _ orders.TxRunner = (*Store)(nil)

var errTxClosed = errors.New("memory: transacción finalizada")

type state struct {
	suppliers map[int64]entity.Supplier
	customers map[int64]entity.Customer
	products  map[int64]entity.Product
	purchases map[int64]entity.PurchaseOrder
	sales     map[int64]entity.SaleOrder
	users     map[string]entity.User

	supplierSeq int64
	customerSeq int64
	productSeq  int64
	purchaseSeq int64
	saleSeq     int64
}

func newState() *state {
	return &state{
		suppliers: map[int64]entity.Supplier{},
		customers: map[int64]entity.Customer{},
		products:  map[int64]entity.Product{},
		purchases: map[int64]entity.PurchaseOrder{},
		sales:     map[int64]entity.SaleOrder{},
		users:     map[string]entity.User{},
	}
}

// clone copia el estado; las entidades se guardan por valor, así que basta copiar los mapas.
func (s *state) clone() *state {
	c := &state{
		suppliers:   make(map[int64]entity.Supplier, len(s.suppliers)),
		customers:   make(map[int64]entity.Customer, len(s.customers)),
		products:    make(map[int64]entity.Product, len(s.products)),
		purchases:   make(map[int64]entity.PurchaseOrder, len(s.purchases)),
		sales:       make(map[int64]entity.SaleOrder, len(s.sales)),
		users:       make(map[string]entity.User, len(s.users)),
		supplierSeq: s.supplierSeq,
		customerSeq: s.customerSeq,
		productSeq:  s.productSeq,
		purchaseSeq: s.purchaseSeq,
		saleSeq:     s.saleSeq,
	}
	for k, v := range s.suppliers {
		c.suppliers[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.purchases {
		c.purchases[k] = v
	}
	for k, v := range s.sales {
		c.sales[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	return c
}

// Store es el almacén compartido. Las operaciones sueltas toman el mutex por llamada;
// Run lo mantiene durante toda la transacción, lo que serializa las conciliaciones.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// conn es la vista que usan los repositorios: con o sin el mutex ya tomado.
type conn struct {
	store  *Store
	inTx   bool
	closed bool
}

func (c *conn) do(fn func(st *state) error) error {
	if c.inTx {
		if c.closed {
			return errTxClosed
		}
		return fn(c.store.st)
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return fn(c.store.st)
}

// Run ejecuta fn con repositorios atados a una transacción. Si fn falla, el estado vuelve
// a la copia tomada al inicio.
func (s *Store) Run(ctx context.Context, fn func(repos orders.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	c := &conn{store: s, inTx: true}
	err := fn(reposFor(c))
	c.closed = true
	if err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

// Repos devuelve repositorios fuera de transacción.
func (s *Store) Repos() orders.TxRepos {
	return reposFor(&conn{store: s})
}

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo {
	return &UserRepo{c: &conn{store: s}}
}

func reposFor(c *conn) orders.TxRepos {
	return orders.TxRepos{
		Suppliers:      &SupplierRepo{c: c},
		Customers:      &CustomerRepo{c: c},
		Products:       &ProductRepo{c: c},
		PurchaseOrders: &PurchaseOrderRepo{c: c},
		SaleOrders:     &SaleOrderRepo{c: c},
	}
}
