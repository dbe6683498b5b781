package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var (
	_ repository.SupplierRepository = (*SupplierRepo)(nil)
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
)

// SupplierRepo implementación en memoria de SupplierRepository.
type SupplierRepo struct {
	c *conn
}

// Create inserta el proveedor y asigna su ID.
func (r *SupplierRepo) Create(_ context.Context, supplier *entity.Supplier) error {
	return r.c.do(func(st *state) error {
		if _, ok := st.suppliers[supplier.TaxID]; ok {
			return domain.ErrDuplicate
		}
		if supplierNameTaken(st, supplier.Name, 0) {
			return domain.ErrDuplicate
		}
		st.supplierSeq++
		supplier.ID = st.supplierSeq
		stampCreate(&supplier.CreatedAt, &supplier.UpdatedAt)
		st.suppliers[supplier.TaxID] = *supplier
		return nil
	})
}

// GetByTaxID devuelve (nil, nil) si no existe.
func (r *SupplierRepo) GetByTaxID(_ context.Context, taxID int64) (*entity.Supplier, error) {
	var out *entity.Supplier
	err := r.c.do(func(st *state) error {
		if s, ok := st.suppliers[taxID]; ok {
			out = &s
		}
		return nil
	})
	return out, err
}

// ExistsByTaxID indica si existe el proveedor.
func (r *SupplierRepo) ExistsByTaxID(_ context.Context, taxID int64) (bool, error) {
	var ok bool
	err := r.c.do(func(st *state) error {
		_, ok = st.suppliers[taxID]
		return nil
	})
	return ok, err
}

// Update reemplaza taxid y name; un cambio de taxid se propaga a los productos.
func (r *SupplierRepo) Update(_ context.Context, currentTaxID int64, supplier *entity.Supplier) error {
	return r.c.do(func(st *state) error {
		cur, ok := st.suppliers[currentTaxID]
		if !ok {
			return domain.ErrSupplierNotFound
		}
		if supplier.TaxID != currentTaxID {
			if _, taken := st.suppliers[supplier.TaxID]; taken {
				return domain.ErrDuplicate
			}
		}
		if supplierNameTaken(st, supplier.Name, cur.ID) {
			return domain.ErrDuplicate
		}
		cur.TaxID = supplier.TaxID
		cur.Name = supplier.Name
		cur.UpdatedAt = time.Now()
		delete(st.suppliers, currentTaxID)
		st.suppliers[cur.TaxID] = cur
		if cur.TaxID != currentTaxID {
			for pn, p := range st.products {
				if p.SupplierTaxID == currentTaxID {
					p.SupplierTaxID = cur.TaxID
					st.products[pn] = p
				}
			}
		}
		*supplier = cur
		return nil
	})
}

// Delete elimina el proveedor; falla con ErrConflict si aún tiene productos.
func (r *SupplierRepo) Delete(_ context.Context, taxID int64) error {
	return r.c.do(func(st *state) error {
		if _, ok := st.suppliers[taxID]; !ok {
			return domain.ErrSupplierNotFound
		}
		for _, p := range st.products {
			if p.SupplierTaxID == taxID {
				return domain.ErrConflict
			}
		}
		delete(st.suppliers, taxID)
		return nil
	})
}

// List devuelve proveedores ordenados por ID.
func (r *SupplierRepo) List(_ context.Context, limit, offset int) ([]*entity.Supplier, error) {
	var list []*entity.Supplier
	err := r.c.do(func(st *state) error {
		all := make([]*entity.Supplier, 0, len(st.suppliers))
		for _, s := range st.suppliers {
			s := s
			all = append(all, &s)
		}
		sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
		list = page(all, limit, offset)
		return nil
	})
	return list, err
}

func supplierNameTaken(st *state, name string, exceptID int64) bool {
	for _, s := range st.suppliers {
		if s.Name == name && s.ID != exceptID {
			return true
		}
	}
	return false
}

// CustomerRepo implementación en memoria de CustomerRepository.
type CustomerRepo struct {
	c *conn
}

// Create inserta el cliente y asigna su ID.
func (r *CustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	return r.c.do(func(st *state) error {
		if _, ok := st.customers[customer.TaxID]; ok {
			return domain.ErrDuplicate
		}
		if customerNameTaken(st, customer.Name, 0) {
			return domain.ErrDuplicate
		}
		st.customerSeq++
		customer.ID = st.customerSeq
		stampCreate(&customer.CreatedAt, &customer.UpdatedAt)
		st.customers[customer.TaxID] = *customer
		return nil
	})
}

// GetByTaxID devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByTaxID(_ context.Context, taxID int64) (*entity.Customer, error) {
	var out *entity.Customer
	err := r.c.do(func(st *state) error {
		if c, ok := st.customers[taxID]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

// ExistsByTaxID indica si existe el cliente.
func (r *CustomerRepo) ExistsByTaxID(_ context.Context, taxID int64) (bool, error) {
	var ok bool
	err := r.c.do(func(st *state) error {
		_, ok = st.customers[taxID]
		return nil
	})
	return ok, err
}

// Update reemplaza taxid y name del cliente.
func (r *CustomerRepo) Update(_ context.Context, currentTaxID int64, customer *entity.Customer) error {
	return r.c.do(func(st *state) error {
		cur, ok := st.customers[currentTaxID]
		if !ok {
			return domain.ErrCustomerNotFound
		}
		if customer.TaxID != currentTaxID {
			if _, taken := st.customers[customer.TaxID]; taken {
				return domain.ErrDuplicate
			}
		}
		if customerNameTaken(st, customer.Name, cur.ID) {
			return domain.ErrDuplicate
		}
		cur.TaxID = customer.TaxID
		cur.Name = customer.Name
		cur.UpdatedAt = time.Now()
		delete(st.customers, currentTaxID)
		st.customers[cur.TaxID] = cur
		*customer = cur
		return nil
	})
}

// Delete elimina el cliente. Las órdenes de venta conservan su snapshot.
func (r *CustomerRepo) Delete(_ context.Context, taxID int64) error {
	return r.c.do(func(st *state) error {
		if _, ok := st.customers[taxID]; !ok {
			return domain.ErrCustomerNotFound
		}
		delete(st.customers, taxID)
		return nil
	})
}

// List devuelve clientes ordenados por ID.
func (r *CustomerRepo) List(_ context.Context, limit, offset int) ([]*entity.Customer, error) {
	var list []*entity.Customer
	err := r.c.do(func(st *state) error {
		all := make([]*entity.Customer, 0, len(st.customers))
		for _, c := range st.customers {
			c := c
			all = append(all, &c)
		}
		sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
		list = page(all, limit, offset)
		return nil
	})
	return list, err
}

func customerNameTaken(st *state, name string, exceptID int64) bool {
	for _, c := range st.customers {
		if c.Name == name && c.ID != exceptID {
			return true
		}
	}
	return false
}

func stampCreate(createdAt, updatedAt *time.Time) {
	now := time.Now()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}

func page[T any](all []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) {
		return []T{}
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}
