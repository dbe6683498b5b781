package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	c *conn
}

// Create inserta el producto con versión 1. El proveedor debe existir (FK).
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	return r.c.do(func(st *state) error {
		if _, ok := st.products[product.PortNumber]; ok {
			return domain.ErrDuplicate
		}
		if productNameTaken(st, product.Name, 0) {
			return domain.ErrDuplicate
		}
		if _, ok := st.suppliers[product.SupplierTaxID]; !ok {
			return domain.ErrConflict
		}
		st.productSeq++
		product.ID = st.productSeq
		product.Version = 1
		stampCreate(&product.CreatedAt, &product.UpdatedAt)
		st.products[product.PortNumber] = *product
		return nil
	})
}

// GetByPortNumber devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByPortNumber(_ context.Context, portNumber int64) (*entity.Product, error) {
	var out *entity.Product
	err := r.c.do(func(st *state) error {
		if p, ok := st.products[portNumber]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

// GetByPortNumberForUpdate equivale a GetByPortNumber: dentro de Run el mutex ya serializa.
func (r *ProductRepo) GetByPortNumberForUpdate(ctx context.Context, portNumber int64) (*entity.Product, error) {
	return r.GetByPortNumber(ctx, portNumber)
}

// ExistsByPortNumber indica si existe el producto.
func (r *ProductRepo) ExistsByPortNumber(_ context.Context, portNumber int64) (bool, error) {
	var ok bool
	err := r.c.do(func(st *state) error {
		_, ok = st.products[portNumber]
		return nil
	})
	return ok, err
}

// Update modifica port_number, name y supplier_taxid sin tocar los agregados.
func (r *ProductRepo) Update(_ context.Context, currentPortNumber int64, product *entity.Product) error {
	return r.c.do(func(st *state) error {
		cur, ok := st.products[currentPortNumber]
		if !ok {
			return domain.ErrProductNotFound
		}
		if product.PortNumber != currentPortNumber {
			if _, taken := st.products[product.PortNumber]; taken {
				return domain.ErrDuplicate
			}
		}
		if productNameTaken(st, product.Name, cur.ID) {
			return domain.ErrDuplicate
		}
		if _, ok := st.suppliers[product.SupplierTaxID]; !ok {
			return domain.ErrConflict
		}
		cur.PortNumber = product.PortNumber
		cur.Name = product.Name
		cur.SupplierTaxID = product.SupplierTaxID
		cur.UpdatedAt = time.Now()
		delete(st.products, currentPortNumber)
		st.products[cur.PortNumber] = cur
		*product = cur
		return nil
	})
}

// UpdateAggregates persiste costo, stock y venta si la versión coincide.
func (r *ProductRepo) UpdateAggregates(_ context.Context, product *entity.Product) error {
	return r.c.do(func(st *state) error {
		cur, ok := st.products[product.PortNumber]
		if !ok || cur.ID != product.ID {
			return domain.ErrProductNotFound
		}
		if cur.Version != product.Version {
			return domain.ErrConcurrentUpdate
		}
		cur.CostPrice = product.CostPrice
		cur.Amount = product.Amount
		cur.SalePrice = product.SalePrice
		cur.SaleAmount = product.SaleAmount
		cur.Version++
		cur.UpdatedAt = time.Now()
		st.products[cur.PortNumber] = cur
		product.Version = cur.Version
		product.UpdatedAt = cur.UpdatedAt
		return nil
	})
}

// Delete elimina el producto. Las órdenes conservan su snapshot.
func (r *ProductRepo) Delete(_ context.Context, portNumber int64) error {
	return r.c.do(func(st *state) error {
		if _, ok := st.products[portNumber]; !ok {
			return domain.ErrProductNotFound
		}
		delete(st.products, portNumber)
		return nil
	})
}

// List devuelve productos ordenados por ID.
func (r *ProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	return r.list(func(*entity.Product) bool { return true }, limit, offset)
}

// ListBySupplier devuelve los productos del proveedor.
func (r *ProductRepo) ListBySupplier(_ context.Context, supplierTaxID int64, limit, offset int) ([]*entity.Product, error) {
	return r.list(func(p *entity.Product) bool { return p.SupplierTaxID == supplierTaxID }, limit, offset)
}

func (r *ProductRepo) list(keep func(*entity.Product) bool, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.c.do(func(st *state) error {
		all := make([]*entity.Product, 0, len(st.products))
		for _, p := range st.products {
			p := p
			if keep(&p) {
				all = append(all, &p)
			}
		}
		sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
		list = page(all, limit, offset)
		return nil
	})
	return list, err
}

func productNameTaken(st *state, name string, exceptID int64) bool {
	for _, p := range st.products {
		if p.Name == name && p.ID != exceptID {
			return true
		}
	}
	return false
}
