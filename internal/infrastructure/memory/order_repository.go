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
	_ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)
	_ repository.SaleOrderRepository     = (*SaleOrderRepo)(nil)
)

// PurchaseOrderRepo implementación en memoria de PurchaseOrderRepository.
type PurchaseOrderRepo struct {
	c *conn
}

// Create inserta la orden y asigna su ID sustituto.
func (r *PurchaseOrderRepo) Create(_ context.Context, order *entity.PurchaseOrder) error {
	return r.c.do(func(st *state) error {
		for _, o := range st.purchases {
			if o.UID == order.UID {
				return domain.ErrDuplicate
			}
		}
		st.purchaseSeq++
		order.ID = st.purchaseSeq
		stampCreate(&order.CreatedAt, &order.UpdatedAt)
		st.purchases[order.ID] = *order
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *PurchaseOrderRepo) GetByID(_ context.Context, id int64) (*entity.PurchaseOrder, error) {
	var out *entity.PurchaseOrder
	err := r.c.do(func(st *state) error {
		if o, ok := st.purchases[id]; ok {
			out = &o
		}
		return nil
	})
	return out, err
}

// GetByOrderID devuelve la orden de menor ID con ese código.
func (r *PurchaseOrderRepo) GetByOrderID(_ context.Context, orderID int64) (*entity.PurchaseOrder, error) {
	var out *entity.PurchaseOrder
	err := r.c.do(func(st *state) error {
		for _, o := range st.purchases {
			o := o
			if o.OrderID == orderID && (out == nil || o.ID < out.ID) {
				out = &o
			}
		}
		return nil
	})
	return out, err
}

// ExistsByID indica si existe la orden.
func (r *PurchaseOrderRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	var ok bool
	err := r.c.do(func(st *state) error {
		_, ok = st.purchases[id]
		return nil
	})
	return ok, err
}

// ExistsByOrderID indica si alguna orden tiene ese código.
func (r *PurchaseOrderRepo) ExistsByOrderID(_ context.Context, orderID int64) (bool, error) {
	var ok bool
	err := r.c.do(func(st *state) error {
		for _, o := range st.purchases {
			if o.OrderID == orderID {
				ok = true
				break
			}
		}
		return nil
	})
	return ok, err
}

// Update reemplaza snapshot, línea y total de la orden.
func (r *PurchaseOrderRepo) Update(_ context.Context, order *entity.PurchaseOrder) error {
	return r.c.do(func(st *state) error {
		cur, ok := st.purchases[order.ID]
		if !ok {
			return domain.ErrPurchaseOrderNotFound
		}
		order.UID = cur.UID
		order.OrderID = cur.OrderID
		order.CreatedAt = cur.CreatedAt
		order.UpdatedAt = time.Now()
		st.purchases[order.ID] = *order
		return nil
	})
}

// Delete elimina la orden sin revertir agregados.
func (r *PurchaseOrderRepo) Delete(_ context.Context, id int64) error {
	return r.c.do(func(st *state) error {
		if _, ok := st.purchases[id]; !ok {
			return domain.ErrPurchaseOrderNotFound
		}
		delete(st.purchases, id)
		return nil
	})
}

// List devuelve las órdenes más recientes primero.
func (r *PurchaseOrderRepo) List(_ context.Context, limit, offset int) ([]*entity.PurchaseOrder, error) {
	var list []*entity.PurchaseOrder
	err := r.c.do(func(st *state) error {
		all := make([]*entity.PurchaseOrder, 0, len(st.purchases))
		for _, o := range st.purchases {
			o := o
			all = append(all, &o)
		}
		sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
		list = page(all, limit, offset)
		return nil
	})
	return list, err
}

// SaleOrderRepo implementación en memoria de SaleOrderRepository.
type SaleOrderRepo struct {
	c *conn
}

// Create inserta la orden y asigna su ID sustituto.
func (r *SaleOrderRepo) Create(_ context.Context, order *entity.SaleOrder) error {
	return r.c.do(func(st *state) error {
		for _, o := range st.sales {
			if o.UID == order.UID {
				return domain.ErrDuplicate
			}
		}
		st.saleSeq++
		order.ID = st.saleSeq
		stampCreate(&order.CreatedAt, &order.UpdatedAt)
		st.sales[order.ID] = *order
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *SaleOrderRepo) GetByID(_ context.Context, id int64) (*entity.SaleOrder, error) {
	var out *entity.SaleOrder
	err := r.c.do(func(st *state) error {
		if o, ok := st.sales[id]; ok {
			out = &o
		}
		return nil
	})
	return out, err
}

// GetByOrderID devuelve la orden de menor ID con ese código.
func (r *SaleOrderRepo) GetByOrderID(_ context.Context, orderID int64) (*entity.SaleOrder, error) {
	var out *entity.SaleOrder
	err := r.c.do(func(st *state) error {
		for _, o := range st.sales {
			o := o
			if o.OrderID == orderID && (out == nil || o.ID < out.ID) {
				out = &o
			}
		}
		return nil
	})
	return out, err
}

// ExistsByID indica si existe la orden.
func (r *SaleOrderRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	var ok bool
	err := r.c.do(func(st *state) error {
		_, ok = st.sales[id]
		return nil
	})
	return ok, err
}

// ExistsByOrderID indica si alguna orden tiene ese código.
func (r *SaleOrderRepo) ExistsByOrderID(_ context.Context, orderID int64) (bool, error) {
	var ok bool
	err := r.c.do(func(st *state) error {
		for _, o := range st.sales {
			if o.OrderID == orderID {
				ok = true
				break
			}
		}
		return nil
	})
	return ok, err
}

// Update reemplaza snapshot, línea y total de la orden.
func (r *SaleOrderRepo) Update(_ context.Context, order *entity.SaleOrder) error {
	return r.c.do(func(st *state) error {
		cur, ok := st.sales[order.ID]
		if !ok {
			return domain.ErrSaleOrderNotFound
		}
		order.UID = cur.UID
		order.OrderID = cur.OrderID
		order.CreatedAt = cur.CreatedAt
		order.UpdatedAt = time.Now()
		st.sales[order.ID] = *order
		return nil
	})
}

// Delete elimina la orden sin revertir agregados.
func (r *SaleOrderRepo) Delete(_ context.Context, id int64) error {
	return r.c.do(func(st *state) error {
		if _, ok := st.sales[id]; !ok {
			return domain.ErrSaleOrderNotFound
		}
		delete(st.sales, id)
		return nil
	})
}

// List devuelve las órdenes más recientes primero.
func (r *SaleOrderRepo) List(_ context.Context, limit, offset int) ([]*entity.SaleOrder, error) {
	var list []*entity.SaleOrder
	err := r.c.do(func(st *state) error {
		all := make([]*entity.SaleOrder, 0, len(st.sales))
		for _, o := range st.sales {
			o := o
			all = append(all, &o)
		}
		sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
		list = page(all, limit, offset)
		return nil
	})
	return list, err
}
