package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de PurchaseOrderRepository (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const purchaseOrderColumns = `id, uid::text, order_id, supplier_taxid, supplier_name, product_id, product_pn, product_name,
	cost_price, amount, total_price, created_at, updated_at`

func scanPurchaseOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	err := row.Scan(
		&o.ID, &o.UID, &o.OrderID, &o.SupplierTaxID, &o.SupplierName,
		&o.ProductID, &o.ProductPN, &o.ProductName,
		&o.CostPrice, &o.Amount, &o.TotalPrice, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste la orden y asigna el ID sustituto.
func (r *PurchaseOrderRepo) Create(ctx context.Context, o *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (uid, order_id, supplier_taxid, supplier_name, product_id, product_pn, product_name,
			cost_price, amount, total_price, created_at, updated_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		o.UID, o.OrderID, o.SupplierTaxID, o.SupplierName, o.ProductID, o.ProductPN, o.ProductName,
		o.CostPrice, o.Amount, o.TotalPrice, o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		return writeError("insert purchase order", err)
	}
	return nil
}

// GetByID obtiene una orden por ID sustituto.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id int64) (*entity.PurchaseOrder, error) {
	return r.get(ctx, `SELECT `+purchaseOrderColumns+` FROM purchase_orders WHERE id = $1`, id)
}

// GetByOrderID obtiene la orden más antigua con ese código de fecha.
func (r *PurchaseOrderRepo) GetByOrderID(ctx context.Context, orderID int64) (*entity.PurchaseOrder, error) {
	return r.get(ctx, `SELECT `+purchaseOrderColumns+` FROM purchase_orders WHERE order_id = $1 ORDER BY id LIMIT 1`, orderID)
}

func (r *PurchaseOrderRepo) get(ctx context.Context, query string, arg int64) (*entity.PurchaseOrder, error) {
	o, err := scanPurchaseOrder(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return o, nil
}

// ExistsByID cuenta órdenes con ese ID.
func (r *PurchaseOrderRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.q, `SELECT count(*) FROM purchase_orders WHERE id = $1`, id)
}

// ExistsByOrderID cuenta órdenes con ese código de fecha.
func (r *PurchaseOrderRepo) ExistsByOrderID(ctx context.Context, orderID int64) (bool, error) {
	return exists(ctx, r.q, `SELECT count(*) FROM purchase_orders WHERE order_id = $1`, orderID)
}

// Update reemplaza snapshot, línea y total. uid, order_id y created_at no cambian.
func (r *PurchaseOrderRepo) Update(ctx context.Context, o *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders
		SET supplier_taxid = $2, supplier_name = $3, product_id = $4, product_pn = $5, product_name = $6,
		    cost_price = $7, amount = $8, total_price = $9, updated_at = now()
		WHERE id = $1
		RETURNING ` + purchaseOrderColumns
	updated, err := scanPurchaseOrder(r.q.QueryRow(ctx, query,
		o.ID, o.SupplierTaxID, o.SupplierName, o.ProductID, o.ProductPN, o.ProductName,
		o.CostPrice, o.Amount, o.TotalPrice,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrPurchaseOrderNotFound
		}
		return writeError("update purchase order", err)
	}
	*o = *updated
	return nil
}

// Delete elimina la orden por ID.
func (r *PurchaseOrderRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPurchaseOrderNotFound
	}
	return nil
}

// List lista órdenes, más recientes primero.
func (r *PurchaseOrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders ORDER BY id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	list := []*entity.PurchaseOrder{}
	for rows.Next() {
		o, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
