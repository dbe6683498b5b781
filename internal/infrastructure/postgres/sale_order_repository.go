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

var _ repository.SaleOrderRepository = (*SaleOrderRepo)(nil)

// SaleOrderRepo implementación de SaleOrderRepository (usable con pool o tx).
type SaleOrderRepo struct {
	q Querier
}

// NewSaleOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleOrderRepository(q Querier) *SaleOrderRepo {
	return &SaleOrderRepo{q: q}
}

const saleOrderColumns = `id, uid::text, order_id, customer_taxid, customer_name, product_id, product_pn, product_name,
	sale_price, amount, total_price, created_at, updated_at`

func scanSaleOrder(row pgx.Row) (*entity.SaleOrder, error) {
	var o entity.SaleOrder
	err := row.Scan(
		&o.ID, &o.UID, &o.OrderID, &o.CustomerTaxID, &o.CustomerName,
		&o.ProductID, &o.ProductPN, &o.ProductName,
		&o.SalePrice, &o.Amount, &o.TotalPrice, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste la orden y asigna el ID sustituto.
func (r *SaleOrderRepo) Create(ctx context.Context, o *entity.SaleOrder) error {
	query := `
		INSERT INTO sale_orders (uid, order_id, customer_taxid, customer_name, product_id, product_pn, product_name,
			sale_price, amount, total_price, created_at, updated_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		o.UID, o.OrderID, o.CustomerTaxID, o.CustomerName, o.ProductID, o.ProductPN, o.ProductName,
		o.SalePrice, o.Amount, o.TotalPrice, o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		return writeError("insert sale order", err)
	}
	return nil
}

// GetByID obtiene una orden por ID sustituto.
func (r *SaleOrderRepo) GetByID(ctx context.Context, id int64) (*entity.SaleOrder, error) {
	return r.get(ctx, `SELECT `+saleOrderColumns+` FROM sale_orders WHERE id = $1`, id)
}

// GetByOrderID obtiene la orden más antigua con ese código de fecha.
func (r *SaleOrderRepo) GetByOrderID(ctx context.Context, orderID int64) (*entity.SaleOrder, error) {
	return r.get(ctx, `SELECT `+saleOrderColumns+` FROM sale_orders WHERE order_id = $1 ORDER BY id LIMIT 1`, orderID)
}

func (r *SaleOrderRepo) get(ctx context.Context, query string, arg int64) (*entity.SaleOrder, error) {
	o, err := scanSaleOrder(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale order: %w", err)
	}
	return o, nil
}

// ExistsByID cuenta órdenes con ese ID.
func (r *SaleOrderRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.q, `SELECT count(*) FROM sale_orders WHERE id = $1`, id)
}

// ExistsByOrderID cuenta órdenes con ese código de fecha.
func (r *SaleOrderRepo) ExistsByOrderID(ctx context.Context, orderID int64) (bool, error) {
	return exists(ctx, r.q, `SELECT count(*) FROM sale_orders WHERE order_id = $1`, orderID)
}

// Update reemplaza snapshot, línea y total. uid, order_id y created_at no cambian.
func (r *SaleOrderRepo) Update(ctx context.Context, o *entity.SaleOrder) error {
	query := `
		UPDATE sale_orders
		SET customer_taxid = $2, customer_name = $3, product_id = $4, product_pn = $5, product_name = $6,
		    sale_price = $7, amount = $8, total_price = $9, updated_at = now()
		WHERE id = $1
		RETURNING ` + saleOrderColumns
	updated, err := scanSaleOrder(r.q.QueryRow(ctx, query,
		o.ID, o.CustomerTaxID, o.CustomerName, o.ProductID, o.ProductPN, o.ProductName,
		o.SalePrice, o.Amount, o.TotalPrice,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrSaleOrderNotFound
		}
		return writeError("update sale order", err)
	}
	*o = *updated
	return nil
}

// Delete elimina la orden por ID.
func (r *SaleOrderRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM sale_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSaleOrderNotFound
	}
	return nil
}

// List lista órdenes, más recientes primero.
func (r *SaleOrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.SaleOrder, error) {
	query := `SELECT ` + saleOrderColumns + ` FROM sale_orders ORDER BY id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sale orders: %w", err)
	}
	defer rows.Close()
	list := []*entity.SaleOrder{}
	for rows.Next() {
		o, err := scanSaleOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
