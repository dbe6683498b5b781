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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, port_number, name, supplier_taxid, cost_price, amount, sale_price, sale_amount, version, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.PortNumber, &p.Name, &p.SupplierTaxID,
		&p.CostPrice, &p.Amount, &p.SalePrice, &p.SaleAmount, &p.Version,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto. Agregados en 0 y versión 1 (defaults del esquema).
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (port_number, name, supplier_taxid)
		VALUES ($1, $2, $3)
		RETURNING ` + productColumns
	created, err := scanProduct(r.q.QueryRow(ctx, query, product.PortNumber, product.Name, product.SupplierTaxID))
	if err != nil {
		return writeError("insert product", err)
	}
	*product = *created
	return nil
}

// GetByPortNumber obtiene un producto por número de parte.
func (r *ProductRepo) GetByPortNumber(ctx context.Context, portNumber int64) (*entity.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM products WHERE port_number = $1`, portNumber)
}

// GetByPortNumberForUpdate obtiene el producto bloqueando la fila (solo dentro de una tx).
func (r *ProductRepo) GetByPortNumberForUpdate(ctx context.Context, portNumber int64) (*entity.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM products WHERE port_number = $1 FOR UPDATE`, portNumber)
}

func (r *ProductRepo) get(ctx context.Context, query string, portNumber int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, portNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// ExistsByPortNumber cuenta productos con ese número de parte.
func (r *ProductRepo) ExistsByPortNumber(ctx context.Context, portNumber int64) (bool, error) {
	return exists(ctx, r.q, `SELECT count(*) FROM products WHERE port_number = $1`, portNumber)
}

// Update modifica port_number, name y supplier_taxid. No toca costo, stock ni versión.
func (r *ProductRepo) Update(ctx context.Context, currentPortNumber int64, product *entity.Product) error {
	query := `
		UPDATE products SET port_number = $2, name = $3, supplier_taxid = $4, updated_at = now()
		WHERE port_number = $1
		RETURNING ` + productColumns
	updated, err := scanProduct(r.q.QueryRow(ctx, query,
		currentPortNumber, product.PortNumber, product.Name, product.SupplierTaxID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrProductNotFound
		}
		return writeError("update product", err)
	}
	*product = *updated
	return nil
}

// UpdateAggregates persiste costo, stock y venta si la versión no cambió desde la lectura.
func (r *ProductRepo) UpdateAggregates(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET cost_price = $3, amount = $4, sale_price = $5, sale_amount = $6,
		    version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $2
		RETURNING version, updated_at`
	err := r.q.QueryRow(ctx, query,
		product.ID, product.Version,
		product.CostPrice, product.Amount, product.SalePrice, product.SaleAmount,
	).Scan(&product.Version, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrConcurrentUpdate
		}
		return fmt.Errorf("update product aggregates: %w", err)
	}
	return nil
}

// Delete elimina un producto por número de parte.
func (r *ProductRepo) Delete(ctx context.Context, portNumber int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE port_number = $1`, portNumber)
	if err != nil {
		return writeError("delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// List lista productos con paginación.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

// ListBySupplier lista los productos de un proveedor.
func (r *ProductRepo) ListBySupplier(ctx context.Context, supplierTaxID int64, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE supplier_taxid = $1 ORDER BY id LIMIT $2 OFFSET $3`
	return r.list(ctx, query, supplierTaxID, limit, offset)
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := []*entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
