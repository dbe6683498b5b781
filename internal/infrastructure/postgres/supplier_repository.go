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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, taxid, name, created_at, updated_at`

// Create persiste un nuevo proveedor y devuelve ID y marcas de tiempo.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (taxid, name) VALUES ($1, $2)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, supplier.TaxID, supplier.Name).
		Scan(&supplier.ID, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		return writeError("insert supplier", err)
	}
	return nil
}

// GetByTaxID obtiene un proveedor por taxid.
func (r *SupplierRepo) GetByTaxID(ctx context.Context, taxID int64) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE taxid = $1`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, taxID).Scan(&s.ID, &s.TaxID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// ExistsByTaxID cuenta proveedores con ese taxid.
func (r *SupplierRepo) ExistsByTaxID(ctx context.Context, taxID int64) (bool, error) {
	return exists(ctx, r.q, `SELECT count(*) FROM suppliers WHERE taxid = $1`, taxID)
}

// Update reemplaza taxid y name. La FK ON UPDATE CASCADE propaga el taxid a products.
func (r *SupplierRepo) Update(ctx context.Context, currentTaxID int64, supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET taxid = $2, name = $3, updated_at = now()
		WHERE taxid = $1
		RETURNING ` + supplierColumns
	err := r.q.QueryRow(ctx, query, currentTaxID, supplier.TaxID, supplier.Name).
		Scan(&supplier.ID, &supplier.TaxID, &supplier.Name, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrSupplierNotFound
		}
		return writeError("update supplier", err)
	}
	return nil
}

// Delete elimina un proveedor. Con productos asociados la FK devuelve 23503 (ErrConflict).
func (r *SupplierRepo) Delete(ctx context.Context, taxID int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE taxid = $1`, taxID)
	if err != nil {
		return writeError("delete supplier", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSupplierNotFound
	}
	return nil
}

// List lista proveedores con paginación.
func (r *SupplierRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	list := []*entity.Supplier{}
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.TaxID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// exists ejecuta un count(*) y devuelve count > 0.
func exists(ctx context.Context, q Querier, query string, args ...any) (bool, error) {
	var n int64
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("exists: %w", err)
	}
	return n > 0, nil
}
