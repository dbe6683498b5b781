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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, taxid, name, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (taxid, name) VALUES ($1, $2)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, customer.TaxID, customer.Name).
		Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return writeError("insert customer", err)
	}
	return nil
}

// GetByTaxID obtiene un cliente por taxid.
func (r *CustomerRepo) GetByTaxID(ctx context.Context, taxID int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE taxid = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, taxID).Scan(&c.ID, &c.TaxID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ExistsByTaxID cuenta clientes con ese taxid.
func (r *CustomerRepo) ExistsByTaxID(ctx context.Context, taxID int64) (bool, error) {
	return exists(ctx, r.q, `SELECT count(*) FROM customers WHERE taxid = $1`, taxID)
}

// Update reemplaza taxid y name del cliente.
func (r *CustomerRepo) Update(ctx context.Context, currentTaxID int64, customer *entity.Customer) error {
	query := `
		UPDATE customers SET taxid = $2, name = $3, updated_at = now()
		WHERE taxid = $1
		RETURNING ` + customerColumns
	err := r.q.QueryRow(ctx, query, currentTaxID, customer.TaxID, customer.Name).
		Scan(&customer.ID, &customer.TaxID, &customer.Name, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCustomerNotFound
		}
		return writeError("update customer", err)
	}
	return nil
}

// Delete elimina un cliente por taxid.
func (r *CustomerRepo) Delete(ctx context.Context, taxID int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE taxid = $1`, taxID)
	if err != nil {
		return writeError("delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// List lista clientes con paginación.
func (r *CustomerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	list := []*entity.Customer{}
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.TaxID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
