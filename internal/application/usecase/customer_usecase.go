package usecase

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/lookup"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo   repository.CustomerRepository
	lookup *lookup.Checker
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, checker *lookup.Checker) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, lookup: checker}
}

// Create crea un cliente. Devuelve ErrDuplicate si el taxid o el nombre ya existen.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.PartyRequest) (*dto.CustomerResponse, error) {
	if err := validateParty(&in); err != nil {
		return nil, err
	}
	exists, err := uc.lookup.CustomerExists(ctx, in.TaxID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	customer := &entity.Customer{TaxID: in.TaxID, Name: in.Name}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Get obtiene un cliente por taxid.
func (uc *CustomerUseCase) Get(ctx context.Context, taxID int64) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return toCustomerResponse(customer), nil
}

// Update reemplaza taxid y name del cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, taxID int64, in dto.PartyRequest) (*dto.CustomerResponse, error) {
	if err := validateParty(&in); err != nil {
		return nil, err
	}
	if err := uc.lookup.RequireCustomer(ctx, taxID); err != nil {
		return nil, err
	}
	customer := &entity.Customer{TaxID: in.TaxID, Name: in.Name}
	if err := uc.repo.Update(ctx, taxID, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente.
func (uc *CustomerUseCase) Delete(ctx context.Context, taxID int64) error {
	if err := uc.lookup.RequireCustomer(ctx, taxID); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, taxID)
}

// List lista clientes con paginación.
func (uc *CustomerUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.CustomerResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return items, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		TaxID:     c.TaxID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
