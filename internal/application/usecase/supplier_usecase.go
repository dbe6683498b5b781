package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/lookup"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores (clave de negocio: taxid).
type SupplierUseCase struct {
	repo   repository.SupplierRepository
	lookup *lookup.Checker
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, checker *lookup.Checker) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, lookup: checker}
}

// Create crea un proveedor. Devuelve ErrDuplicate si el taxid o el nombre ya existen.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.PartyRequest) (*dto.SupplierResponse, error) {
	if err := validateParty(&in); err != nil {
		return nil, err
	}
	exists, err := uc.lookup.SupplierExists(ctx, in.TaxID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	supplier := &entity.Supplier{TaxID: in.TaxID, Name: in.Name}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Get obtiene un proveedor por taxid.
func (uc *SupplierUseCase) Get(ctx context.Context, taxID int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	return toSupplierResponse(supplier), nil
}

// Update reemplaza taxid y name. El cambio de taxid se propaga a sus productos;
// las órdenes históricas conservan su snapshot.
func (uc *SupplierUseCase) Update(ctx context.Context, taxID int64, in dto.PartyRequest) (*dto.SupplierResponse, error) {
	if err := validateParty(&in); err != nil {
		return nil, err
	}
	if err := uc.lookup.RequireSupplier(ctx, taxID); err != nil {
		return nil, err
	}
	supplier := &entity.Supplier{TaxID: in.TaxID, Name: in.Name}
	if err := uc.repo.Update(ctx, taxID, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor. Con productos asociados devuelve ErrConflict.
func (uc *SupplierUseCase) Delete(ctx context.Context, taxID int64) error {
	if err := uc.lookup.RequireSupplier(ctx, taxID); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, taxID)
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.SupplierResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

// validateParty exige taxid positivo y nombre no vacío (recortado).
func validateParty(in *dto.PartyRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.TaxID <= 0 || in.Name == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		TaxID:     s.TaxID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
