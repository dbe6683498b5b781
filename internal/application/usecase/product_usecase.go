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

// ProductUseCase casos de uso CRUD para productos. Costo, stock y venta se manejan solo
// vía órdenes de compra y venta.
type ProductUseCase struct {
	repo   repository.ProductRepository
	lookup *lookup.Checker
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, checker *lookup.Checker) *ProductUseCase {
	return &ProductUseCase{repo: repo, lookup: checker}
}

// Create crea un producto del proveedor. Los agregados inician en cero.
func (uc *ProductUseCase) Create(ctx context.Context, supplierTaxID int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.PortNumber <= 0 || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.lookup.RequireSupplier(ctx, supplierTaxID); err != nil {
		return nil, err
	}
	exists, err := uc.lookup.ProductExists(ctx, in.PortNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	product := &entity.Product{
		PortNumber:    in.PortNumber,
		Name:          in.Name,
		SupplierTaxID: supplierTaxID,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Get obtiene un producto del proveedor indicado.
func (uc *ProductUseCase) Get(ctx context.Context, supplierTaxID, portNumber int64) (*dto.ProductResponse, error) {
	product, err := uc.owned(ctx, supplierTaxID, portNumber)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update modifica port_number, name o proveedor. Nunca toca los agregados.
func (uc *ProductUseCase) Update(ctx context.Context, supplierTaxID, portNumber int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.owned(ctx, supplierTaxID, portNumber)
	if err != nil {
		return nil, err
	}
	if in.PortNumber != nil {
		if *in.PortNumber <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product.PortNumber = *in.PortNumber
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.SupplierTaxID != nil && *in.SupplierTaxID != product.SupplierTaxID {
		if err := uc.lookup.RequireSupplier(ctx, *in.SupplierTaxID); err != nil {
			return nil, err
		}
		product.SupplierTaxID = *in.SupplierTaxID
	}
	if err := uc.repo.Update(ctx, portNumber, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto del proveedor indicado.
func (uc *ProductUseCase) Delete(ctx context.Context, supplierTaxID, portNumber int64) error {
	if _, err := uc.owned(ctx, supplierTaxID, portNumber); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, portNumber)
}

// List lista todos los productos.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListBySupplier lista los productos de un proveedor existente.
func (uc *ProductUseCase) ListBySupplier(ctx context.Context, supplierTaxID int64, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.Normalize()
	if err := uc.lookup.RequireSupplier(ctx, supplierTaxID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListBySupplier(ctx, supplierTaxID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// owned devuelve el producto solo si pertenece al proveedor de la ruta.
func (uc *ProductUseCase) owned(ctx context.Context, supplierTaxID, portNumber int64) (*entity.Product, error) {
	if err := uc.lookup.RequireSupplier(ctx, supplierTaxID); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByPortNumber(ctx, portNumber)
	if err != nil {
		return nil, err
	}
	if product == nil || product.SupplierTaxID != supplierTaxID {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		PortNumber:    p.PortNumber,
		Name:          p.Name,
		SupplierTaxID: p.SupplierTaxID,
		CostPrice:     p.CostPrice,
		Amount:        p.Amount,
		SalePrice:     p.SalePrice,
		SaleAmount:    p.SaleAmount,
		Version:       p.Version,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
