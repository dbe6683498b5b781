package orders

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/lookup"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// SaleUseCase registra órdenes de venta y concilia precio promedio de venta, acumulado
// vendido y stock del producto en la misma transacción.
type SaleUseCase struct {
	txRunner TxRunner
	repo     repository.SaleOrderRepository
	lookup   *lookup.Checker
	policy   EditPolicy
	rec      Recorder
	docs     DocumentRenderer
	log      zerolog.Logger
	now      func() time.Time
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	repo repository.SaleOrderRepository,
	checker *lookup.Checker,
	settings Settings,
) *SaleUseCase {
	s := settings.withDefaults()
	return &SaleUseCase{
		txRunner: txRunner,
		repo:     repo,
		lookup:   checker,
		policy:   s.EditPolicy,
		rec:      s.Recorder,
		docs:     s.Documents,
		log:      s.Logger,
		now:      time.Now,
	}
}

// Create valida, verifica producto y cliente y concilia. Rechaza con ErrInsufficientStock
// si la cantidad supera el stock disponible.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.SaleOrderRequest) (*dto.SaleOrderResponse, error) {
	if in.SalePrice <= 0 || in.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.lookup.RequireProduct(ctx, in.ProductPN); err != nil {
		return nil, err
	}
	if err := uc.lookup.RequireCustomer(ctx, in.CustomerTaxID); err != nil {
		return nil, err
	}

	now := uc.now()
	order := &entity.SaleOrder{
		UID:       uuid.New().String(),
		OrderID:   entity.OrderCode(now),
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		product, err := lockProduct(ctx, repos, in.ProductPN)
		if err != nil {
			return err
		}
		if err := stampSale(ctx, repos, order, product, in.CustomerTaxID); err != nil {
			return err
		}
		order.SetLine(in.SalePrice, in.Amount)
		if err := product.ApplySale(in.SalePrice, in.Amount); err != nil {
			return err
		}
		if err := repos.Products.UpdateAggregates(ctx, product); err != nil {
			return err
		}
		return repos.SaleOrders.Create(ctx, order)
	})
	if err != nil {
		return nil, handleTxError(uc.log, uc.rec, KindSale, "crear", in.ProductPN, err)
	}

	uc.rec.OrderCreated(KindSale, in.Amount)
	uc.log.Info().Int64("id", order.ID).Int64("order_id", order.OrderID).
		Int64("product_pn", order.ProductPN).Int64("amount", order.Amount).
		Msg("orden de venta registrada")
	return toSaleResponse(order), nil
}

// Get obtiene una orden por ID sustituto.
func (uc *SaleUseCase) Get(ctx context.Context, id int64) (*dto.SaleOrderResponse, error) {
	order, err := uc.byID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(order), nil
}

// GetByOrderID obtiene la orden más antigua con ese código de fecha.
func (uc *SaleUseCase) GetByOrderID(ctx context.Context, orderID int64) (*dto.SaleOrderResponse, error) {
	order, err := uc.byOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(order), nil
}

// Update edita la orden identificada por ID sustituto.
func (uc *SaleUseCase) Update(ctx context.Context, id int64, in dto.SaleOrderRequest) (*dto.SaleOrderResponse, error) {
	if err := uc.lookup.RequireSaleOrder(ctx, id); err != nil {
		return nil, err
	}
	return uc.update(ctx, in, func(repos TxRepos) (*entity.SaleOrder, error) {
		return repos.SaleOrders.GetByID(ctx, id)
	})
}

// UpdateByOrderID edita la orden más antigua con ese código de fecha.
func (uc *SaleUseCase) UpdateByOrderID(ctx context.Context, orderID int64, in dto.SaleOrderRequest) (*dto.SaleOrderResponse, error) {
	if err := uc.lookup.RequireSaleOrderCode(ctx, orderID); err != nil {
		return nil, err
	}
	return uc.update(ctx, in, func(repos TxRepos) (*entity.SaleOrder, error) {
		return repos.SaleOrders.GetByOrderID(ctx, orderID)
	})
}

// update re-resuelve producto y cliente, re-estampa el snapshot y aplica la política de edición.
func (uc *SaleUseCase) update(
	ctx context.Context,
	in dto.SaleOrderRequest,
	load func(repos TxRepos) (*entity.SaleOrder, error),
) (*dto.SaleOrderResponse, error) {
	if in.SalePrice <= 0 || in.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.lookup.RequireProduct(ctx, in.ProductPN); err != nil {
		return nil, err
	}
	if err := uc.lookup.RequireCustomer(ctx, in.CustomerTaxID); err != nil {
		return nil, err
	}

	var order *entity.SaleOrder
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		var err error
		order, err = load(repos)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrSaleOrderNotFound
		}
		product, err := repos.Products.GetByPortNumber(ctx, in.ProductPN)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if order.ProductID != product.ID || order.SalePrice != in.SalePrice || order.Amount != in.Amount {
			if uc.policy == EditMetadataOnly {
				return domain.ErrConflict
			}
			uc.log.Warn().Int64("id", order.ID).Int64("product_pn", in.ProductPN).
				Int64("sale_price", in.SalePrice).Int64("amount", in.Amount).
				Msg("orden de venta editada sin reconciliar agregados del producto")
		}
		if err := stampSale(ctx, repos, order, product, in.CustomerTaxID); err != nil {
			return err
		}
		order.SetLine(in.SalePrice, in.Amount)
		return repos.SaleOrders.Update(ctx, order)
	})
	if err != nil {
		return nil, handleTxError(uc.log, uc.rec, KindSale, "editar", in.ProductPN, err)
	}
	uc.rec.OrderUpdated(KindSale)
	return toSaleResponse(order), nil
}

// Delete elimina la orden por ID sustituto. No revierte los agregados del producto.
func (uc *SaleUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.lookup.RequireSaleOrder(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.rec.OrderDeleted(KindSale)
	return nil
}

// DeleteByOrderID elimina la orden más antigua con ese código de fecha.
func (uc *SaleUseCase) DeleteByOrderID(ctx context.Context, orderID int64) error {
	order, err := uc.byOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, order.ID); err != nil {
		return err
	}
	uc.rec.OrderDeleted(KindSale)
	return nil
}

// List lista órdenes de venta, más recientes primero.
func (uc *SaleUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.SaleOrderResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleOrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toSaleResponse(o))
	}
	return items, nil
}

// Document genera el PDF de la orden.
func (uc *SaleUseCase) Document(ctx context.Context, id int64) ([]byte, error) {
	if uc.docs == nil {
		return nil, errors.New("orders: generador de documentos no configurado")
	}
	order, err := uc.byID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.docs.RenderSaleOrder(order)
}

func (uc *SaleUseCase) byID(ctx context.Context, id int64) (*entity.SaleOrder, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrSaleOrderNotFound
	}
	return order, nil
}

func (uc *SaleUseCase) byOrderID(ctx context.Context, orderID int64) (*entity.SaleOrder, error) {
	order, err := uc.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrSaleOrderNotFound
	}
	return order, nil
}

func toSaleResponse(o *entity.SaleOrder) *dto.SaleOrderResponse {
	return &dto.SaleOrderResponse{
		ID:            o.ID,
		UID:           o.UID,
		OrderID:       o.OrderID,
		CustomerTaxID: o.CustomerTaxID,
		CustomerName:  o.CustomerName,
		ProductID:     o.ProductID,
		ProductPN:     o.ProductPN,
		ProductName:   o.ProductName,
		SalePrice:     o.SalePrice,
		Amount:        o.Amount,
		TotalPrice:    o.TotalPrice,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
