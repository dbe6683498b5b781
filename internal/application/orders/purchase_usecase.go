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

// PurchaseUseCase registra órdenes de compra y concilia costo promedio y stock del producto
// en la misma transacción (SELECT FOR UPDATE + versión optimista).
type PurchaseUseCase struct {
	txRunner TxRunner
	repo     repository.PurchaseOrderRepository
	lookup   *lookup.Checker
	policy   EditPolicy
	rec      Recorder
	docs     DocumentRenderer
	log      zerolog.Logger
	now      func() time.Time
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	txRunner TxRunner,
	repo repository.PurchaseOrderRepository,
	checker *lookup.Checker,
	settings Settings,
) *PurchaseUseCase {
	s := settings.withDefaults()
	return &PurchaseUseCase{
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

// Create valida, verifica existencia y concilia. No es idempotente: cada llamada
// crea una orden nueva y vuelve a aplicar la compra.
func (uc *PurchaseUseCase) Create(ctx context.Context, in dto.PurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.CostPrice <= 0 || in.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.lookup.RequireProduct(ctx, in.ProductPN); err != nil {
		return nil, err
	}

	now := uc.now()
	order := &entity.PurchaseOrder{
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
		if err := stampPurchase(ctx, repos, order, product); err != nil {
			return err
		}
		order.SetLine(in.CostPrice, in.Amount)
		if err := product.ApplyPurchase(in.CostPrice, in.Amount); err != nil {
			return err
		}
		if err := repos.Products.UpdateAggregates(ctx, product); err != nil {
			return err
		}
		return repos.PurchaseOrders.Create(ctx, order)
	})
	if err != nil {
		return nil, handleTxError(uc.log, uc.rec, KindPurchase, "crear", in.ProductPN, err)
	}

	uc.rec.OrderCreated(KindPurchase, in.Amount)
	uc.log.Info().Int64("id", order.ID).Int64("order_id", order.OrderID).
		Int64("product_pn", order.ProductPN).Int64("amount", order.Amount).
		Msg("orden de compra registrada")
	return toPurchaseResponse(order), nil
}

// Get obtiene una orden por ID sustituto.
func (uc *PurchaseUseCase) Get(ctx context.Context, id int64) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.byID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(order), nil
}

// GetByOrderID obtiene la orden más antigua con ese código de fecha.
func (uc *PurchaseUseCase) GetByOrderID(ctx context.Context, orderID int64) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.byOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(order), nil
}

// Update edita la orden identificada por ID sustituto.
func (uc *PurchaseUseCase) Update(ctx context.Context, id int64, in dto.PurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if err := uc.lookup.RequirePurchaseOrder(ctx, id); err != nil {
		return nil, err
	}
	return uc.update(ctx, in, func(repos TxRepos) (*entity.PurchaseOrder, error) {
		return repos.PurchaseOrders.GetByID(ctx, id)
	})
}

// UpdateByOrderID edita la orden más antigua con ese código de fecha.
func (uc *PurchaseUseCase) UpdateByOrderID(ctx context.Context, orderID int64, in dto.PurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if err := uc.lookup.RequirePurchaseOrderCode(ctx, orderID); err != nil {
		return nil, err
	}
	return uc.update(ctx, in, func(repos TxRepos) (*entity.PurchaseOrder, error) {
		return repos.PurchaseOrders.GetByOrderID(ctx, orderID)
	})
}

// update re-estampa el snapshot y aplica la política de edición. Nunca concilia.
func (uc *PurchaseUseCase) update(
	ctx context.Context,
	in dto.PurchaseOrderRequest,
	load func(repos TxRepos) (*entity.PurchaseOrder, error),
) (*dto.PurchaseOrderResponse, error) {
	if in.CostPrice <= 0 || in.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.lookup.RequireProduct(ctx, in.ProductPN); err != nil {
		return nil, err
	}

	var order *entity.PurchaseOrder
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		var err error
		order, err = load(repos)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrPurchaseOrderNotFound
		}
		product, err := repos.Products.GetByPortNumber(ctx, in.ProductPN)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if order.ProductID != product.ID || order.CostPrice != in.CostPrice || order.Amount != in.Amount {
			if uc.policy == EditMetadataOnly {
				return domain.ErrConflict
			}
			uc.log.Warn().Int64("id", order.ID).Int64("product_pn", in.ProductPN).
				Int64("cost_price", in.CostPrice).Int64("amount", in.Amount).
				Msg("orden de compra editada sin reconciliar agregados del producto")
		}
		if err := stampPurchase(ctx, repos, order, product); err != nil {
			return err
		}
		order.SetLine(in.CostPrice, in.Amount)
		return repos.PurchaseOrders.Update(ctx, order)
	})
	if err != nil {
		return nil, handleTxError(uc.log, uc.rec, KindPurchase, "editar", in.ProductPN, err)
	}
	uc.rec.OrderUpdated(KindPurchase)
	return toPurchaseResponse(order), nil
}

// Delete elimina la orden por ID sustituto. No revierte los agregados del producto.
func (uc *PurchaseUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.lookup.RequirePurchaseOrder(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.rec.OrderDeleted(KindPurchase)
	return nil
}

// DeleteByOrderID elimina la orden más antigua con ese código de fecha.
func (uc *PurchaseUseCase) DeleteByOrderID(ctx context.Context, orderID int64) error {
	order, err := uc.byOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, order.ID); err != nil {
		return err
	}
	uc.rec.OrderDeleted(KindPurchase)
	return nil
}

// List lista órdenes de compra, más recientes primero.
func (uc *PurchaseUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.PurchaseOrderResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toPurchaseResponse(o))
	}
	return items, nil
}

// Document genera el PDF de la orden.
func (uc *PurchaseUseCase) Document(ctx context.Context, id int64) ([]byte, error) {
	if uc.docs == nil {
		return nil, errors.New("orders: generador de documentos no configurado")
	}
	order, err := uc.byID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.docs.RenderPurchaseOrder(order)
}

func (uc *PurchaseUseCase) byID(ctx context.Context, id int64) (*entity.PurchaseOrder, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrPurchaseOrderNotFound
	}
	return order, nil
}

func (uc *PurchaseUseCase) byOrderID(ctx context.Context, orderID int64) (*entity.PurchaseOrder, error) {
	order, err := uc.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrPurchaseOrderNotFound
	}
	return order, nil
}

func toPurchaseResponse(o *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	return &dto.PurchaseOrderResponse{
		ID:            o.ID,
		UID:           o.UID,
		OrderID:       o.OrderID,
		SupplierTaxID: o.SupplierTaxID,
		SupplierName:  o.SupplierName,
		ProductID:     o.ProductID,
		ProductPN:     o.ProductPN,
		ProductName:   o.ProductName,
		CostPrice:     o.CostPrice,
		Amount:        o.Amount,
		TotalPrice:    o.TotalPrice,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
