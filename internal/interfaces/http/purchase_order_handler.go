package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/orders"
)

// PurchaseOrderHandler expone órdenes de compra por id interno y por order_id.
type PurchaseOrderHandler struct {
	uc *orders.PurchaseUseCase
}

func NewPurchaseOrderHandler(uc *orders.PurchaseUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de compra
// @Description  Concilia costo promedio ponderado y stock del producto. No es idempotente.
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.PurchaseOrderRequest  true  "product_pn, cost_price, amount"
// @Success      201   {object}  dto.PurchaseOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/pos [post]
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.PurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         purchase-orders
// @Produce      json
// @Security     Bearer
// @Param        skip   query  int  false  "registros a saltar"
// @Param        limit  query  int  false  "máximo de registros"
// @Success      200    {array}  dto.PurchaseOrderResponse
// @Router       /api/pos [get]
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	page, ok := pageQuery(c)
	if !ok {
		return nil
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener orden de compra por id
// @Tags         purchase-orders
// @Produce      json
// @Security     Bearer
// @Param        id  path  int  true  "id interno"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/po_id/{id} [get]
func (h *PurchaseOrderHandler) Get(c *fiber.Ctx) error {
	id, ok := int64Param(c, "id")
	if !ok {
		return nil
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByOrderID godoc
// @Summary      Obtener orden de compra por order_id
// @Description  Si varias órdenes comparten order_id se devuelve la más antigua.
// @Tags         purchase-orders
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  int  true  "código YYYYMMDDHHmmss"
// @Success      200       {object}  dto.PurchaseOrderResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/po/{order_id} [get]
func (h *PurchaseOrderHandler) GetByOrderID(c *fiber.Ctx) error {
	orderID, ok := int64Param(c, "order_id")
	if !ok {
		return nil
	}
	out, err := h.uc.GetByOrderID(c.UserContext(), orderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar orden de compra por id
// @Description  Vuelve a tomar el snapshot de producto y proveedor. No re-concilia el producto.
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  int                       true  "id interno"
// @Param        body  body  dto.PurchaseOrderRequest  true  "product_pn, cost_price, amount"
// @Success      200   {object}  dto.PurchaseOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/po_id/{id} [patch]
func (h *PurchaseOrderHandler) Update(c *fiber.Ctx) error {
	id, ok := int64Param(c, "id")
	if !ok {
		return nil
	}
	var in dto.PurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateByOrderID godoc
// @Summary      Editar orden de compra por order_id
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  int                       true  "código YYYYMMDDHHmmss"
// @Param        body      body  dto.PurchaseOrderRequest  true  "product_pn, cost_price, amount"
// @Success      200       {object}  dto.PurchaseOrderResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Failure      422       {object}  dto.ErrorResponse
// @Router       /api/po/{order_id} [patch]
func (h *PurchaseOrderHandler) UpdateByOrderID(c *fiber.Ctx) error {
	orderID, ok := int64Param(c, "order_id")
	if !ok {
		return nil
	}
	var in dto.PurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateByOrderID(c.UserContext(), orderID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar orden de compra por id
// @Description  No revierte los agregados del producto.
// @Tags         purchase-orders
// @Produce      json
// @Security     Bearer
// @Param        id  path  int  true  "id interno"
// @Success      200  {boolean}  bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/po_id/{id} [delete]
func (h *PurchaseOrderHandler) Delete(c *fiber.Ctx) error {
	id, ok := int64Param(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(true)
}

// DeleteByOrderID godoc
// @Summary      Eliminar orden de compra por order_id
// @Tags         purchase-orders
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  int  true  "código YYYYMMDDHHmmss"
// @Success      200       {boolean}  bool
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/po/{order_id} [delete]
func (h *PurchaseOrderHandler) DeleteByOrderID(c *fiber.Ctx) error {
	orderID, ok := int64Param(c, "order_id")
	if !ok {
		return nil
	}
	if err := h.uc.DeleteByOrderID(c.UserContext(), orderID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(true)
}

// Document godoc
// @Summary      PDF de la orden de compra
// @Tags         purchase-orders
// @Produce      application/pdf
// @Security     Bearer
// @Param        id  path  int  true  "id interno"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/po_id/{id}/pdf [get]
func (h *PurchaseOrderHandler) Document(c *fiber.Ctx) error {
	id, ok := int64Param(c, "id")
	if !ok {
		return nil
	}
	pdf, err := h.uc.Document(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="orden-compra-`+strconv.FormatInt(id, 10)+`.pdf"`)
	return c.Send(pdf)
}
