package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/orders"
)

// SaleOrderHandler expone órdenes de venta por id interno y por order_id.
type SaleOrderHandler struct {
	uc *orders.SaleUseCase
}

func NewSaleOrderHandler(uc *orders.SaleUseCase) *SaleOrderHandler {
	return &SaleOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de venta
// @Description  Concilia precio promedio de venta y descuenta stock. No es idempotente.
// @Tags         sale-orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.SaleOrderRequest  true  "customer_taxid, product_pn, sale_price, amount"
// @Success      201   {object}  dto.SaleOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sos [post]
func (h *SaleOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.SaleOrderRequest
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
// @Summary      Listar órdenes de venta
// @Tags         sale-orders
// @Produce      json
// @Security     Bearer
// @Param        skip   query  int  false  "registros a saltar"
// @Param        limit  query  int  false  "máximo de registros"
// @Success      200    {array}  dto.SaleOrderResponse
// @Router       /api/sos [get]
func (h *SaleOrderHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener orden de venta por id
// @Tags         sale-orders
// @Produce      json
// @Security     Bearer
// @Param        id  path  int  true  "id interno"
// @Success      200  {object}  dto.SaleOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/so_id/{id} [get]
func (h *SaleOrderHandler) Get(c *fiber.Ctx) error {
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
// @Summary      Obtener orden de venta por order_id
// @Description  Si varias órdenes comparten order_id se devuelve la más antigua.
// @Tags         sale-orders
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  int  true  "código YYYYMMDDHHmmss"
// @Success      200       {object}  dto.SaleOrderResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/so/{order_id} [get]
func (h *SaleOrderHandler) GetByOrderID(c *fiber.Ctx) error {
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
// @Summary      Editar orden de venta por id
// @Description  Vuelve a tomar el snapshot de producto y cliente. No re-concilia el producto.
// @Tags         sale-orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  int                       true  "id interno"
// @Param        body  body  dto.SaleOrderRequest  true  "customer_taxid, product_pn, sale_price, amount"
// @Success      200   {object}  dto.SaleOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/so_id/{id} [patch]
func (h *SaleOrderHandler) Update(c *fiber.Ctx) error {
	id, ok := int64Param(c, "id")
	if !ok {
		return nil
	}
	var in dto.SaleOrderRequest
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
// @Summary      Editar orden de venta por order_id
// @Tags         sale-orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  int                       true  "código YYYYMMDDHHmmss"
// @Param        body      body  dto.SaleOrderRequest  true  "customer_taxid, product_pn, sale_price, amount"
// @Success      200       {object}  dto.SaleOrderResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Failure      422       {object}  dto.ErrorResponse
// @Router       /api/so/{order_id} [patch]
func (h *SaleOrderHandler) UpdateByOrderID(c *fiber.Ctx) error {
	orderID, ok := int64Param(c, "order_id")
	if !ok {
		return nil
	}
	var in dto.SaleOrderRequest
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
// @Summary      Eliminar orden de venta por id
// @Description  No revierte los agregados del producto.
// @Tags         sale-orders
// @Produce      json
// @Security     Bearer
// @Param        id  path  int  true  "id interno"
// @Success      200  {boolean}  bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/so_id/{id} [delete]
func (h *SaleOrderHandler) Delete(c *fiber.Ctx) error {
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
// @Summary      Eliminar orden de venta por order_id
// @Tags         sale-orders
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  int  true  "código YYYYMMDDHHmmss"
// @Success      200       {boolean}  bool
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/so/{order_id} [delete]
func (h *SaleOrderHandler) DeleteByOrderID(c *fiber.Ctx) error {
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
// @Summary      PDF de la orden de venta
// @Tags         sale-orders
// @Produce      application/pdf
// @Security     Bearer
// @Param        id  path  int  true  "id interno"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/so_id/{id}/pdf [get]
func (h *SaleOrderHandler) Document(c *fiber.Ctx) error {
	id, ok := int64Param(c, "id")
	if !ok {
		return nil
	}
	pdf, err := h.uc.Document(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="orden-venta-`+strconv.FormatInt(id, 10)+`.pdf"`)
	return c.Send(pdf)
}
