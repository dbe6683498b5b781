package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
)

// CustomerHandler expone el CRUD de clientes.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.PartyRequest  true  "taxid, name"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/custs [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.PartyRequest
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
// @Summary      Listar clientes
// @Tags         customers
// @Produce      json
// @Security     Bearer
// @Param        skip   query  int  false  "registros a saltar"
// @Param        limit  query  int  false  "máximo de registros"
// @Success      200    {array}  dto.CustomerResponse
// @Router       /api/custs [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener cliente por taxid
// @Tags         customers
// @Produce      json
// @Security     Bearer
// @Param        taxid  path  int  true  "taxid"
// @Success      200    {object}  dto.CustomerResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/cust/{taxid} [get]
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	taxID, ok := int64Param(c, "taxid")
	if !ok {
		return nil
	}
	out, err := h.uc.Get(c.UserContext(), taxID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        taxid  path  int               true  "taxid"
// @Param        body   body  dto.PartyRequest  true  "taxid, name"
// @Success      200    {object}  dto.CustomerResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      422    {object}  dto.ErrorResponse
// @Router       /api/cust/{taxid} [patch]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	taxID, ok := int64Param(c, "taxid")
	if !ok {
		return nil
	}
	var in dto.PartyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), taxID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         customers
// @Produce      json
// @Security     Bearer
// @Param        taxid  path  int  true  "taxid"
// @Success      200    {boolean}  bool
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      422    {object}  dto.ErrorResponse
// @Router       /api/cust/{taxid} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	taxID, ok := int64Param(c, "taxid")
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.UserContext(), taxID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(true)
}
