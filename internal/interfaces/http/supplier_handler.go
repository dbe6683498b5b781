package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
)

// SupplierHandler expone el CRUD de proveedores.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.PartyRequest  true  "taxid, name"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/supps [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
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
// @Summary      Listar proveedores
// @Tags         suppliers
// @Produce      json
// @Security     Bearer
// @Param        skip   query  int  false  "registros a saltar"
// @Param        limit  query  int  false  "máximo de registros"
// @Success      200    {array}  dto.SupplierResponse
// @Router       /api/supps [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener proveedor por taxid
// @Tags         suppliers
// @Produce      json
// @Security     Bearer
// @Param        taxid  path  int  true  "taxid"
// @Success      200    {object}  dto.SupplierResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/supp/{taxid} [get]
func (h *SupplierHandler) Get(c *fiber.Ctx) error {
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
// @Summary      Actualizar proveedor
// @Description  Un cambio de taxid se propaga a sus productos.
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        taxid  path  int               true  "taxid"
// @Param        body   body  dto.PartyRequest  true  "taxid, name"
// @Success      200    {object}  dto.SupplierResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      422    {object}  dto.ErrorResponse
// @Router       /api/supp/{taxid} [patch]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
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
// @Summary      Eliminar proveedor
// @Tags         suppliers
// @Produce      json
// @Security     Bearer
// @Param        taxid  path  int  true  "taxid"
// @Success      200    {boolean}  bool
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      422    {object}  dto.ErrorResponse
// @Router       /api/supp/{taxid} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	taxID, ok := int64Param(c, "taxid")
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.UserContext(), taxID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(true)
}
