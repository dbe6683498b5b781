package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
)

// ProductHandler expone productos anidados bajo su proveedor.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto de un proveedor
// @Description  Costo, stock y acumulados de venta inician en 0.
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        taxid  path  int                       true  "taxid del proveedor"
// @Param        body   body  dto.CreateProductRequest  true  "port_number, name"
// @Success      201    {object}  dto.ProductResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      422    {object}  dto.ErrorResponse
// @Router       /api/supp/{taxid}/prod [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	taxID, ok := int64Param(c, "taxid")
	if !ok {
		return nil
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), taxID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListBySupplier godoc
// @Summary      Listar productos de un proveedor
// @Tags         products
// @Produce      json
// @Security     Bearer
// @Param        taxid  path   int  true   "taxid del proveedor"
// @Param        skip   query  int  false  "registros a saltar"
// @Param        limit  query  int  false  "máximo de registros"
// @Success      200    {array}  dto.ProductResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/supp/{taxid}/prods [get]
func (h *ProductHandler) ListBySupplier(c *fiber.Ctx) error {
	taxID, ok := int64Param(c, "taxid")
	if !ok {
		return nil
	}
	page, ok := pageQuery(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ListBySupplier(c.UserContext(), taxID, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar todos los productos
// @Tags         products
// @Produce      json
// @Security     Bearer
// @Param        skip   query  int  false  "registros a saltar"
// @Param        limit  query  int  false  "máximo de registros"
// @Success      200    {array}  dto.ProductResponse
// @Router       /api/prods [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener producto
// @Tags         products
// @Produce      json
// @Security     Bearer
// @Param        taxid        path  int  true  "taxid del proveedor"
// @Param        port_number  path  int  true  "número de parte"
// @Success      200          {object}  dto.ProductResponse
// @Failure      404          {object}  dto.ErrorResponse
// @Router       /api/supp/{taxid}/prod/{port_number} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	taxID, portNumber, ok := productPath(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Get(c.UserContext(), taxID, portNumber)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Solo port_number, name y supplier_taxid. Costo y stock los mueve la conciliación.
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        taxid        path  int                       true  "taxid del proveedor"
// @Param        port_number  path  int                       true  "número de parte"
// @Param        body         body  dto.UpdateProductRequest  true  "campos a cambiar"
// @Success      200          {object}  dto.ProductResponse
// @Failure      404          {object}  dto.ErrorResponse
// @Failure      422          {object}  dto.ErrorResponse
// @Router       /api/supp/{taxid}/prod/{port_number} [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	taxID, portNumber, ok := productPath(c)
	if !ok {
		return nil
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), taxID, portNumber, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Produce      json
// @Security     Bearer
// @Param        taxid        path  int  true  "taxid del proveedor"
// @Param        port_number  path  int  true  "número de parte"
// @Success      200          {boolean}  bool
// @Failure      404          {object}  dto.ErrorResponse
// @Router       /api/supp/{taxid}/prod/{port_number} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	taxID, portNumber, ok := productPath(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.UserContext(), taxID, portNumber); err != nil {
		return writeError(c, err)
	}
	return c.JSON(true)
}

func productPath(c *fiber.Ctx) (int64, int64, bool) {
	taxID, ok := int64Param(c, "taxid")
	if !ok {
		return 0, 0, false
	}
	portNumber, ok := int64Param(c, "port_number")
	if !ok {
		return 0, 0, false
	}
	return taxID, portNumber, true
}
