package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
)

// writeError traduce errores de dominio a status HTTP y cuerpo {code, message}.
func writeError(c *fiber.Ctx, err error) error {
	status, code, msg := fiber.StatusInternalServerError, "INTERNAL", "error interno"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, code, msg = fiber.StatusNotFound, "NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrDuplicate):
		status, code, msg = fiber.StatusUnprocessableEntity, "DUPLICATE", "ya existe un registro con esa clave o nombre"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code, msg = fiber.StatusUnprocessableEntity, "VALIDATION", err.Error()
	case errors.Is(err, domain.ErrConflict):
		status, code, msg = fiber.StatusUnprocessableEntity, "CONFLICT", err.Error()
	case errors.Is(err, domain.ErrInsufficientStock):
		status, code, msg = fiber.StatusUnprocessableEntity, "INSUFFICIENT_STOCK", err.Error()
	case errors.Is(err, domain.ErrConcurrentUpdate):
		status, code, msg = fiber.StatusConflict, "CONCURRENT_UPDATE", err.Error()
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		status, code, msg = fiber.StatusConflict, "EMAIL_EXISTS", err.Error()
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		status, code, msg = fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas"
	case errors.Is(err, domain.ErrForbidden):
		status, code, msg = fiber.StatusForbidden, "FORBIDDEN", "cuenta inactiva o suspendida"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// int64Param lee un parámetro de ruta entero. Si no es válido responde 422.
func int64Param(c *fiber.Ctx, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		_ = c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: name + " debe ser un entero"})
		return 0, false
	}
	return v, true
}

// pageQuery lee skip/limit del query string. Si no son válidos responde 422.
func pageQuery(c *fiber.Ctx) (dto.PageRequest, bool) {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		_ = c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "skip y limit deben ser enteros"})
		return page, false
	}
	page.Normalize()
	return page, true
}
