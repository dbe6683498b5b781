package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrConcurrentUpdate   = errors.New("el producto fue modificado por otra operación")
	ErrReconciliation     = errors.New("falló la conciliación de costo/inventario")
)

// Not found por entidad: envuelven ErrNotFound para que errors.Is(err, ErrNotFound) siga funcionando.
var (
	ErrSupplierNotFound      = fmt.Errorf("proveedor: %w", ErrNotFound)
	ErrCustomerNotFound      = fmt.Errorf("cliente: %w", ErrNotFound)
	ErrProductNotFound       = fmt.Errorf("producto: %w", ErrNotFound)
	ErrPurchaseOrderNotFound = fmt.Errorf("orden de compra: %w", ErrNotFound)
	ErrSaleOrderNotFound     = fmt.Errorf("orden de venta: %w", ErrNotFound)
)
