package orders

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Compras-api/internal/domain"
)

// handleTxError registra y clasifica el error de una unidad de trabajo ya revertida.
// Los errores de negocio se devuelven tal cual; el resto se envuelve como interno.
func handleTxError(log zerolog.Logger, rec Recorder, kind, op string, productPN int64, err error) error {
	switch {
	case errors.Is(err, domain.ErrConcurrentUpdate):
		rec.ConcurrentUpdate(kind)
		log.Warn().Str("kind", kind).Str("op", op).Int64("product_pn", productPN).
			Msg("conflicto de versión en el producto, unidad de trabajo revertida")
		return err
	case errors.Is(err, domain.ErrReconciliation):
		rec.ReconciliationFailed(kind)
		log.Error().Err(err).Str("kind", kind).Str("op", op).Int64("product_pn", productPN).
			Msg("falló la conciliación, unidad de trabajo revertida")
		return fmt.Errorf("%s %s: %w", op, kind, err)
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrDuplicate):
		return err
	}
	log.Error().Err(err).Str("kind", kind).Str("op", op).Int64("product_pn", productPN).
		Msg("error de almacenamiento, unidad de trabajo revertida")
	return fmt.Errorf("%s %s: %w", op, kind, err)
}
