package orders

import (
	"fmt"

	"github.com/rs/zerolog"
)

// EditPolicy define qué puede cambiar la edición de una orden ya conciliada.
type EditPolicy string

const (
	// EditSnapshotOnly permite cambiar precio, cantidad y producto en la fila de la orden
	// sin volver a conciliar los agregados del producto.
	EditSnapshotOnly EditPolicy = "snapshot_only"
	// EditMetadataOnly rechaza con ErrConflict cualquier cambio de precio, cantidad o producto.
	EditMetadataOnly EditPolicy = "metadata_only"
)

// ParseEditPolicy valida el valor de configuración. Vacío equivale a snapshot_only.
func ParseEditPolicy(s string) (EditPolicy, error) {
	switch EditPolicy(s) {
	case "", EditSnapshotOnly:
		return EditSnapshotOnly, nil
	case EditMetadataOnly:
		return EditMetadataOnly, nil
	}
	return "", fmt.Errorf("orders: política de edición desconocida %q", s)
}

// Settings dependencias opcionales compartidas por los casos de uso de órdenes.
type Settings struct {
	EditPolicy EditPolicy
	Recorder   Recorder
	Documents  DocumentRenderer
	Logger     zerolog.Logger
}

func (s Settings) withDefaults() Settings {
	if s.EditPolicy == "" {
		s.EditPolicy = EditSnapshotOnly
	}
	if s.Recorder == nil {
		s.Recorder = nopRecorder{}
	}
	return s
}
