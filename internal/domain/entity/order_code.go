package entity

import "time"

// OrderCode devuelve el código de orden legible YYYYMMDDHHmmss como entero.
// Solo es un atributo de visualización: dos órdenes del mismo segundo comparten código.
func OrderCode(t time.Time) int64 {
	return int64(t.Year())*1e10 +
		int64(t.Month())*1e8 +
		int64(t.Day())*1e6 +
		int64(t.Hour())*1e4 +
		int64(t.Minute())*1e2 +
		int64(t.Second())
}
