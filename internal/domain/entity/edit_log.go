package entity

import "time"

// Límites de las columnas de speed_edit_log.
const (
	EditLogActionMaxLen = 100
	EditLogValueMaxLen  = 255
)

// EditLog fila inmutable del historial de ediciones rápidas.
// ProductID es siempre el producto de primer nivel; VariationID es 0 si no se editó una variación.
type EditLog struct {
	ID          int64
	ProductID   int64
	VariationID int64
	Action      string
	OldValue    string
	NewValue    string
	UserID      int64
	LogTime     time.Time
}
