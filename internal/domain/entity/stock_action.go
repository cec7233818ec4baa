package entity

// StockAction acción de edición rápida sobre un producto.
type StockAction string

// Acciones soportadas por el editor rápido.
const (
	StockActionAdd      StockAction = "add_stock"
	StockActionDelete   StockAction = "delete_stock"
	StockActionReplace  StockAction = "replace_stock"
	StockActionLocation StockAction = "location"
)

// ParseStockAction convierte el texto recibido en una acción conocida.
func ParseStockAction(s string) (StockAction, bool) {
	switch a := StockAction(s); a {
	case StockActionAdd, StockActionDelete, StockActionReplace, StockActionLocation:
		return a, true
	}
	return "", false
}

// IsQuantity indica si la acción modifica la cantidad en stock.
func (a StockAction) IsQuantity() bool {
	return a == StockActionAdd || a == StockActionDelete || a == StockActionReplace
}

func (a StockAction) String() string { return string(a) }

// Label nombre legible de la acción para reportes y vistas. Acciones desconocidas se devuelven tal cual.
func (a StockAction) Label() string {
	switch a {
	case StockActionAdd:
		return "Agregar stock"
	case StockActionDelete:
		return "Descontar stock"
	case StockActionReplace:
		return "Reemplazar stock"
	case StockActionLocation:
		return "Ubicación"
	}
	return string(a)
}
