package speededit

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
	"github.com/jhoicas/speed-edit-api/internal/domain/stock"
)

// Nombres de los campos del formulario de edición de producto.
// Para variaciones se agrega el sufijo _<variationID> (ej. add_stock_123).
const (
	FieldAddStock     = "add_stock"
	FieldDeleteStock  = "delete_stock"
	FieldReplaceStock = "replace_stock"
	FieldOnOrders     = "on_orders"
)

// TargetEdit campos del formulario para un objetivo (producto simple o variación). Cero = vacío.
type TargetEdit struct {
	AddStock     int
	DeleteStock  int
	ReplaceStock int
	OnOrders     int
}

// Resolve aplica la precedencia del formulario: add_stock, luego delete_stock, luego replace_stock.
// ok=false si ningún campo trae valor.
func (t TargetEdit) Resolve() (action entity.StockAction, value, openOrders int, ok bool) {
	switch {
	case t.AddStock != 0:
		return entity.StockActionAdd, t.AddStock, 0, true
	case t.DeleteStock != 0:
		return entity.StockActionDelete, t.DeleteStock, 0, true
	case t.ReplaceStock != 0:
		return entity.StockActionReplace, t.ReplaceStock, t.OnOrders, true
	}
	return "", 0, 0, false
}

// ProductForm formulario completo de un producto: campos propios (simple) y por variación.
type ProductForm struct {
	Product    TargetEdit
	Variations map[int64]TargetEdit
}

// ParseProductForm interpreta los campos con nombre del formulario.
// Valores no enteros o fuera de rango cuentan como vacíos; campos desconocidos se ignoran.
func ParseProductForm(fields map[string]string) ProductForm {
	form := ProductForm{Variations: make(map[int64]TargetEdit)}
	for key, raw := range fields {
		n, ok := stock.ParseQuantity(raw)
		if !ok || n == 0 {
			continue
		}
		name, id := splitFieldName(key)
		if name == "" {
			continue
		}
		if id == 0 {
			setField(&form.Product, name, n)
			continue
		}
		t := form.Variations[id]
		setField(&t, name, n)
		form.Variations[id] = t
	}
	return form
}

func splitFieldName(key string) (string, int64) {
	for _, name := range []string{FieldAddStock, FieldDeleteStock, FieldReplaceStock, FieldOnOrders} {
		if key == name {
			return name, 0
		}
		if suffix, found := strings.CutPrefix(key, name+"_"); found {
			id, err := strconv.ParseInt(suffix, 10, 64)
			if err != nil || id <= 0 {
				return "", 0
			}
			return name, id
		}
	}
	return "", 0
}

func setField(t *TargetEdit, name string, n int) {
	switch name {
	case FieldAddStock:
		t.AddStock = n
	case FieldDeleteStock:
		t.DeleteStock = n
	case FieldReplaceStock:
		t.ReplaceStock = n
	case FieldOnOrders:
		t.OnOrders = n
	}
}

// ApplyProductForm guarda el formulario de edición de un producto.
// Producto variable: recorre sus variaciones y aplica el campo de cada una.
// Producto simple: aplica los campos propios. Cualquier otro caso no hace nada.
// Solo acciones de cantidad; un objetivo sin campos no se toca ni se registra.
func (e *Engine) ApplyProductForm(ctx context.Context, productID int64, form ProductForm, actor int64) error {
	product, err := e.catalog.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("resolve product %d: %w", productID, err)
	}
	if product == nil {
		return nil
	}

	applied := 0
	switch product.Type {
	case entity.ProductTypeVariable:
		children, err := e.catalog.GetChildren(ctx, product.ID)
		if err != nil {
			return fmt.Errorf("get children %d: %w", product.ID, err)
		}
		for _, variationID := range children {
			action, value, openOrders, ok := form.Variations[variationID].Resolve()
			if !ok {
				continue
			}
			variation, err := e.catalog.GetByID(ctx, variationID)
			if err != nil {
				return fmt.Errorf("resolve variation %d: %w", variationID, err)
			}
			if variation == nil {
				continue
			}
			if _, err := e.applyQuantity(ctx, variation, action, value, openOrders, actor); err != nil {
				if skippable(err) {
					continue
				}
				return err
			}
			applied++
		}
	case entity.ProductTypeSimple:
		action, value, openOrders, ok := form.Product.Resolve()
		if !ok {
			return nil
		}
		if _, err := e.applyQuantity(ctx, product, action, value, openOrders, actor); err != nil {
			if skippable(err) {
				return nil
			}
			return err
		}
		applied++
	}

	e.log.Info().
		Int64("product_id", product.ID).
		Str("type", product.Type).
		Int64("user_id", actor).
		Int("applied", applied).
		Msg("formulario de stock guardado")
	return nil
}
