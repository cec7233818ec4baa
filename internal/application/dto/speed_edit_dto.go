package dto

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FlexValue acepta un número o un texto JSON (el panel envía ambos según el campo).
type FlexValue string

// UnmarshalJSON guarda números y textos como string; null queda vacío.
func (v *FlexValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = FlexValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = FlexValue(n.String())
	return nil
}

// String devuelve el valor sin espacios alrededor.
func (v FlexValue) String() string {
	return strings.TrimSpace(string(v))
}

// EditInstructionRequest una instrucción del lote de edición rápida.
type EditInstructionRequest struct {
	ProductID       FlexValue `json:"product_id"`
	StockAction     string    `json:"stock_action"`                // add_stock, delete_stock, replace_stock, location
	EditValue       FlexValue `json:"edit_value"`                  // delta, cantidad absoluta o ubicación
	OpenOrdersStock FlexValue `json:"open_orders_stock,omitempty"` // solo replace_stock
}

// BatchStockUpdateRequest body para POST /api/speed-edit/stock.
type BatchStockUpdateRequest struct {
	Products []EditInstructionRequest `json:"products"`
}

// StockResultDTO cantidad resultante de un producto editado.
type StockResultDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// EditLogDTO fila del historial.
type EditLogDTO struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	VariationID int64     `json:"variation_id"`
	Action      string    `json:"action"`
	OldValue    string    `json:"old_value"`
	NewValue    string    `json:"new_value"`
	UserID      int64     `json:"user_id"`
	LogTime     time.Time `json:"log_time"`
}

// BatchStockUpdateResponse productos actualizados más el historial reciente.
type BatchStockUpdateResponse struct {
	Products []StockResultDTO `json:"products"`
	Logs     []EditLogDTO     `json:"logs"`
	LogHTML  string           `json:"log_html"`
}

// ProductSummaryDTO resumen de un producto o variación.
type ProductSummaryDTO struct {
	ID            int64           `json:"id"`
	ParentID      int64           `json:"parent_id"`
	Type          string          `json:"type"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	Location      string          `json:"location"`
}

// ProductDetailResponse salida de GET /api/speed-edit/products/:id.
type ProductDetailResponse struct {
	Product    ProductSummaryDTO   `json:"product"`
	Variations []ProductSummaryDTO `json:"variations"`
	Logs       []EditLogDTO        `json:"logs"`
	HTML       string              `json:"html"`
}

// EditLogListResponse listado del historial.
type EditLogListResponse struct {
	Items []EditLogDTO `json:"items"`
	Total int          `json:"total"`
}
