package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/speed-edit-api/internal/application/dto"
)

func TestBatchStockUpdateRequest_AceptaNumerosYTextos(t *testing.T) {
	body := `{"products":[
		{"product_id": 12, "stock_action": "add_stock", "edit_value": 5},
		{"product_id": "13", "stock_action": "location", "edit_value": " A-01 "},
		{"product_id": 14, "stock_action": "replace_stock", "edit_value": "20", "open_orders_stock": 4},
		{"product_id": 15, "stock_action": "add_stock", "edit_value": null}
	]}`

	var in dto.BatchStockUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	require.Len(t, in.Products, 4)

	assert.Equal(t, "12", in.Products[0].ProductID.String())
	assert.Equal(t, "5", in.Products[0].EditValue.String())
	assert.Equal(t, "13", in.Products[1].ProductID.String())
	assert.Equal(t, "A-01", in.Products[1].EditValue.String())
	assert.Equal(t, dto.FlexValue(" A-01 "), in.Products[1].EditValue, "el valor crudo se conserva")
	assert.Equal(t, "4", in.Products[2].OpenOrdersStock.String())
	assert.Equal(t, "", in.Products[3].EditValue.String())
}

func TestFlexValue_RechazaObjetos(t *testing.T) {
	var v dto.FlexValue
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &v))
}
