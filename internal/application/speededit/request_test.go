package speededit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/speed-edit-api/internal/application/dto"
	"github.com/jhoicas/speed-edit-api/internal/application/speededit"
	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
)

func TestInstructionsFromRequest(t *testing.T) {
	in := dto.BatchStockUpdateRequest{Products: []dto.EditInstructionRequest{
		{ProductID: "10", StockAction: "add_stock", EditValue: "5"},
		{ProductID: "11", StockAction: "replace_stock", EditValue: "20", OpenOrdersStock: "4"},
		{ProductID: "12", StockAction: "replace_stock", EditValue: "20"},
		{ProductID: "13", StockAction: "location", EditValue: "  Estante 4 "},
		{ProductID: "14", StockAction: "add_stock", EditValue: "cinco"},
		{ProductID: "0", StockAction: "add_stock", EditValue: "1"},
		{ProductID: "abc", StockAction: "add_stock", EditValue: "1"},
		{ProductID: "15", StockAction: "borrar", EditValue: "1"},
		{ProductID: "16", StockAction: "", EditValue: "1"},
		{ProductID: "17", StockAction: "add_stock", EditValue: "3000000000"},
		{ProductID: "18", StockAction: "delete_stock", EditValue: "-3000000000"},
		{ProductID: "19", StockAction: "replace_stock", EditValue: "5", OpenOrdersStock: "9999999999"},
	}}

	got := speededit.InstructionsFromRequest(in)

	assert.Equal(t, []speededit.EditInstruction{
		{ProductID: 10, Action: entity.StockActionAdd, Value: 5},
		{ProductID: 11, Action: entity.StockActionReplace, Value: 20, OpenOrders: 4},
		{ProductID: 12, Action: entity.StockActionReplace, Value: 20},
		{ProductID: 13, Action: entity.StockActionLocation, Location: "Estante 4"},
		{ProductID: 19, Action: entity.StockActionReplace, Value: 5},
	}, got)
}

func TestNormalizeLocation(t *testing.T) {
	// "e" + acento combinante se compone a "é" (NFC).
	assert.Equal(t, "Pasillo \u00e9", speededit.NormalizeLocation(" Pasillo e\u0301 "))

	long := strings.Repeat("x", 300)
	assert.Len(t, speededit.NormalizeLocation(long), entity.EditLogValueMaxLen)
}
