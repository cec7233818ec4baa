package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
)

func TestGenerateEditLogPDF(t *testing.T) {
	g := NewEditLogReportGenerator(func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) })
	product := &entity.Product{
		ID: 2, Type: entity.ProductTypeVariable, SKU: "CAM-01", Name: "Camisa",
		Price: decimal.RequireFromString("49900"), Location: "A-1",
	}
	logs := []*entity.EditLog{
		{ID: 2, ProductID: 2, VariationID: 3, Action: "add_stock", OldValue: "3", NewValue: "5", UserID: 7,
			LogTime: time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)},
		{ID: 1, ProductID: 2, Action: "location", OldValue: "", NewValue: "A-1", UserID: 7,
			LogTime: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
	}

	out, err := g.GenerateEditLogPDF(context.Background(), product, logs)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateEditLogPDF_SinRegistros(t *testing.T) {
	out, err := NewEditLogReportGenerator(nil).GenerateEditLogPDF(context.Background(), &entity.Product{ID: 1, Name: "Taza"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateEditLogPDF_ProductoNil(t *testing.T) {
	_, err := NewEditLogReportGenerator(nil).GenerateEditLogPDF(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "25.000", formatMoney("25000"))
	assert.Equal(t, "1.000.000", formatMoney("1000000"))
	assert.Equal(t, "-1.500", formatMoney("-1500"))
	assert.Equal(t, "999", formatMoney("999"))
}
