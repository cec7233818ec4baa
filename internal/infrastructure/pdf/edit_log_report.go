// Package pdf genera el reporte imprimible del historial de ediciones rápidas de un producto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre + SKU          │  ID producto + Fecha       │
//	│  RESUMEN: Tipo / Stock / Ubicación / Precio                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Acción | Variación | Anterior | Nuevo | Usr  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: cantidad de registros                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// EditLogReportGenerator implementa speededit.LogReportGenerator usando Maroto v2.
type EditLogReportGenerator struct {
	now func() time.Time
}

// NewEditLogReportGenerator construye el generador. now nil = time.Now.
func NewEditLogReportGenerator(now func() time.Time) *EditLogReportGenerator {
	if now == nil {
		now = time.Now
	}
	return &EditLogReportGenerator{now: now}
}

// GenerateEditLogPDF genera el PDF con el resumen del producto y sus filas de historial.
func (g *EditLogReportGenerator) GenerateEditLogPDF(
	_ context.Context,
	product *entity.Product,
	logs []*entity.EditLog,
) ([]byte, error) {
	if product == nil {
		return nil, fmt.Errorf("pdf: producto nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Historial de edición rápida", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(product, g.now().UTC()))
	m.AddRows(summaryRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(logs) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos registrados.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	m.AddRows(tableDetailRows(logs)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d registro(s). Horas en UTC.", len(logs)), props.Text{
			Size: 7, Color: colorGray, Top: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + SKU (izq) y ID + fecha de generación (der).
func headerRow(p *entity.Product, generated time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(p.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("SKU: "+nonEmpty(p.SKU, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("HISTORIAL DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Producto #"+strconv.FormatInt(p.ID, 10), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 6,
			}),
			text.New("Generado: "+generated.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// summaryRow: estado actual del producto.
func summaryRow(p *entity.Product) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Tipo: %s   |   Stock: %d   |   Ubicación: %s   |   Precio: $%s",
				p.Type,
				p.StockQuantity,
				nonEmpty(p.Location, "—"),
				formatMoney(p.Price.StringFixed(0)),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del historial.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Acción", 3, align.Left),
		h("Variación", 1, align.Center),
		h("Anterior", 2, align.Right),
		h("Nuevo", 2, align.Right),
		h("Usuario", 2, align.Center),
	)
}

// tableDetailRows: una fila por registro del historial.
func tableDetailRows(logs []*entity.EditLog) []core.Row {
	result := make([]core.Row, 0, len(logs))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	for _, l := range logs {
		variation := "—"
		if l.VariationID != 0 {
			variation = "#" + strconv.FormatInt(l.VariationID, 10)
		}
		result = append(result, row.New(7).Add(
			cell(l.LogTime.UTC().Format("02/01/06 15:04"), 2, align.Left),
			cell(entity.StockAction(l.Action).Label(), 3, align.Left),
			cell(variation, 1, align.Center),
			cell(nonEmpty(l.OldValue, "—"), 2, align.Right),
			cell(nonEmpty(l.NewValue, "—"), 2, align.Right),
			cell("#"+strconv.FormatInt(l.UserID, 10), 2, align.Center),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "-1000000" → "-1.000.000"
func formatMoney(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
