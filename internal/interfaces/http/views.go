package http

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/speed-edit-api/internal/application/dto"
	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
)

// Fragmentos HTML que el panel de administración inserta tras cada operación.
var views = template.Must(template.New("views").Funcs(template.FuncMap{
	"label": func(action string) string { return entity.StockAction(action).Label() },
	"when":  func(t time.Time) string { return t.UTC().Format("2006-01-02 15:04:05") },
	"money": func(p decimal.Decimal) string { return p.StringFixed(2) },
}).Parse(`
{{define "log"}}<table class="speed-edit-log">
<thead><tr><th>Fecha</th><th>Producto</th><th>Variación</th><th>Acción</th><th>Anterior</th><th>Nuevo</th><th>Usuario</th></tr></thead>
<tbody>
{{- range .}}
<tr data-log-id="{{.ID}}"><td>{{when .LogTime}}</td><td>#{{.ProductID}}</td><td>{{if .VariationID}}#{{.VariationID}}{{else}}-{{end}}</td><td>{{label .Action}}</td><td>{{.OldValue}}</td><td>{{.NewValue}}</td><td>#{{.UserID}}</td></tr>
{{- else}}
<tr><td colspan="7">Sin movimientos registrados.</td></tr>
{{- end}}
</tbody>
</table>{{end}}

{{define "summary"}}<div class="speed-edit-product" data-product-id="{{.ID}}">
<h3>{{.Name}}</h3>
<p>SKU: {{if .SKU}}{{.SKU}}{{else}}-{{end}} | Stock: <span class="stock">{{.StockQuantity}}</span> | Ubicación: <span class="location">{{.Location}}</span> | Precio: {{money .Price}}</p>
</div>{{end}}

{{define "detail"}}{{template "summary" .Product}}
{{- if .Variations}}
<ul class="speed-edit-variations">
{{- range .Variations}}
<li data-product-id="{{.ID}}">{{.Name}} | Stock: <span class="stock">{{.StockQuantity}}</span></li>
{{- end}}
</ul>
{{- end}}
{{template "log" .Logs}}{{end}}
`))

func renderLogTable(logs []dto.EditLogDTO) (string, error) {
	return render("log", logs)
}

func renderProductDetail(detail *dto.ProductDetailResponse) (string, error) {
	return render("detail", detail)
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
