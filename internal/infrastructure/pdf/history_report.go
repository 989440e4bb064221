// Package pdf genera el reporte mensual del historial de comidas con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + mes          │  fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Momento | Plato | Ingredientes | Precio      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: comidas + suma de precios                            │
//	└─────────────────────────────────────────────────────────────┘
//
// Las fuentes estándar de PDF no tienen glifos japoneses: con REPORT_FONT_PATH se registra
// una TTF (p. ej. Noto Sans JP) como fuente por defecto.
package pdf

import (
	"fmt"
	"strconv"
	"strings"

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
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"github.com/jhoicas/kondate-api/internal/application/history"
	"github.com/jhoicas/kondate-api/internal/domain/entity"
)

var _ history.ReportRenderer = (*HistoryReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const customFamily = "report"

// ── Generator ─────────────────────────────────────────────────────────────────

// HistoryReportGenerator implementa history.ReportRenderer usando Maroto v2.
type HistoryReportGenerator struct {
	fontPath string
}

// NewHistoryReportGenerator construye el generador. fontPath vacío usa helvetica.
func NewHistoryReportGenerator(fontPath string) *HistoryReportGenerator {
	return &HistoryReportGenerator{fontPath: fontPath}
}

// ContentType del documento generado.
func (g *HistoryReportGenerator) ContentType() string { return "application/pdf" }

// Extension del archivo generado.
func (g *HistoryReportGenerator) Extension() string { return "pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *HistoryReportGenerator) Render(r history.Report) ([]byte, error) {
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithTitle("Historial de comidas", true)

	family := "helvetica"
	if g.fontPath != "" {
		fonts, err := repository.New().
			AddUTF8Font(customFamily, fontstyle.Normal, g.fontPath).
			AddUTF8Font(customFamily, fontstyle.Bold, g.fontPath).
			Load()
		if err != nil {
			return nil, fmt.Errorf("pdf: cargar fuente %s: %w", g.fontPath, err)
		}
		builder = builder.WithCustomFonts(fonts)
		family = customFamily
	}
	builder = builder.WithDefaultFont(&props.Font{Family: family, Size: 9})

	m := maroto.New(builder.Build())

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(r.Entries)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r history.Report) core.Row {
	period := "Todo el historial"
	if r.Month != "" {
		period = "Mes: " + r.Month
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("HISTORIAL DE COMIDAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+r.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Momento", 1, align.Left),
		h("Plato", 3, align.Left),
		h("Ingredientes", 4, align.Left),
		h("Precio", 2, align.Right),
	)
}

func tableRows(entries []entity.HistoryEntry) []core.Row {
	out := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
		}
		out = append(out, row.New(8).Add(
			cell(e.Date, 2, align.Left),
			cell(e.MealTime, 1, align.Left),
			cell(e.Dish.Name, 3, align.Left),
			cell(nonEmpty(usageSummary(e.Dish.IngredientsUsed), "-"), 4, align.Left),
			cell(formatYen(e.Dish.Price), 2, align.Right),
		))
	}
	return out
}

func totalRow(r history.Report) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New(fmt.Sprintf("Comidas: %d", len(r.Entries)), props.Text{
			Size: 9, Top: 2, Color: colorGray,
		})),
		col.New(6).Add(text.New("TOTAL: "+formatYen(r.Total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func usageSummary(used []entity.IngredientUsage) string {
	parts := make([]string, 0, len(used))
	for _, u := range used {
		parts = append(parts, u.Name+" "+u.Quantity.String()+u.Unit)
	}
	return strings.Join(parts, ", ")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatYen inserta separadores de miles. Ej: 1250 → "¥1,250".
func formatYen(n int64) string {
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	s := strconv.FormatInt(n, 10)
	buf := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + "¥" + string(buf)
}
