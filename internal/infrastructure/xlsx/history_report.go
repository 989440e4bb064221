// Package xlsx exporta el historial de comidas como libro de Excel (excelize).
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/kondate-api/internal/application/history"
	"github.com/jhoicas/kondate-api/internal/domain/entity"
)

var _ history.ReportRenderer = (*HistoryReportGenerator)(nil)

const sheetName = "Historial"

var headers = []string{"Fecha", "Momento", "Plato", "Descripción", "Ingredientes", "Precio"}

// HistoryReportGenerator implementa history.ReportRenderer.
type HistoryReportGenerator struct{}

// NewHistoryReportGenerator construye el generador.
func NewHistoryReportGenerator() *HistoryReportGenerator { return &HistoryReportGenerator{} }

// ContentType del libro generado.
func (g *HistoryReportGenerator) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension del archivo generado.
func (g *HistoryReportGenerator) Extension() string { return "xlsx" }

// Render escribe una fila por comida y una fila final con el total.
func (g *HistoryReportGenerator) Render(r history.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	for i, h := range headers {
		if err := setCell(f, i+1, 1, h); err != nil {
			return nil, err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(sheetName, "A1", last, bold)

	rowIdx := 2
	for _, e := range r.Entries {
		values := []any{e.Date, e.MealTime, e.Dish.Name, e.Dish.Description, usageSummary(e.Dish.IngredientsUsed), e.Dish.Price}
		for i, v := range values {
			if err := setCell(f, i+1, rowIdx, v); err != nil {
				return nil, err
			}
		}
		rowIdx++
	}

	if err := setCell(f, len(headers)-1, rowIdx, "TOTAL"); err != nil {
		return nil, err
	}
	if err := setCell(f, len(headers), rowIdx, r.Total); err != nil {
		return nil, err
	}
	first, _ := excelize.CoordinatesToCellName(len(headers)-1, rowIdx)
	end, _ := excelize.CoordinatesToCellName(len(headers), rowIdx)
	_ = f.SetCellStyle(sheetName, first, end, bold)

	_ = f.SetColWidth(sheetName, "C", "E", 32)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("xlsx: celda (%d,%d): %w", col, row, err)
	}
	if err := f.SetCellValue(sheetName, cell, v); err != nil {
		return fmt.Errorf("xlsx: escribir %s: %w", cell, err)
	}
	return nil
}

func usageSummary(used []entity.IngredientUsage) string {
	s := ""
	for i, u := range used {
		if i > 0 {
			s += ", "
		}
		s += u.Name + " " + u.Quantity.String() + u.Unit
	}
	return s
}
