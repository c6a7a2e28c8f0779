// Package pdf implementa la versión imprimible del reporte diario de
// inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte Diario de Inventario  │  Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Entradas / Salidas / Ventas del día               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Repuesto | Categoría | Cant. | Precio Unit.         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/jhoicas/repuestos-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ReportPDFGenerator genera el PDF del reporte diario usando Maroto v2.
type ReportPDFGenerator struct{}

// NewReportPDFGenerator construye el generador.
func NewReportPDFGenerator() *ReportPDFGenerator { return &ReportPDFGenerator{} }

// GenerateDailyReportPDF genera el PDF y devuelve sus bytes.
func (g *ReportPDFGenerator) GenerateDailyReportPDF(report *dto.DailyReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Diario de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report.Date))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(report.RemainingStock) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha del reporte (der).
func headerRow(date string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DIARIO DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+date, props.Text{
				Size: 10, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// totalsRow: agregados del día.
func totalsRow(report *dto.DailyReportResponse) core.Row {
	item := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 6}),
		)
	}
	return row.New(16).Add(
		item("Entradas del día", fmt.Sprintf("%d", report.TotalStockIn)),
		item("Salidas del día", fmt.Sprintf("%d", report.TotalStockOut)),
		item("Ventas del día", "$"+report.TotalSales.StringFixed(2)),
	)
}

// tableHeaderRow: cabecera de la tabla de stock restante.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Repuesto", 5, align.Left),
		h("Categoría", 3, align.Left),
		h("Cant.", 2, align.Center),
		h("Precio Unit.", 2, align.Right),
	)
}

// tableRows: una fila por repuesto del snapshot.
func tableRows(parts []dto.SparePartResponse) []core.Row {
	result := make([]core.Row, 0, len(parts))
	for _, p := range parts {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(p.Name, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New(p.CategoryName, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray,
			})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", p.Quantity), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New("$"+p.UnitPrice.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}
