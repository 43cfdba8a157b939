// Package pdf implementa la generación del reporte de stock por agente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Agente + Fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ítem | Entradas | Salidas | Dev. buena | Dev. mala  │
//	│         | Disponible                                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de cálculo                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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

	"github.com/jhoicas/Distribuidora-api/internal/application/stock"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStockReportGenerator implementa report.StockReportPDFGenerator usando
// Maroto v2.
type MarotoStockReportGenerator struct{}

// NewMarotoStockReportGenerator construye el generador.
func NewMarotoStockReportGenerator() *MarotoStockReportGenerator {
	return &MarotoStockReportGenerator{}
}

// GenerateStockSummaryPDF genera el resumen de stock del agente y devuelve
// sus bytes.
func (g *MarotoStockReportGenerator) GenerateStockSummaryPDF(
	_ context.Context,
	agentID string,
	items []stock.ItemTotals,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de Stock por Agente", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(agentID))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}
	if len(items) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos registrados para este agente.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y agente + fecha (der).
func headerRow(agentID string) core.Row {
	fecha := time.Now().Format("02/01/2006")

	return row.New(16).Add(
		col.New(7).Add(
			text.New("RESUMEN DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Libro de entradas, salidas y devoluciones", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Agente: "+agentID, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de totales por ítem.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Ítem", 3, align.Left),
		h("Entradas", 2, align.Right),
		h("Salidas", 2, align.Right),
		h("Dev. buena", 2, align.Right),
		h("Dev. mala", 1, align.Right),
		h("Disponible", 2, align.Right),
	)
}

// tableItemRows: una fila por ítem con sus totales acumulados.
func tableItemRows(items []stock.ItemTotals) []core.Row {
	num := func(s string, size int) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		t := it.Totals
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(it.ItemCode, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			num(t.StockIn.String(), 2),
			num(t.StockOut.String(), 2),
			num(t.ReturnGood.String(), 2),
			num(t.ReturnBad.String(), 1),
			col.New(2).Add(text.New(t.Available().String(), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// footerRow: leyenda del cálculo de disponible.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Disponible = entradas + devoluciones en buen estado - salidas (mínimo 0). "+
				"Las devoluciones en mal estado no reingresan al stock vendible.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}
