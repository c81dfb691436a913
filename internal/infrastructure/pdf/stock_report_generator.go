// Package pdf implementa la exportación del reporte de estoque a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Sistema IGO │ Relatório de Estoque + fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de productos / valor total en estoque        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por categoría:                                              │
//	│  TABLA: ID | Nome | Qtd | Preço | Valor Total                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
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
	"github.com/shopspring/decimal"

	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/application/reports"
	"github.com/igosistemas/igo/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reports.StockReportPDFGenerator = (*MarotoStockReportGenerator)(nil)

// MarotoStockReportGenerator implementa reports.StockReportPDFGenerator usando Maroto v2.
type MarotoStockReportGenerator struct{}

// NewMarotoStockReportGenerator construye el generador.
func NewMarotoStockReportGenerator() *MarotoStockReportGenerator {
	return &MarotoStockReportGenerator{}
}

// Generate genera el PDF del reporte de estoque y devuelve sus bytes.
func (g *MarotoStockReportGenerator) Generate(report dto.StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Estoque", true).
		WithAuthor("Sistema IGO", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for _, category := range report.Categories {
		m.AddRows(categoryTitleRow(category))
		m.AddRows(tableHeaderRow())
		for _, r := range tableProductRows(category.Products) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del sistema (izq) y título + fecha de generación (der).
func headerRow(report dto.StockReport) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New("Sistema IGO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventário e Gestão de Pedidos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("RELATÓRIO DE ESTOQUE", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Gerado em: "+report.GeneratedAt.String(), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: totales del reporte.
func summaryRow(report dto.StockReport) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("Total de produtos: %d", report.TotalProducts), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2,
			}),
		),
		col.New(6).Add(
			text.New("Valor total em estoque: R$ "+report.TotalValue.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
				Color: colorPrimary,
			}),
		),
	)
}

// categoryTitleRow: título de la sección de una categoría con sus totales.
func categoryTitleRow(category dto.CategoryStock) core.Row {
	title := fmt.Sprintf("%s — %d produto(s), R$ %s",
		strings.ToUpper(category.Category), category.Count, category.Value.StringFixed(2))
	return row.New(9).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorGray, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("ID", 1, align.Center),
		h("Produto", 5, align.Left),
		h("Qtd", 1, align.Center),
		h("Preço", 2, align.Right),
		h("Valor Total", 3, align.Right),
	)
}

func decimalFromInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

// tableProductRows: una fila por producto.
func tableProductRows(products []entity.Product) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		value := p.Price.Mul(decimalFromInt(p.Quantity))
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", p.ID),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				p.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", p.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+p.Price.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+value.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}
