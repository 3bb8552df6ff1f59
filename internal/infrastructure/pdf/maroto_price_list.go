// Package pdf implementa la generación de la lista de precios de un período
// en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Lista de Precios  │  Vigencia desde / hasta        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Empaque | Precio                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: dueño de la lista + fecha de emisión               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/WallaceSt/bzutils/internal/application/report"
	"github.com/WallaceSt/bzutils/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.PriceListPDFGenerator = (*MarotoPriceListGenerator)(nil)

// MarotoPriceListGenerator implementa report.PriceListPDFGenerator usando
// Maroto v2.
type MarotoPriceListGenerator struct{}

// NewMarotoPriceListGenerator construye el generador.
func NewMarotoPriceListGenerator() *MarotoPriceListGenerator { return &MarotoPriceListGenerator{} }

// GeneratePriceListPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPriceListGenerator) GeneratePriceListPDF(
	period *entity.Period,
	owner string,
	items []entity.PriceListItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de Precios", true).
		WithAuthor(owner, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}
	if len(items) == 0 {
		m.AddRows(emptyRow())
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(owner))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y rango de vigencia (der).
func headerRow(period *entity.Period) core.Row {
	desde := period.ValidFrom.Format("02/01/2006")
	hasta := period.ValidTo.Format("02/01/2006")

	return row.New(16).Add(
		col.New(7).Add(
			text.New("LISTA DE PRECIOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Vigencia", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Desde: %s   Hasta: %s", desde, hasta), props.Text{
				Size: 9, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de precios.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 6, align.Left),
		h("Empaque", 3, align.Center),
		h("Precio", 3, align.Right),
	)
}

// tableItemRows: una fila por producto con precio en el período.
func tableItemRows(items []entity.PriceListItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				it.Package,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				"$"+it.Currency.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// emptyRow: marcador cuando el período aún no tiene precios cargados.
func emptyRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Sin precios registrados para este período.", props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 3,
		}),
	))
}

// footerRow: dueño de la lista + fecha de emisión.
func footerRow(owner string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Lista de %s   |   Emitida el %s",
			owner, time.Now().Format("02/01/2006")),
			props.Text{Size: 7, Color: colorGray, Top: 2}),
	))
}
