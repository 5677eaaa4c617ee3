// Package pdf genera el recibo imprimible de una venta.
//
// Layout (A5 vertical):
//
//	┌──────────────────────────────┐
//	│  Negocio        Recibo N°    │
//	│  ──────────────────────────  │
//	│  Cant | Artículo | P.Unit    │
//	│  ──────────────────────────  │
//	│  TOTAL                       │
//	│  QR (id de la venta)         │
//	└──────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/hotel-pos/internal/application/dto"
	"github.com/jhoicas/hotel-pos/internal/application/order"
)

var _ order.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa order.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	title cases.Caser
}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{title: cases.Title(language.Und)}
}

// GenerateReceiptPDF genera el recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, businessName string, sale dto.SaleDetailDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(6).WithRightMargin(6).
		WithTopMargin(6).WithBottomMargin(6).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Receipt "+sale.SaleID, true).
		WithAuthor(businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(businessName, sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(g.itemRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(sale))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoReceiptGenerator) headerRow(businessName string, sale dto.SaleDetailDTO) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1,
			}),
			text.New("Served by "+sale.Username, props.Text{
				Size: 7, Top: 8, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("RECEIPT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(sale.SaleID), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 5,
			}),
			text.New(sale.Timestamp.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Qty", 2, align.Center),
		h("Item", 5, align.Left),
		h("Price", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func (g *MarotoReceiptGenerator) itemRow(sale dto.SaleDetailDTO) core.Row {
	return row.New(8).Add(
		col.New(2).Add(text.New(strconv.FormatInt(sale.Quantity, 10), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(5).Add(
			text.New(sale.Name, props.Text{Size: 8, Top: 1}),
			text.New(g.title.String(sale.Category), props.Text{Size: 6, Top: 5, Color: colorGray}),
		),
		col.New(2).Add(text.New(formatMoney(sale.Price), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(3).Add(text.New(formatMoney(sale.TotalPrice), props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

func totalRow(sale dto.SaleDetailDTO) core.Row {
	return row.New(8).Add(
		col.New(7).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
		})),
		col.New(5).Add(text.New(formatMoney(sale.TotalPrice), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
		})),
	)
}

func footerRow(sale dto.SaleDetailDTO) core.Row {
	return row.New(30).Add(
		col.New(5).Add(code.NewQr(sale.SaleID, props.Rect{Percent: 95, Center: true})),
		col.New(7).Add(text.New("Thank you for your visit.", props.Text{
			Size: 8, Top: 10, Left: 3, Color: colorGray,
		})),
	)
}

// shortID primeros 8 caracteres del id de la venta.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatMoney inserta separadores de miles. Ej: 25000 → "25,000".
func formatMoney(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if n < 0 {
		neg = true
		s = s[1:]
	}
	l := len(s)
	buf := make([]byte, 0, l+l/3+1)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(s) {
		if i > 0 && (l-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
