// Package pdf genera el documento imprimible de órdenes de compra y venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + empresa      │  N° orden + fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTRAPARTE: proveedor o cliente (snapshot) + NIT          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° parte | Producto | Cant | P.Unit | Total          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + QR con el UID de la orden                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/application/orders"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

var _ orders.DocumentRenderer = (*OrderDocumentRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// OrderDocumentRenderer implementa orders.DocumentRenderer usando Maroto v2.
type OrderDocumentRenderer struct {
	company string
}

// NewOrderDocumentRenderer construye el generador; company aparece en el encabezado.
func NewOrderDocumentRenderer(company string) *OrderDocumentRenderer {
	return &OrderDocumentRenderer{company: company}
}

// document son los datos comunes a compra y venta.
type document struct {
	title       string
	partyLabel  string
	partyName   string
	partyTaxID  int64
	orderID     int64
	uid         string
	createdAt   time.Time
	productPN   int64
	productName string
	unitPrice   int64
	amount      int64
	total       decimal.Decimal
}

// RenderPurchaseOrder genera el PDF de una orden de compra.
func (g *OrderDocumentRenderer) RenderPurchaseOrder(o *entity.PurchaseOrder) ([]byte, error) {
	return g.render(document{
		title:       "ORDEN DE COMPRA",
		partyLabel:  "PROVEEDOR",
		partyName:   o.SupplierName,
		partyTaxID:  o.SupplierTaxID,
		orderID:     o.OrderID,
		uid:         o.UID,
		createdAt:   o.CreatedAt,
		productPN:   o.ProductPN,
		productName: o.ProductName,
		unitPrice:   o.CostPrice,
		amount:      o.Amount,
		total:       o.TotalPrice,
	})
}

// RenderSaleOrder genera el PDF de una orden de venta.
func (g *OrderDocumentRenderer) RenderSaleOrder(o *entity.SaleOrder) ([]byte, error) {
	return g.render(document{
		title:       "ORDEN DE VENTA",
		partyLabel:  "CLIENTE",
		partyName:   o.CustomerName,
		partyTaxID:  o.CustomerTaxID,
		orderID:     o.OrderID,
		uid:         o.UID,
		createdAt:   o.CreatedAt,
		productPN:   o.ProductPN,
		productName: o.ProductName,
		unitPrice:   o.SalePrice,
		amount:      o.Amount,
		total:       o.TotalPrice,
	})
}

func (g *OrderDocumentRenderer) render(d document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(d.title, true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(lineRow(d))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(d))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *OrderDocumentRenderer) headerRow(d document) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(d.title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(g.company, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("N° ORDEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(strconv.FormatInt(d.orderID, 10), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+d.createdAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func partyRow(d document) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(d.partyLabel, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(d.partyName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("NIT: "+strconv.FormatInt(d.partyTaxID, 10), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N° parte", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Cant.", 1, align.Center),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func lineRow(d document) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New(strconv.FormatInt(d.productPN, 10),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(4).Add(text.New(d.productName,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(1).Add(text.New(strconv.FormatInt(d.amount, 10),
			props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New("$"+formatMoney(strconv.FormatInt(d.unitPrice, 10)),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(3).Add(text.New("$"+formatMoney(d.total.StringFixed(0)),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

func totalRow(d document) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(d.uid, props.Rect{Percent: 90, Center: true})),
		col.New(3),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+formatMoney(d.total.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "-1000000" → "-1.000.000"
func formatMoney(s string) string {
	sign := ""
	if len(s) > 0 && s[0] == '-' {
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
