// Package pdf implementa la representación impresa de los documentos de
// inventario (traslados y órdenes de compra) usando Maroto v2.
//
// Layout de la página A4 (traslado):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Código       │  Fecha + Estado            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ORIGEN / DESTINO / RESPONSABLE                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Lote | Cantidad                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTAS                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jdvalencia/almacen-api/internal/application/export"
)

var hundred = decimal.NewFromInt(100)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa export.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

var _ export.PDFGenerator = (*MarotoPDFGenerator)(nil)

// GenerateTransferPDF genera el PDF de un traslado y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateTransferPDF(_ context.Context, doc *export.TransferDocument) ([]byte, error) {
	m := maroto.New(pageConfig("Traslado entre bodegas " + doc.Code))

	m.AddRows(headerRow("TRASLADO ENTRE BODEGAS", doc.Code, doc.CreatedAt.Format("02/01/2006"), doc.Status))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(labelRow("Bodega origen", doc.OriginName))
	m.AddRows(labelRow("Bodega destino", doc.DestinationName))
	m.AddRows(labelRow("Responsable", doc.Responsible))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(transferTableHeader())
	for _, it := range doc.Items {
		m.AddRows(row.New(6).Add(
			col.New(6).Add(text.New(it.ProductName, props.Text{Size: 9})),
			col.New(3).Add(text.New(it.LotNumber, props.Text{Size: 9})),
			col.New(3).Add(text.New(strconv.Itoa(it.Quantity), props.Text{Size: 9, Align: align.Right})),
		))
	}

	if doc.Notes != "" {
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(labelRow("Notas", doc.Notes))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar traslado: %w", err)
	}
	return out.GetBytes(), nil
}

// GeneratePurchaseOrderPDF genera el PDF de una orden de compra.
func (g *MarotoPDFGenerator) GeneratePurchaseOrderPDF(_ context.Context, doc *export.PurchaseOrderDocument) ([]byte, error) {
	m := maroto.New(pageConfig("Orden de compra " + doc.Code))

	m.AddRows(headerRow("ORDEN DE COMPRA", doc.Code, doc.CreatedAt.Format("02/01/2006"), doc.Status))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(labelRow("Proveedor", doc.Supplier))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(orderTableHeader())
	for _, it := range doc.Items {
		m.AddRows(row.New(6).Add(
			col.New(4).Add(text.New(it.ProductName, props.Text{Size: 9})),
			col.New(1).Add(text.New(strconv.Itoa(it.Quantity), props.Text{Size: 9, Align: align.Right})),
			col.New(2).Add(text.New(it.UnitPrice.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
			col.New(1).Add(text.New(it.TaxRate.Mul(hundred).StringFixed(0)+"%", props.Text{Size: 9, Align: align.Right})),
			col.New(2).Add(text.New(it.Tax.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
			col.New(2).Add(text.New(it.Total.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow("Subtotal", doc.Subtotal.StringFixed(2)))
	m.AddRows(totalsRow("Impuestos", doc.Tax.StringFixed(2)))
	m.AddRows(totalsRow("TOTAL", doc.Total.StringFixed(2)))

	if doc.Notes != "" {
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(labelRow("Notas", doc.Notes))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar orden de compra: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func pageConfig(title string) *entity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
}

// headerRow: título + código (izq) y fecha + estado (der).
func headerRow(title, code, date, status string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(code, props.Text{Size: 10, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Fecha: "+date, props.Text{Size: 9, Align: align.Right, Top: 2}),
			text.New("Estado: "+status, props.Text{Size: 9, Align: align.Right, Top: 9}),
		),
	)
}

func labelRow(label, value string) core.Row {
	return row.New(6).Add(
		col.New(3).Add(text.New(label+":", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorGray})),
		col.New(9).Add(text.New(value, props.Text{Size: 9})),
	)
}

func transferTableHeader() core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New("Producto", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary})),
		col.New(3).Add(text.New("Lote", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary})),
		col.New(3).Add(text.New("Cantidad", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
	)
}

func orderTableHeader() core.Row {
	return row.New(7).Add(
		col.New(4).Add(text.New("Producto", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary})),
		col.New(1).Add(text.New("Cant", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
		col.New(2).Add(text.New("P.Unit", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
		col.New(1).Add(text.New("IVA", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
		col.New(2).Add(text.New("Impuesto", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
		col.New(2).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
	)
}

func totalsRow(label, value string) core.Row {
	return row.New(6).Add(
		col.New(8),
		col.New(2).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right})),
		col.New(2).Add(text.New(value, props.Text{Size: 9, Align: align.Right})),
	)
}
