// Package pdf genera el comprobante de reserva en PDF (A4): datos del
// cliente, detalle del producto reservado, total estimado y estado.
package pdf

import (
	"context"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/reservas-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ComprobanteGenerator genera el comprobante de una reserva usando Maroto v2.
type ComprobanteGenerator struct{}

// NewComprobanteGenerator construye el generador.
func NewComprobanteGenerator() *ComprobanteGenerator { return &ComprobanteGenerator{} }

// GenerarComprobante genera el PDF y devuelve sus bytes. La reserva debe
// venir con sus asociaciones cargadas; las ausentes se muestran como
// "Desconocido".
func (g *ComprobanteGenerator) GenerarComprobante(_ context.Context, r *entity.Reserva) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Reserva", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(r.Cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	m.AddRows(detalleRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título + número de reserva (izq), estado y fecha (der).
func headerRow(r *entity.Reserva) core.Row {
	fecha := r.FechaReserva.Format("02/01/2006 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Comprobante de Reserva", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reserva: "+r.ID, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Estado: "+string(r.Estado), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 1, Align: align.Right,
			}),
			text.New("Fecha: "+fecha, props.Text{Size: 9, Top: 9, Align: align.Right, Color: colorGray}),
		),
	)
}

func clienteRow(c *entity.Cliente) core.Row {
	nombre := "Desconocido"
	detalle := ""
	if c != nil {
		nombre = c.Nombre
		detalle = fmt.Sprintf("%s · %d puntos de fidelidad", c.Email, c.Puntos)
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE: "+nombre, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
			text.New(detalle, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	style := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	return row.New(7).Add(
		col.New(2).Add(text.New("Cantidad", style)),
		col.New(6).Add(text.New("Producto", style)),
		col.New(2).Add(text.New("P. Unitario", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
		col.New(2).Add(text.New("Subtotal", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
	)
}

func detalleRow(r *entity.Reserva) core.Row {
	nombre := "Desconocido"
	precio := decimal.Zero
	if r.Producto != nil {
		nombre = r.Producto.Nombre
		precio = r.Producto.Precio
	}
	subtotal := precio.Mul(decimal.NewFromInt(r.Cantidad))
	return row.New(6).Add(
		col.New(2).Add(text.New(fmt.Sprintf("%d", r.Cantidad), props.Text{Size: 9})),
		col.New(6).Add(text.New(nombre, props.Text{Size: 9})),
		col.New(2).Add(text.New("$ "+precio.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
		col.New(2).Add(text.New("$ "+subtotal.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
	)
}

func totalRow(r *entity.Reserva) core.Row {
	total := decimal.Zero
	if r.Producto != nil {
		total = r.Producto.Precio.Mul(decimal.NewFromInt(r.Cantidad))
	}
	return row.New(10).Add(
		col.New(8),
		col.New(4).Add(
			text.New("TOTAL: $ "+total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
		),
	)
}
