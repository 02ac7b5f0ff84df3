// Package pdf genera la tarjeta de kardex de un item con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del item + ID  │  KARDEX + fecha de emisión │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Saldo | Mínimo | Estado          │  QR (item ID)  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Entrada | Salida | Responsable | Nota │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de movimientos, entradas y salidas           │
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

	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

var _ inventory.KardexPDFGenerator = (*MarotoKardexGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorOK      = &props.Color{Red: 20, Green: 120, Blue: 60}
)

const dateLayout = "02/01/2006 15:04"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoKardexGenerator implementa inventory.KardexPDFGenerator usando Maroto v2.
type MarotoKardexGenerator struct {
	author string
}

// NewMarotoKardexGenerator construye el generador. author se escribe en los metadatos del PDF.
func NewMarotoKardexGenerator(author string) *MarotoKardexGenerator {
	return &MarotoKardexGenerator{author: author}
}

// GenerateItemCard genera el PDF y devuelve sus bytes. movements llega ordenado, más reciente primero.
func (g *MarotoKardexGenerator) GenerateItemCard(item *entity.Item, movements []*entity.MovementView, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex - "+item.Name, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(item, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(item))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(movements) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos registrados.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	m.AddRows(movementRows(movements)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(movements))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(item *entity.Item, generatedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(item.Name, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("ID: "+item.ID, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("KARDEX DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+generatedAt.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func summaryRow(item *entity.Item) core.Row {
	status, statusColor := "En nivel", colorOK
	if item.BelowMinimum() {
		status, statusColor = "POR DEBAJO DEL MÍNIMO", colorAlert
	}
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Top: top, Color: colorGray})
	}
	return row.New(28).Add(
		col.New(3).Add(
			label("SALDO ACTUAL", 2),
			text.New(formatThousands(item.Quantity), props.Text{Style: fontstyle.Bold, Size: 16, Top: 8}),
		),
		col.New(3).Add(
			label("MÍNIMO", 2),
			text.New(formatThousands(item.MinimumThreshold), props.Text{Size: 14, Top: 8}),
		),
		col.New(4).Add(
			label("ESTADO", 2),
			text.New(status, props.Text{Style: fontstyle.Bold, Size: 10, Top: 9, Color: statusColor}),
		),
		col.New(2).Add(code.NewQr(item.ID, props.Rect{Percent: 90, Center: true})),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("N°", 1, align.Right),
		h("Entrada", 2, align.Right),
		h("Salida", 2, align.Right),
		h("Responsable", 2, align.Left),
		h("Nota", 3, align.Left),
	)
}

// movementRows una fila por movimiento: la magnitud va en la columna de su tipo.
func movementRows(movements []*entity.MovementView) []core.Row {
	rows := make([]core.Row, 0, len(movements))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	for _, mv := range movements {
		in, out := "", ""
		if mv.Kind == entity.MovementKindIN {
			in = formatThousands(mv.Magnitude)
		} else {
			out = formatThousands(mv.Magnitude)
		}
		note := ""
		if mv.Note != nil {
			note = truncate(*mv.Note, 60)
		}
		rows = append(rows, row.New(7).Add(
			cell(mv.OccurredAt.Format(dateLayout), 2, align.Left),
			cell(strconv.FormatInt(mv.ID, 10), 1, align.Right),
			cell(in, 2, align.Right),
			cell(out, 2, align.Right),
			cell(mv.ActorName, 2, align.Left),
			cell(note, 3, align.Left),
		))
	}
	return rows
}

func footerRow(movements []*entity.MovementView) core.Row {
	var totalIn, totalOut int64
	for _, mv := range movements {
		if mv.Kind == entity.MovementKindIN {
			totalIn += mv.Magnitude
		} else {
			totalOut += mv.Magnitude
		}
	}
	return row.New(10).Add(
		col.New(3).Add(text.New(fmt.Sprintf("Movimientos: %d", len(movements)), props.Text{Size: 8, Top: 2, Color: colorGray})),
		col.New(2),
		col.New(2).Add(text.New(formatThousands(totalIn), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2, Right: 1})),
		col.New(2).Add(text.New(formatThousands(totalOut), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2, Right: 1})),
		col.New(3),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatThousands inserta puntos de miles. Ej: 25000 → "25.000", -1200 → "-1.200".
func formatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
