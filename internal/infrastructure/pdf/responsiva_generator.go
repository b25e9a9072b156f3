// Package pdf genera la plantilla de carta responsiva de equipo de cómputo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha                                      │
//	│  EMPRESA: razón social + RFC                                 │
//	│  TABLA EQUIPO: Marca | Modelo | No. serie | Tipo            │
//	│  CLÁUSULAS                                                   │
//	│  FIRMAS: empleado responsable │ representante de la empresa │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/jhoicas/portal-rdp/internal/application/usecase"
)

var _ usecase.ResponsivaPDFGenerator = (*ResponsivaGenerator)(nil)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const blank = "______________________________"

var clauses = []string{
	"1. Recibo el equipo descrito en buen estado de funcionamiento y me comprometo a usarlo exclusivamente para actividades laborales.",
	"2. No instalaré software sin licencia ni modificaré la configuración sin autorización del área de sistemas.",
	"3. En caso de daño, robo o extravío lo reportaré de inmediato a mi jefe directo y al área de sistemas.",
	"4. Al término de la relación laboral, o cuando la empresa lo solicite, devolveré el equipo con sus accesorios.",
}

// ResponsivaGenerator implementa usecase.ResponsivaPDFGenerator con Maroto v2.
type ResponsivaGenerator struct{}

// NewResponsivaGenerator construye el generador.
func NewResponsivaGenerator() *ResponsivaGenerator { return &ResponsivaGenerator{} }

// GenerateResponsiva genera el PDF y devuelve sus bytes.
func (g *ResponsivaGenerator) GenerateResponsiva(_ context.Context, data usecase.ResponsivaData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Carta responsiva de equipo de cómputo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(companyRow(data))
	m.AddRows(employeeRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(equipmentRows()...)
	m.AddRows(row.New(4))
	m.AddRows(clauseRows()...)
	m.AddRows(row.New(20))
	m.AddRows(signatureRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar responsiva: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data usecase.ResponsivaData) core.Row {
	fecha := blank
	if !data.Date.IsZero() {
		fecha = data.Date.Format("02/01/2006")
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("CARTA RESPONSIVA", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Asignación de equipo de cómputo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 4,
			}),
		),
	)
}

func companyRow(data usecase.ResponsivaData) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("EMPRESA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Razón social: %s   |   RFC: %s",
				nonEmpty(data.CompanyName, blank),
				nonEmpty(data.RFC, "_____________"),
			), props.Text{Size: 9, Top: 7}),
		),
	)
}

// employeeRow lista los empleados registrados como referencia para llenar el nombre.
func employeeRow(data usecase.ResponsivaData) core.Row {
	ref := ""
	if len(data.Employees) > 0 {
		ref = "Empleados registrados: " + strings.Join(data.Employees, ", ")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("Nombre del empleado responsable: "+blank, props.Text{Size: 9, Top: 2}),
			text.New(ref, props.Text{Size: 7, Top: 8, Color: colorGray}),
		),
	)
}

func equipmentRows() []core.Row {
	h := func(label string) core.Col {
		return col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1,
		}))
	}
	v := func() core.Col {
		return col.New(3).Add(text.New(strings.Repeat("_", 18), props.Text{Size: 9, Top: 3, Left: 1}))
	}
	return []core.Row{
		row.New(6).Add(col.New(12).Add(text.New("DATOS DEL EQUIPO", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))),
		row.New(8).Add(h("Marca"), h("Modelo"), h("No. de serie"), h("Tipo")),
		row.New(8).Add(v(), v(), v(), v()),
		row.New(8).Add(h("Procesador"), h("Memoria RAM"), h("Disco duro"), h("Sistema operativo")),
		row.New(8).Add(v(), v(), v(), v()),
	}
}

func clauseRows() []core.Row {
	rows := make([]core.Row, 0, len(clauses))
	for _, c := range clauses {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New(c, props.Text{Size: 8.5, Top: 1}),
		)))
	}
	return rows
}

func signatureRow() core.Row {
	sig := func(label string) core.Col {
		return col.New(6).Add(
			text.New(blank, props.Text{Size: 9, Align: align.Center}),
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 6, Color: colorGray}),
		)
	}
	return row.New(16).Add(
		sig("Firma del empleado responsable"),
		sig("Firma del representante de la empresa"),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
