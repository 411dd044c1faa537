// Package pdf implementa el reporte descargable del panel del dueño:
// nombre de la tienda, promedio de calificación y tabla de calificadores.
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Calificaciones-api/internal/application/ports"
	"github.com/jhoicas/Calificaciones-api/internal/domain/entity"
	"github.com/jhoicas/Calificaciones-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ports.RatingsReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa ports.RatingsReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateRatingsReport genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateRatingsReport(
	_ context.Context,
	store *entity.Store,
	average *decimal.Decimal,
	raters []repository.Rater,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de calificaciones", true).
		WithAuthor(store.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(store, average))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range raters {
		m.AddRows(raterRow(r))
	}
	if len(raters) == 0 {
		m.AddRows(row.New(8).Add(
			col.New(12).Add(text.New("La tienda aún no tiene calificaciones.", props.Text{
				Size: 9, Color: colorGray, Align: align.Center, Top: 2,
			})),
		))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq) y promedio (der).
func headerRow(store *entity.Store, average *decimal.Decimal) core.Row {
	avgText := "Sin calificaciones"
	if average != nil {
		avgText = fmt.Sprintf("Promedio: %s / 5", average.Round(2).String())
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(store.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(store.Address, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(avgText, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 3,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	return row.New(8).Add(
		col.New(5).Add(text.New("Usuario", header)),
		col.New(5).Add(text.New("Email", header)),
		col.New(2).Add(text.New("Calificación", header)),
	)
}

func raterRow(r repository.Rater) core.Row {
	cell := props.Text{Size: 9, Top: 1}
	return row.New(7).Add(
		col.New(5).Add(text.New(r.Name, cell)),
		col.New(5).Add(text.New(r.Email, cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%d / 5", r.Rating), props.Text{Size: 9, Top: 1, Align: align.Center})),
	)
}

func footerRow() core.Row {
	generated := fmt.Sprintf("Generado el %s", time.Now().Format("02/01/2006 15:04"))
	return row.New(6).Add(
		col.New(12).Add(text.New(generated, props.Text{Size: 7, Color: colorGray, Align: align.Right, Top: 2})),
	)
}
