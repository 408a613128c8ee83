// Package pdf implémente le rendu imprimable d'une facture avec Maroto v2.
//
// Mise en page A4 :
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER : Société + ICE        │  N° Facture + Dates        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENT : Nom + ICE + projet                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE : Description | Qté | P.U. HT | Total HT             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAUX : Total HT / TVA 20% / Total TTC                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIED : coordonnées société + notes                         │
//	└─────────────────────────────────────────────────────────────┘
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

	appbilling "github.com/nomadeprod/backoffice-api/internal/application/billing"
	"github.com/nomadeprod/backoffice-api/internal/domain/billing"
	"github.com/nomadeprod/backoffice-api/internal/domain/entity"
)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 20, Green: 45, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appbilling.PDFGenerator = (*MarotoGenerator)(nil)

// MarotoGenerator implémente billing.PDFGenerator avec Maroto v2.
type MarotoGenerator struct{}

// NewMarotoGenerator construit le générateur.
func NewMarotoGenerator() *MarotoGenerator { return &MarotoGenerator{} }

// GenerateInvoicePDF génère le PDF et retourne ses octets.
// profile peut être nil : le rendu retombe sur des libellés par défaut.
func (g *MarotoGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	items []*entity.InvoiceItem,
	profile *entity.Settings,
) ([]byte, error) {
	companyName := "Production"
	if profile != nil && profile.CompanyName != "" {
		companyName = profile.CompanyName
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Facture "+invoice.Number, true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, companyName, profile))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(invoice)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(invoice, profile))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer le document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow : société (gauche), numéro et dates (droite).
func headerRow(invoice *entity.Invoice, companyName string, profile *entity.Settings) core.Row {
	ice := ""
	if profile != nil && profile.TaxID != "" {
		ice = "ICE : " + profile.TaxID
	}
	return row.New(20).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(ice, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("FACTURE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Émise le : "+invoice.IssueDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New("Échéance : "+invoice.DueDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

// clientRow : destinataire et projet facturé.
func clientRow(invoice *entity.Invoice) core.Row {
	clientLine := invoice.Client
	if invoice.ClientICE != "" {
		clientLine += " — ICE : " + invoice.ClientICE
	}
	projectLine := ""
	if invoice.Project != "" {
		projectLine = "Projet : " + invoice.Project
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("FACTURÉ À", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(clientLine, props.Text{Size: 9, Top: 6}),
			text.New(projectLine, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(6).Add(text.New("Description", header)),
		col.New(2).Add(text.New("Qté", mergeAlign(header, align.Right))),
		col.New(2).Add(text.New("P.U. HT", mergeAlign(header, align.Right))),
		col.New(2).Add(text.New("Total HT", mergeAlign(header, align.Right))),
	)
}

func tableItemRows(items []*entity.InvoiceItem) []core.Row {
	cell := props.Text{Size: 8, Top: 1}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(it.Description, cell)),
			col.New(2).Add(text.New(it.Quantity.String(), mergeAlign(cell, align.Right))),
			col.New(2).Add(text.New(billing.FormatAmount(it.UnitPrice), mergeAlign(cell, align.Right))),
			col.New(2).Add(text.New(billing.FormatAmount(it.Total), mergeAlign(cell, align.Right))),
		))
	}
	return rows
}

func totalsRows(invoice *entity.Invoice) []core.Row {
	label := props.Text{Size: 9, Align: align.Right, Top: 1}
	value := props.Text{Size: 9, Align: align.Right, Top: 1}
	bold := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Color: colorPrimary}
	return []core.Row{
		row.New(6).Add(
			col.New(8),
			col.New(2).Add(text.New("Total HT", label)),
			col.New(2).Add(text.New(billing.FormatAmountMAD(invoice.Amount), value)),
		),
		row.New(6).Add(
			col.New(8),
			col.New(2).Add(text.New("TVA 20%", label)),
			col.New(2).Add(text.New(billing.FormatAmountMAD(invoice.TaxAmount), value)),
		),
		row.New(8).Add(
			col.New(8),
			col.New(2).Add(text.New("Total TTC", bold)),
			col.New(2).Add(text.New(billing.FormatAmountMAD(invoice.TotalAmount), bold)),
		),
	}
}

func footerRow(invoice *entity.Invoice, profile *entity.Settings) core.Row {
	contact := ""
	if profile != nil {
		if profile.Address != "" {
			contact = profile.Address
		}
		if profile.Email != "" {
			if contact != "" {
				contact += " · "
			}
			contact += profile.Email
		}
		if profile.Phone != "" {
			if contact != "" {
				contact += " · "
			}
			contact += profile.Phone
		}
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New(contact, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(invoice.Notes, props.Text{Size: 7, Color: colorGray, Top: 5}),
		),
	)
}

func mergeAlign(p props.Text, a align.Type) props.Text {
	p.Align = a
	return p
}
