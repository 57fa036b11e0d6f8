package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateEstimatePDF renders an estimate as a customer-facing PDF using
// maroto/v2. Returns the raw PDF bytes.
func GenerateEstimatePDF(data *EstimateExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addEstimateHeader(m, data)
	addEstimateTableHeader(m)
	for _, r := range data.Rows {
		addEstimateTableRow(m, r)
	}
	addEstimateSummary(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addEstimateHeader(m core.Maroto, data *EstimateExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Landscape Estimate "+data.Number, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	subtle := &props.Color{Red: 80, Green: 80, Blue: 80}
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Customer: %s", data.CustomerName), props.Text{
					Size: 9, Align: align.Left, Color: subtle,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), props.Text{
					Size: 9, Align: align.Right, Color: subtle,
				}),
			),
		),
		row.New(7).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Project: %s", data.ProjectTitle), props.Text{
					Size: 9, Align: align.Left, Color: subtle,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Valid until: %s", data.ExpiresDate), props.Text{
					Size: 9, Align: align.Right, Color: subtle,
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

func addEstimateTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 31, Green: 68, Blue: 44}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(2).Add(text.New("Category", headerTextLeft)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unit", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(&headerCell),
		),
	)
}

func addEstimateTableRow(m core.Maroto, r EstimateExportRow) {
	baseText := props.Text{Size: 8, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(2).Add(text.New(r.Category, leftText)),
			col.New(4).Add(text.New(r.Description, leftText)),
			col.New(1).Add(text.New(formatQty(r.Quantity), rightText)),
			col.New(1).Add(text.New(r.Unit, baseText)),
			col.New(2).Add(text.New(FormatUSD(r.UnitPrice), rightText)),
			col.New(2).Add(text.New(FormatUSD(r.Total), rightText)),
		),
	)
}

func addEstimateSummary(m core.Maroto, data *EstimateExportData) {
	m.AddRows(row.New(4))

	label := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	value := props.Text{Size: 9, Align: align.Right}

	summaryRow := func(name, amount string) core.Row {
		return row.New(6).Add(
			col.New(8),
			col.New(2).Add(text.New(name, label)),
			col.New(2).Add(text.New(amount, value)),
		)
	}

	m.AddRows(
		summaryRow("Subtotal:", FormatUSD(data.Subtotal)),
		summaryRow(fmt.Sprintf("Markup (%.0f%%):", data.MarkupPercent), FormatUSD(data.MarkupAmount)),
		summaryRow(fmt.Sprintf("Tax (%.0f%%):", data.TaxPercent), FormatUSD(data.TaxAmount)),
		summaryRow("Total:", FormatUSD(data.GrandTotal)),
	)
}

// formatQty renders a quantity as a whole number when it has no fractional
// part, otherwise with 2 decimals.
func formatQty(q float64) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%d", int64(q))
	}
	return fmt.Sprintf("%.2f", q)
}
