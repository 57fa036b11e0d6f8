package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/shopspring/decimal"
)

// Default percentages applied to a new estimate. Both are editable
// per-estimate afterwards.
var (
	DefaultMarkupPercent = 25.0
	DefaultTaxPercent    = 8.0
)

var oneHundred = decimal.NewFromInt(100)

// LineItemTotal computes quantity × unit price. All money math runs through
// decimals; records store the float projection, but every recomputation
// re-enters decimal space so repeated edits never accumulate drift.
func LineItemTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// LineItemTotalFloat is LineItemTotal on record-level float values.
func LineItemTotalFloat(quantity, unitPrice float64) float64 {
	return LineItemTotal(decimal.NewFromFloat(quantity), decimal.NewFromFloat(unitPrice)).InexactFloat64()
}

// EstimateTotals holds the derived amounts for one estimate. None of these
// are ever edited directly; they are recomputed from the line items on every
// mutation.
type EstimateTotals struct {
	Subtotal     decimal.Decimal
	MarkupAmount decimal.Decimal
	TaxAmount    decimal.Decimal
	GrandTotal   decimal.Decimal
}

// CalcEstimateTotals derives the estimate-level amounts:
//
//	subtotal = Σ line totals
//	markup   = subtotal × markup% / 100
//	tax      = subtotal × tax% / 100
//	grand    = subtotal + markup + tax
//
// Intermediates are kept exact; rounding to two places happens only at
// display/storage time.
func CalcEstimateTotals(lineTotals []decimal.Decimal, markupPercent, taxPercent decimal.Decimal) EstimateTotals {
	subtotal := decimal.Zero
	for _, t := range lineTotals {
		subtotal = subtotal.Add(t)
	}

	markup := subtotal.Mul(markupPercent).Div(oneHundred)
	tax := subtotal.Mul(taxPercent).Div(oneHundred)

	return EstimateTotals{
		Subtotal:     subtotal,
		MarkupAmount: markup,
		TaxAmount:    tax,
		GrandTotal:   subtotal.Add(markup).Add(tax),
	}
}

// RecalcEstimateTotals reloads an estimate's line items, recomputes the
// derived amounts and writes them back onto the estimate record. Called
// after every line item add/patch/delete and whenever markup or tax percent
// changes.
func RecalcEstimateTotals(app *pocketbase.PocketBase, estimateID string) (EstimateTotals, error) {
	estimate, err := app.FindRecordById("estimates", estimateID)
	if err != nil {
		return EstimateTotals{}, fmt.Errorf("recalc: estimate %q not found: %w", estimateID, err)
	}

	items, err := app.FindRecordsByFilter(
		"estimate_line_items",
		"estimate = {:estimateId}",
		"created", 0, 0,
		map[string]any{"estimateId": estimateID},
	)
	if err != nil {
		return EstimateTotals{}, fmt.Errorf("recalc: could not load line items for %q: %w", estimateID, err)
	}

	lineTotals := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		lineTotals = append(lineTotals, LineItemTotal(
			decimal.NewFromFloat(item.GetFloat("quantity")),
			decimal.NewFromFloat(item.GetFloat("unit_price")),
		))
	}

	totals := CalcEstimateTotals(
		lineTotals,
		decimal.NewFromFloat(estimate.GetFloat("markup_percent")),
		decimal.NewFromFloat(estimate.GetFloat("tax_percent")),
	)

	estimate.Set("subtotal", totals.Subtotal.InexactFloat64())
	estimate.Set("markup_amount", totals.MarkupAmount.InexactFloat64())
	estimate.Set("tax_amount", totals.TaxAmount.InexactFloat64())
	estimate.Set("total", totals.GrandTotal.InexactFloat64())

	if err := app.Save(estimate); err != nil {
		return EstimateTotals{}, fmt.Errorf("recalc: could not save estimate %q: %w", estimateID, err)
	}
	return totals, nil
}
