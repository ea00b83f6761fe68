// Package taxsummary groups line items by GST bracket and splits each
// bracket's tax into its two equal components (CGST and SGST).
package taxsummary

import (
	"github.com/flexprice/gstinvoice/internal/calc"
	"github.com/flexprice/gstinvoice/internal/domain/invoice"
	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/flexprice/gstinvoice/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var twoHundred = decimal.NewFromInt(200)

// Row is one bracket of the summary. All amounts are rounded to two places.
type Row struct {
	Rate    decimal.Decimal
	Taxable decimal.Decimal
	CGST    decimal.Decimal
	SGST    decimal.Decimal
	Total   decimal.Decimal
}

// Summary is the aggregated table plus its TOTAL row.
type Summary struct {
	Rows  []Row
	Total Row
	// Excluded holds the indexes of items whose rate matched no row.
	Excluded []int
}

// Config selects how brackets are chosen.
type Config struct {
	Strategy        types.SummaryStrategy
	Brackets        []decimal.Decimal
	UnsupportedRate types.UnsupportedRatePolicy
}

// Aggregator builds tax summaries. It holds configuration only and is safe
// for concurrent use.
type Aggregator struct {
	strategy types.SummaryStrategy
	brackets []decimal.Decimal
	policy   types.UnsupportedRatePolicy
}

// NewAggregator returns an aggregator, falling back to the default GST slabs,
// the fixed strategy and the exclude policy for zero values.
func NewAggregator(cfg Config) *Aggregator {
	a := &Aggregator{
		strategy: cfg.Strategy,
		brackets: types.SortBrackets(cfg.Brackets),
		policy:   cfg.UnsupportedRate,
	}
	if a.strategy == "" {
		a.strategy = types.SummaryStrategyFixed
	}
	if len(a.brackets) == 0 {
		a.brackets = types.DefaultTaxBrackets
	}
	if a.policy == "" {
		a.policy = types.UnsupportedRateExclude
	}
	return a
}

// Strategy returns the configured strategy.
func (a *Aggregator) Strategy() types.SummaryStrategy {
	return a.strategy
}

// Enabled reports whether a summary table is rendered at all.
func (a *Aggregator) Enabled() bool {
	return a.strategy != types.SummaryStrategyNone
}

// Unsupported returns the indexes of items whose rate is not a configured
// bracket. It is only meaningful for the fixed strategy.
func (a *Aggregator) Unsupported(items []invoice.LineItem) []int {
	var idx []int
	for i, item := range items {
		if !containsRate(a.brackets, item.TaxRate) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Check enforces the reject policy. It returns a validation error listing
// the offending items, or nil when the invoice can be summarised.
func (a *Aggregator) Check(items []invoice.LineItem) error {
	if a.strategy != types.SummaryStrategyFixed || a.policy != types.UnsupportedRateReject {
		return nil
	}
	bad := a.Unsupported(items)
	if len(bad) == 0 {
		return nil
	}
	rates := lo.Map(bad, func(i int, _ int) string {
		return items[i].TaxRate.String()
	})
	return ierr.NewErrorf("%d item(s) use a tax rate outside the supported brackets", len(bad)).
		WithHintf("Supported tax rates are %v", a.brackets).
		WithReportableDetails(map[string]any{
			"items": bad,
			"rates": rates,
		}).
		Mark(ierr.ErrValidation)
}

// Brackets returns the ascending rates that get a row for these items.
func (a *Aggregator) Brackets(items []invoice.LineItem) []decimal.Decimal {
	rates := lo.Map(items, func(item invoice.LineItem, _ int) decimal.Decimal {
		return item.TaxRate
	})

	switch a.strategy {
	case types.SummaryStrategyNone:
		return nil
	case types.SummaryStrategyDerived:
		return types.SortBrackets(rates)
	}

	if a.policy == types.UnsupportedRateExtend {
		return types.SortBrackets(append(append([]decimal.Decimal{}, a.brackets...), rates...))
	}
	return a.brackets
}

// Aggregate builds one row per bracket, including empty ones, and a TOTAL row
// that is the column sum of the rounded rows.
func (a *Aggregator) Aggregate(items []invoice.LineItem) Summary {
	brackets := a.Brackets(items)

	summary := Summary{
		Rows: make([]Row, 0, len(brackets)),
		Total: Row{
			Taxable: decimal.Zero,
			CGST:    decimal.Zero,
			SGST:    decimal.Zero,
			Total:   decimal.Zero,
		},
	}

	for _, bracket := range brackets {
		matched := lo.Filter(items, func(item invoice.LineItem, _ int) bool {
			return item.TaxRate.Equal(bracket)
		})
		row := BuildRow(bracket, calc.Subtotal(matched))
		summary.Rows = append(summary.Rows, row)

		summary.Total.Taxable = summary.Total.Taxable.Add(row.Taxable)
		summary.Total.CGST = summary.Total.CGST.Add(row.CGST)
		summary.Total.SGST = summary.Total.SGST.Add(row.SGST)
		summary.Total.Total = summary.Total.Total.Add(row.Total)
	}

	if len(brackets) > 0 {
		for i, item := range items {
			if !containsRate(brackets, item.TaxRate) {
				summary.Excluded = append(summary.Excluded, i)
			}
		}
	}

	return summary
}

// BuildRow computes one bracket row from its unrounded taxable amount.
func BuildRow(rate, taxable decimal.Decimal) Row {
	half := taxable.Mul(rate).Div(twoHundred).Round(2)
	taxableRounded := taxable.Round(2)
	return Row{
		Rate:    rate,
		Taxable: taxableRounded,
		CGST:    half,
		SGST:    half,
		Total:   taxableRounded.Add(half).Add(half),
	}
}

func containsRate(brackets []decimal.Decimal, rate decimal.Decimal) bool {
	return lo.ContainsBy(brackets, func(b decimal.Decimal) bool {
		return b.Equal(rate)
	})
}
