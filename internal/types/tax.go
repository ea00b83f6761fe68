package types

import (
	"slices"

	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// SummaryStrategy decides which brackets the tax summary table shows.
type SummaryStrategy string

const (
	// SummaryStrategyFixed shows one row per configured legal bracket, even when empty.
	SummaryStrategyFixed SummaryStrategy = "fixed"
	// SummaryStrategyDerived shows one row per distinct rate present on the invoice.
	SummaryStrategyDerived SummaryStrategy = "derived"
	// SummaryStrategyNone renders no summary table.
	SummaryStrategyNone SummaryStrategy = "none"
)

func (s SummaryStrategy) String() string {
	return string(s)
}

func (s SummaryStrategy) Validate() error {
	allowed := []SummaryStrategy{
		SummaryStrategyFixed,
		SummaryStrategyDerived,
		SummaryStrategyNone,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewErrorf("invalid summary strategy: %s", s).
			WithHintf("summary strategy must be one of %v", allowed).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// UnsupportedRatePolicy decides what happens to items whose tax rate is not
// one of the configured brackets under SummaryStrategyFixed.
type UnsupportedRatePolicy string

const (
	// UnsupportedRateExclude leaves such items out of the summary table.
	UnsupportedRateExclude UnsupportedRatePolicy = "exclude"
	// UnsupportedRateReject fails validation before anything is rendered.
	UnsupportedRateReject UnsupportedRatePolicy = "reject"
	// UnsupportedRateExtend appends an extra summary row per unlisted rate.
	UnsupportedRateExtend UnsupportedRatePolicy = "extend"
)

func (p UnsupportedRatePolicy) String() string {
	return string(p)
}

func (p UnsupportedRatePolicy) Validate() error {
	allowed := []UnsupportedRatePolicy{
		UnsupportedRateExclude,
		UnsupportedRateReject,
		UnsupportedRateExtend,
	}
	if !lo.Contains(allowed, p) {
		return ierr.NewErrorf("invalid unsupported rate policy: %s", p).
			WithHintf("unsupported rate policy must be one of %v", allowed).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// DefaultTaxBrackets are the GST slabs used when none are configured.
var DefaultTaxBrackets = []decimal.Decimal{
	decimal.NewFromInt(5),
	decimal.NewFromInt(12),
	decimal.NewFromInt(18),
	decimal.NewFromInt(28),
}

// ParseTaxBrackets converts configured percentages into sorted, de-duplicated brackets.
func ParseTaxBrackets(values []float64) ([]decimal.Decimal, error) {
	if len(values) == 0 {
		return DefaultTaxBrackets, nil
	}

	brackets := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		if v < 0 || v > 100 {
			return nil, ierr.NewErrorf("tax bracket out of range: %v", v).
				WithHint("tax brackets must be between 0 and 100").
				Mark(ierr.ErrValidation)
		}
		brackets = append(brackets, decimal.NewFromFloat(v))
	}

	return SortBrackets(brackets), nil
}

// SortBrackets returns the brackets in ascending order without duplicates.
func SortBrackets(brackets []decimal.Decimal) []decimal.Decimal {
	unique := lo.UniqBy(brackets, func(d decimal.Decimal) string {
		return d.String()
	})
	slices.SortFunc(unique, func(a, b decimal.Decimal) int {
		return a.Cmp(b)
	})
	return unique
}
