package cli

import (
	"strings"

	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/flexprice/gstinvoice/internal/words"
	"github.com/shopspring/decimal"
)

// AmountInWords parses a decimal amount such as "1234.50" and words it.
func AmountInWords(raw string) (string, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "", ierr.WithError(err).
			WithHintf("%q is not a valid amount", raw).
			Mark(ierr.ErrValidation)
	}
	if amount.IsNegative() {
		return "", ierr.NewErrorf("negative amount %s", amount).
			WithHint("Amount must not be negative").
			Mark(ierr.ErrValidation)
	}
	return words.ToWords(amount), nil
}
