package words

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToWords(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "Rupees Zero Only"},
		{"0.00", "Rupees Zero Only"},
		{"1", "Rupees One Only"},
		{"19", "Rupees Nineteen Only"},
		{"20", "Rupees Twenty Only"},
		{"45", "Rupees Forty Five Only"},
		{"100", "Rupees One Hundred Only"},
		{"101", "Rupees One Hundred One Only"},
		{"1000", "Rupees One Thousand Only"},
		{"90210", "Rupees Ninety Thousand Two Hundred Ten Only"},
		{"100000", "Rupees One Lakh Only"},
		{"1234567", "Rupees Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Only"},
		{"10000000", "Rupees One Crore Only"},
		{"99999999", "Rupees Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine Only"},
		{"999999999", "Rupees Ninety Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine Only"},
		{"1200000000", "Rupees One Hundred Twenty Crore Only"},
		{"100.50", "Rupees One Hundred and Paise Fifty Only"},
		{"354.05", "Rupees Three Hundred Fifty Four and Paise Five Only"},
		{"0.75", "Rupees Zero and Paise Seventy Five Only"},
		{"12.999", "Rupees Thirteen Only"},
		{"12.994", "Rupees Twelve and Paise Ninety Nine Only"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, ToWords(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestToWords_PaiseWrapperAppliedOnce(t *testing.T) {
	got := ToWords(decimal.RequireFromString("100.50"))

	assert.Equal(t, 1, strings.Count(got, "Rupees"))
	assert.Equal(t, 1, strings.Count(got, "Only"))
	assert.True(t, strings.HasSuffix(got, "and Paise Fifty Only"))
	assert.NotContains(t, got, "  ")
}

func TestConvert(t *testing.T) {
	w := Convert(decimal.RequireFromString("2500.40"))
	assert.Equal(t, "Two Thousand Five Hundred", w.Rupees)
	assert.Equal(t, "Forty", w.Paise)
	assert.True(t, w.HasPaise())

	w = Convert(decimal.NewFromInt(7))
	assert.Equal(t, "Seven", w.Rupees)
	assert.False(t, w.HasPaise())
}

func TestInteger(t *testing.T) {
	assert.Equal(t, "Zero", Integer(0))
	assert.Equal(t, "Eleven", Integer(11))
	assert.Equal(t, "Seventy", Integer(70))
	assert.Equal(t, "Five Lakh Five", Integer(500005))
}

func TestConvert_BeyondInt64Paise(t *testing.T) {
	// 10^17 rupees is 10^19 paise, past the int64 range.
	w := Convert(decimal.RequireFromString("100000000000000000"))
	assert.Equal(t, "One Thousand Crore Crore", w.Rupees)
	assert.False(t, w.HasPaise())

	w = Convert(decimal.RequireFromString("92233720368547758.75"))
	assert.NotEqual(t, "Zero", w.Rupees)
	assert.Equal(t, "Seventy Five", w.Paise)

	assert.Equal(t, "Rupees One Hundred Twenty Crore Crore and Paise One Only",
		ToWords(decimal.RequireFromString("12000000000000000.01")))
}
