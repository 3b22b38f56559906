package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaxCategory(t *testing.T) {
	cases := map[string]TaxCategory{
		"aam": TaxExemptAAM,
		"AAM": TaxExemptAAM,
		"Fad": TaxExemptFAD,
		"tam": TaxExemptTAM,
		"5":   Tax5,
		"18":  Tax18,
		"27":  Tax27,
	}

	for code, want := range cases {
		got, err := ParseTaxCategory(code)
		require.NoError(t, err, code)
		assert.Equal(t, want, got, code)
	}
}

func TestParseTaxCategory_Invalid(t *testing.T) {
	for _, code := range []string{"19", "", "0", "27%", "vat", " 27", "aam\n", "5\n", "\tfad ", "18 "} {
		_, err := ParseTaxCategory(code)
		if !errors.Is(err, ErrInvalidTaxCode) {
			t.Errorf("code %q: expected ErrInvalidTaxCode, got: %v", code, err)
		}
	}
}

func TestTaxCategory_Multiplier(t *testing.T) {
	aam, _ := ParseTaxCategory("aam")
	assert.Equal(t, "1", aam.Multiplier().String())
	assert.True(t, aam.IsExempt())
	assert.False(t, Tax18.IsExempt())
	assert.Equal(t, "1.27", DefaultTaxCategory.Multiplier().String())
}

func TestTaxCategory_Gross(t *testing.T) {
	tests := []struct {
		net  uint32
		tax  TaxCategory
		want uint32
	}{
		{1000, Tax27, 1270},
		{1000, Tax5, 1050},
		{1000, Tax18, 1180},
		{1000, TaxExemptFAD, 1000},
		{0, Tax27, 0},
		{10, Tax5, 11},   // 10.5 rounds away from zero
		{1, Tax27, 1},    // 1.27
		{2, Tax27, 3},    // 2.54
		{99, Tax18, 117}, // 116.82
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tax.Gross(tt.net), "net=%d tax=%s", tt.net, tt.tax)
	}
}

func TestTaxCategory_GrossSaturates(t *testing.T) {
	assert.Equal(t, uint32(math.MaxUint32), Tax27.Gross(math.MaxUint32))
}
