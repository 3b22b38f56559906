package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidTaxCode = errors.New("invalid tax code, expected one of 5, 18, 27, AAM, TAM, FAD")

// TaxCategory is the VAT treatment applied to a net price. The value is the
// short code used on the wire and on disk.
type TaxCategory string

const (
	TaxExemptAAM TaxCategory = "AAM"
	TaxExemptFAD TaxCategory = "FAD"
	TaxExemptTAM TaxCategory = "TAM"
	Tax5         TaxCategory = "5"
	Tax18        TaxCategory = "18"
	Tax27        TaxCategory = "27"

	DefaultTaxCategory = Tax27
)

var multipliers = map[TaxCategory]decimal.Decimal{
	TaxExemptAAM: decimal.NewFromInt(1),
	TaxExemptFAD: decimal.NewFromInt(1),
	TaxExemptTAM: decimal.NewFromInt(1),
	Tax5:         decimal.RequireFromString("1.05"),
	Tax18:        decimal.RequireFromString("1.18"),
	Tax27:        decimal.RequireFromString("1.27"),
}

// ParseTaxCategory accepts the exemption codes in any letter case and the
// percentage bands as bare numbers.
func ParseTaxCategory(code string) (TaxCategory, error) {
	c := TaxCategory(strings.ToUpper(code))
	if _, ok := multipliers[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTaxCode, code)
	}
	return c, nil
}

func (c TaxCategory) String() string {
	return string(c)
}

func (c TaxCategory) Valid() bool {
	_, ok := multipliers[c]
	return ok
}

func (c TaxCategory) IsExempt() bool {
	return c == TaxExemptAAM || c == TaxExemptFAD || c == TaxExemptTAM
}

// Multiplier returns the net to gross factor. Unknown categories fall back
// to the default band.
func (c TaxCategory) Multiplier() decimal.Decimal {
	if m, ok := multipliers[c]; ok {
		return m
	}
	return multipliers[DefaultTaxCategory]
}

// Gross rounds half away from zero to the nearest minor currency unit and
// saturates at math.MaxUint32.
func (c TaxCategory) Gross(net uint32) uint32 {
	gross := decimal.NewFromInt(int64(net)).Mul(c.Multiplier()).Round(0).IntPart()
	if gross > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(gross)
}
