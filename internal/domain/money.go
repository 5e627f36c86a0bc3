package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "RM"

// amountScale is the number of decimals a ringgit amount carries.
const amountScale = 2

var amountPrinter = message.NewPrinter(language.English)

// NormalizeAmountInput keeps what an amount field accepts while typing: digits
// and a single decimal point, with at most two decimals.
func NormalizeAmountInput(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	parts := strings.Split(b.String(), ".")
	if len(parts) == 1 {
		return parts[0]
	}
	fraction := strings.Join(parts[1:], "")
	if len(fraction) > amountScale {
		fraction = fraction[:amountScale]
	}
	return parts[0] + "." + fraction
}

// ParseAmount parses a typed amount: an optional minus sign, digits and at
// most one decimal point. More than two decimals is rejected.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if !plainDecimal(raw) {
		return decimal.Zero, fmt.Errorf("could not parse amount '%s': not a plain decimal number", raw)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not parse amount '%s': %w", raw, err)
	}
	if d.Exponent() < -amountScale && !d.Equal(d.Round(amountScale)) {
		return decimal.Zero, fmt.Errorf("amount '%s' has more than %d decimals", raw, amountScale)
	}
	return d, nil
}

// plainDecimal reports whether s is an optional minus sign followed by digits
// and at most one decimal point. Exponent notation is not accepted.
func plainDecimal(s string) bool {
	s = strings.TrimPrefix(s, "-")
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// FormatCurrency renders an amount as "RM 15,220.50".
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(amountScale)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	fixed := rounded.StringFixed(amountScale)
	fraction := fixed[strings.IndexByte(fixed, '.')+1:]
	whole := amountPrinter.Sprintf("%d", rounded.IntPart())
	return fmt.Sprintf("%s%s %s.%s", sign, CurrencySymbol, whole, fraction)
}
