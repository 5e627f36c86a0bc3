package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAmountInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain digits", raw: "200", want: "200"},
		{name: "strips currency and spaces", raw: "RM 1 000", want: "1000"},
		{name: "keeps two decimals", raw: "12.345", want: "12.34"},
		{name: "merges extra dots", raw: "1.2.3", want: "1.23"},
		{name: "trailing dot kept while typing", raw: "15.", want: "15."},
		{name: "empty", raw: "", want: ""},
		{name: "letters only", raw: "abc", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAmountInput(tt.raw))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "integer", raw: "200", want: "200"},
		{name: "two decimals", raw: "50000.01", want: "50000.01"},
		{name: "surrounding spaces", raw: " 10.5 ", want: "10.5"},
		{name: "trailing zeros beyond cents", raw: "1.500", want: "1.5"},
		{name: "three significant decimals", raw: "1.005", wantErr: true},
		{name: "not a number", raw: "ten", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "negative", raw: "-5", want: "-5"},
		{name: "exponent notation rejected", raw: "1e900000000", wantErr: true},
		{name: "small exponent rejected", raw: "2E2", wantErr: true},
		{name: "two decimal points", raw: "1.2.3", wantErr: true},
		{name: "lone dot", raw: ".", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{amount: "200", want: "RM 200.00"},
		{amount: "0.5", want: "RM 0.50"},
		{amount: "15220.5", want: "RM 15,220.50"},
		{amount: "1234567.891", want: "RM 1,234,567.89"},
		{amount: "-250", want: "-RM 250.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(decimal.RequireFromString(tt.amount)))
		})
	}
}
