package ledger

import (
	"encoding/json"
	"testing"

	"github.com/carlmjohnson/be"
	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "integer", input: "120", expected: "120"},
		{name: "decimal point", input: "12.34", expected: "12.34"},
		{name: "decimal comma", input: "12,34", expected: "12.34"},
		{name: "surrounding spaces", input: "  7.5 ", expected: "7.5"},
		{name: "empty", input: "", expected: "0"},
		{name: "garbage", input: "abc", expected: "0"},
		{name: "negative", input: "-50", expected: "0"},
		{name: "largest accepted", input: "1000000000000", expected: "1000000000000"},
		{name: "oversized", input: "1000000000000.01", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.expected, ParseAmount(tt.input).String())
		})
	}
}

func TestAmountUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "quoted", input: `{"value":"120.50"}`, expected: "120.5"},
		{name: "number", input: `{"value":500}`, expected: "500"},
		{name: "empty string", input: `{"value":""}`, expected: "0"},
		{name: "not a number", input: `{"value":"lots"}`, expected: "0"},
		{name: "negative", input: `{"value":-3}`, expected: "0"},
		{name: "null", input: `{"value":null}`, expected: "0"},
		{name: "missing", input: `{}`, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got struct {
				Value Amount `json:"value"`
			}
			be.NilErr(t, json.Unmarshal([]byte(tt.input), &got))
			be.Equal(t, tt.expected, got.Value.String())
		})
	}
}

func TestAmountMarshalJSON(t *testing.T) {
	b, err := json.Marshal(Transaction{ID: "a", Value: ParseAmount("9.90")})
	be.NilErr(t, err)
	be.In(t, `"value":"9.9"`, string(b))
}

func TestAmountDisplay(t *testing.T) {
	be.Equal(t, "$1,500.00", ParseAmount("1500").Display("USD"))
	be.Equal(t, "$0.00", Amount{}.Display("USD"))

	// totals can exceed what fits in int64 minor units
	huge := Amount{Decimal: decimal.New(1, 20)}
	be.Equal(t, "100000000000000000000.00 USD", huge.Display("USD"))
}

func TestNewAmountClampsNegative(t *testing.T) {
	be.True(t, NewAmount(decimal.NewFromInt(-1)).IsZero())
	be.Equal(t, "3", NewAmount(decimal.NewFromInt(3)).String())
}
