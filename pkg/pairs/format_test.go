package pairs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"dexboard-api/pkg/pairs"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "billions", in: 2.41e12, want: "2410.00B"},
		{name: "tens of billions", in: 9.13e10, want: "91.30B"},
		{name: "exact billion", in: 1e9, want: "1.00B"},
		{name: "millions", in: 1_500_000, want: "1.50M"},
		{name: "thousands", in: 64_250.5, want: "64.25K"},
		{name: "below thousand", in: 999, want: "999.00"},
		{name: "fraction", in: 0.5, want: "0.50"},
		{name: "negative millions", in: -2_500_000, want: "-2.50M"},
		{name: "zero", in: 0, want: "0.00"},
		{name: "nan", in: math.NaN(), want: "0.00"},
		{name: "positive infinity", in: math.Inf(1), want: "0.00"},
		{name: "negative infinity", in: math.Inf(-1), want: "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pairs.FormatNumber(tt.in))
		})
	}
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "round amount keeps two digits", in: 3000, want: "$3,000.00"},
		{name: "cents preserved", in: 64250.12, want: "$64,250.12"},
		{name: "trailing zeros trimmed", in: 1.5, want: "$1.50"},
		{name: "sub dollar keeps precision", in: 0.123456, want: "$0.123456"},
		{name: "tiny price rounded at six digits", in: 0.000123456, want: "$0.000123"},
		{name: "millions grouped", in: 1234567.891, want: "$1,234,567.891"},
		{name: "zero", in: 0, want: "$0.00"},
		{name: "nan", in: math.NaN(), want: "$0.00"},
		{name: "negative", in: -42.5, want: "-$42.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pairs.FormatUSD(tt.in))
		})
	}
}
