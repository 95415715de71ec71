package entity

import (
	"encoding/json"
	"math"
	"testing"

	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			name     string
			input    any
			expected string
		}{
			{"Plain string", "100.00", "100"},
			{"Negative string", "-50", "-50"},
			{"Float", 12.5, "12.5"},
			{"Int", 42, "42"},
			{"Int64", int64(-7), "-7"},
			{"JSON number", json.Number("3.25"), "3.25"},
			{"Decimal", decimal.RequireFromString("9.99"), "9.99"},
			{"Currency prefix", "GH₵ 12.50", "12.5"},
			{"Currency suffix", "12.50 GHS", "12.5"},
			{"Dollar sign", "$100", "100"},
			{"Thousands separator", "1,200.00", "1200"},
			{"Sign before currency", "-GH₵1,200.00", "-1200"},
			{"Sign after currency", "GH₵-1,200.00", "-1200"},
			{"Accounting parentheses", "(1,200.00)", "-1200"},
			{"Explicit plus", "+5", "5"},
			{"Surrounding whitespace", "  0.10  ", "0.1"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				amount, err := ParseAmount(tc.input)
				require.NoError(t, err)
				assert.True(t, decimal.RequireFromString(tc.expected).Equal(amount),
					"expected %s, got %s", tc.expected, amount)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			name  string
			input any
		}{
			{"Nil", nil},
			{"Nil decimal pointer", (*decimal.Decimal)(nil)},
			{"Empty string", ""},
			{"Whitespace only", "   "},
			{"Non-numeric", "abc"},
			{"Currency only", "GH₵"},
			{"Multiple decimal points", "1.00.00"},
			{"NaN", math.NaN()},
			{"Infinity", math.Inf(1)},
			{"Unsupported type", []int{1}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				amount, err := ParseAmount(tc.input)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
				assert.True(t, amount.IsZero())
			})
		}
	})
}

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"0", "0.00"},
		{"10.1", "10.10"},
		{"-80", "-80.00"},
		{"1234.567", "1234.57"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatAmount(decimal.RequireFromString(tc.input)))
		})
	}
}
