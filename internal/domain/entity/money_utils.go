package entity

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"unicode"

	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
	"github.com/shopspring/decimal"
)

// DisplayDecimalPlaces defines how many decimal places amounts are rendered with
const DisplayDecimalPlaces = 2

// ParseAmount normalizes an amount coming from a collaborator into a decimal.
// Upstream payloads carry amounts either as JSON numbers or as strings that may
// include currency symbols, thousands separators or accounting parentheses:
// - 12.5, "12.50", "GH₵ 12.50", "12.50 GHS" become 12.5
// - "-GH₵1,200.00", "GH₵-1,200.00", "(1,200.00)" become -1200
// Returns ErrInvalidAmount if no number can be recovered.
func ParseAmount(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case nil:
		return decimal.Zero, fmt.Errorf("%w: missing value", errs.ErrInvalidAmount)
	case decimal.Decimal:
		return v, nil
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, fmt.Errorf("%w: missing value", errs.ErrInvalidAmount)
		}
		return *v, nil
	case float64:
		return fromFloat(v)
	case float32:
		return fromFloat(float64(v))
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt32(v), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case uint64:
		return decimal.NewFromUint64(v), nil
	case json.Number:
		return parseAmountString(v.String())
	case string:
		return parseAmountString(v)
	default:
		return decimal.Zero, fmt.Errorf("%w: unsupported type %T", errs.ErrInvalidAmount, value)
	}
}

// FormatAmount renders an amount with two decimal places, e.g. 10.1 becomes "10.10"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(DisplayDecimalPlaces)
}

func fromFloat(v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, fmt.Errorf("%w: %v", errs.ErrInvalidAmount, v)
	}
	return decimal.NewFromFloat(v), nil
}

func parseAmountString(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	// Sign may sit on either side of a currency prefix.
	s, negative = stripSign(s, negative)
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.' && r != '-' && r != '+'
	})
	s, negative = stripSign(s, negative)
	s = strings.TrimRightFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.'
	})

	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", errs.ErrInvalidAmount, raw)
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", errs.ErrInvalidAmount, raw)
	}

	if negative {
		value = value.Neg()
	}
	return value, nil
}

func stripSign(s string, negative bool) (string, bool) {
	switch {
	case strings.HasPrefix(s, "-"):
		return s[1:], !negative
	case strings.HasPrefix(s, "+"):
		return s[1:], negative
	default:
		return s, negative
	}
}
