package reference

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	rupeeSign   = "₹"
	openEndMark = "+"
	rangeSep    = "-"
)

/*
ParseFeeRange converts a label such as "₹40,000-1,00,000" or "₹1,00,000+"
into numeric bounds.

Digit grouping commas are ignored, so lakh-style grouping parses the same as
thousands grouping.

Returns:
  - FeeRange: the label with its bounds
  - error: when the label is not "₹<min>-<max>" or "₹<min>+", or min > max
*/
func ParseFeeRange(label string) (FeeRange, error) {
	body, ok := strings.CutPrefix(strings.TrimSpace(label), rupeeSign)
	if !ok {
		return FeeRange{}, fmt.Errorf("reference: fee range %q: missing %s", label, rupeeSign)
	}

	if lower, open := strings.CutSuffix(body, openEndMark); open {
		min, err := parseAmount(lower)
		if err != nil {
			return FeeRange{}, fmt.Errorf("reference: fee range %q: %w", label, err)
		}
		return FeeRange{Label: label, Min: min}, nil
	}

	lower, upper, found := strings.Cut(body, rangeSep)
	if !found {
		return FeeRange{}, fmt.Errorf("reference: fee range %q: expected <min>-<max> or <min>+", label)
	}

	min, err := parseAmount(lower)
	if err != nil {
		return FeeRange{}, fmt.Errorf("reference: fee range %q: %w", label, err)
	}
	max, err := parseAmount(strings.TrimPrefix(strings.TrimSpace(upper), rupeeSign))
	if err != nil {
		return FeeRange{}, fmt.Errorf("reference: fee range %q: %w", label, err)
	}
	if min.GreaterThan(max) {
		return FeeRange{}, fmt.Errorf("reference: fee range %q: lower bound exceeds upper bound", label)
	}

	return FeeRange{
		Label: label,
		Min:   min,
		Max:   decimal.NewNullDecimal(max),
	}, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	digits := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if digits == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}
	amount, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("amount %q: %w", raw, err)
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("amount %q is negative", raw)
	}
	return amount, nil
}
