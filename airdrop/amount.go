package airdrop

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Bounds on the scale of an accepted amount. Summing and formatting cost
// grows with the exponent.
const (
	maxAmountExponent = 1000
	maxAmountDigits   = 1000
)

// AmountFormat selects how an Amount is written to the manifest.
type AmountFormat int

const (
	// AmountFormatNumber writes the amount as a JSON number in canonical decimal form.
	AmountFormatNumber AmountFormat = iota
	// AmountFormatString writes the operator's original text as a JSON string, keeping full precision.
	AmountFormatString
)

func (f AmountFormat) String() string {
	switch f {
	case AmountFormatNumber:
		return "number"
	case AmountFormatString:
		return "string"
	default:
		return fmt.Sprintf("AmountFormat(%d)", int(f))
	}
}

// Amount is a validated, strictly positive token amount.
type Amount struct {
	Value  decimal.Decimal
	Raw    string
	Format AmountFormat
}

// ParseAmount trims raw and parses it as a decimal. Empty, non numeric,
// zero and negative values are rejected with ErrInvalidAmount.
func ParseAmount(raw string) (Amount, error) {
	a, err := parseAmount(raw)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}

	return a, nil
}

func parseAmount(raw string) (Amount, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Amount{}, errors.New("amount is empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, errors.New("not a number")
	}
	if !d.IsPositive() {
		return Amount{}, errors.New("must be greater than zero")
	}
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return Amount{}, fmt.Errorf("exponent %d out of range [-%d, %d]", exp, maxAmountExponent, maxAmountExponent)
	}
	if d.NumDigits() > maxAmountDigits {
		return Amount{}, fmt.Errorf("more than %d significant digits", maxAmountDigits)
	}

	return Amount{Value: d, Raw: s}, nil
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Format == AmountFormatString {
		return json.Marshal(a.Raw)
	}

	return []byte(a.Value.String()), nil
}

// UnmarshalJSON accepts either representation and records which one was read.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty amount")
	}

	format := AmountFormatNumber
	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		format = AmountFormatString
	}

	parsed, err := ParseAmount(raw)
	if err != nil {
		return err
	}
	parsed.Format = format
	*a = parsed

	return nil
}
