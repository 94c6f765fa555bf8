package airdrop

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		wantValue string
		wantRaw   string
		wantErr   string
	}{
		{name: "integer", raw: "100", wantValue: "100", wantRaw: "100"},
		{name: "decimal", raw: "0.000000000000000001", wantValue: "0.000000000000000001", wantRaw: "0.000000000000000001"},
		{name: "surrounding whitespace", raw: "  42.5 ", wantValue: "42.5", wantRaw: "42.5"},
		{name: "exponent", raw: "1e3", wantValue: "1000", wantRaw: "1e3"},
		{name: "beyond float precision", raw: "123456789012345678901234567890.123456789", wantValue: "123456789012345678901234567890.123456789", wantRaw: "123456789012345678901234567890.123456789"},
		{name: "empty", raw: "", wantErr: "amount is empty"},
		{name: "blank", raw: "   ", wantErr: "amount is empty"},
		{name: "not a number", raw: "abc", wantErr: "not a number"},
		{name: "hex", raw: "0x10", wantErr: "not a number"},
		{name: "zero", raw: "0", wantErr: "must be greater than zero"},
		{name: "zero decimal", raw: "0.000", wantErr: "must be greater than zero"},
		{name: "negative", raw: "-5", wantErr: "must be greater than zero"},
		{name: "tiny exponent", raw: "1e-200000000", wantErr: "exponent -200000000 out of range"},
		{name: "huge exponent", raw: "1e200000000", wantErr: "exponent 200000000 out of range"},
		{name: "exponent at bound", raw: "1e-1000", wantValue: "1e-1000", wantRaw: "1e-1000"},
		{name: "too many digits", raw: strings.Repeat("9", 1001), wantErr: "more than 1000 significant digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseAmount(tt.raw)
			if tt.wantErr != "" {
				require.ErrorIs(t, err, ErrInvalidAmount)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.wantValue).Equal(got.Value), "got %s", got.Value)
			assert.Equal(t, tt.wantRaw, got.Raw)
		})
	}
}

func TestAmount_MarshalJSON(t *testing.T) {
	t.Parallel()

	a, err := ParseAmount("100.50")
	require.NoError(t, err)

	a.Format = AmountFormatNumber
	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `100.5`, string(b))

	a.Format = AmountFormatString
	b, err = json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `"100.50"`, string(b))
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var a Amount
	require.NoError(t, json.Unmarshal([]byte(`"250.75"`), &a))
	assert.Equal(t, AmountFormatString, a.Format)
	assert.Equal(t, "250.75", a.Raw)

	var n Amount
	require.NoError(t, json.Unmarshal([]byte(`7`), &n))
	assert.Equal(t, AmountFormatNumber, n.Format)
	assert.True(t, decimal.NewFromInt(7).Equal(n.Value))

	var bad Amount
	require.ErrorIs(t, json.Unmarshal([]byte(`"0"`), &bad), ErrInvalidAmount)
}

func TestAmountFormat_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "number", AmountFormatNumber.String())
	assert.Equal(t, "string", AmountFormatString.String())
	assert.Equal(t, "AmountFormat(9)", AmountFormat(9).String())
}
