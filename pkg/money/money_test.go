package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dot decimal", "10.50", "10.5"},
		{"comma decimal", "10,50", "10.5"},
		{"integer", "50", "50"},
		{"currency prefix", "R$ 120,50", "120.5"},
		{"dollar prefix", "$99.99", "99.99"},
		{"thousands separator", "1,234.56", "1234.56"},
		{"rounds to two places", "3.999", "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDecimal(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseDecimal("abc")
		assert.Error(t, err)
	})
}

func TestMoney_Split(t *testing.T) {
	total := New(10000, BRL) // R$ 100.00

	parts, err := total.Split(3)
	require.NoError(t, err)
	require.Len(t, parts, 3)

	// Remainder cent goes to the first part.
	assert.Equal(t, int64(3334), parts[0].Amount())
	assert.Equal(t, int64(3333), parts[1].Amount())
	assert.Equal(t, int64(3333), parts[2].Amount())

	sum := Zero(BRL)
	for _, p := range parts {
		sum, err = sum.Add(p)
		require.NoError(t, err)
	}
	assert.True(t, sum.Equals(total))
}

func TestMoney_Split_Invalid(t *testing.T) {
	_, err := New(100, USD).Split(0)
	assert.Error(t, err)
}

func TestNewFromDecimal(t *testing.T) {
	d := decimal.RequireFromString("50.00")
	m := NewFromDecimal(d, USD)
	assert.Equal(t, int64(5000), m.Amount())
	assert.Equal(t, USD, m.Currency())
	assert.True(t, m.IsPositive())
	assert.Equal(t, "50", m.ToDecimal().String())
}
