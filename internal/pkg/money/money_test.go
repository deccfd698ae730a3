//go:build unit

package money_test

import (
	"testing"

	"agendapay/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFloat(t *testing.T) {
	cases := []struct {
		name  string
		in    float64
		cents int64
	}{
		{name: "whole amount", in: 100.0, cents: 10000},
		{name: "two decimals", in: 12.34, cents: 1234},
		{name: "sub-cent rounds", in: 99.999, cents: 10000},
		{name: "zero", in: 0, cents: 0},
		{name: "negative", in: -5.5, cents: -550},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.cents, money.FromFloat(tc.in).Cents())
		})
	}
}

func TestNewNonNegative(t *testing.T) {
	m, err := money.NewNonNegative(150)
	require.NoError(t, err)
	assert.Equal(t, int64(150), m.Cents())

	_, err = money.NewNonNegative(-1)
	assert.ErrorIs(t, err, money.ErrNegativeAmount)
}

func TestAddAndClamp(t *testing.T) {
	a := money.FromCents(4000)
	b := money.FromCents(6100)
	price := money.FromCents(10000)

	total := a.Add(b)
	assert.Equal(t, int64(10100), total.Cents())
	assert.True(t, total.GreaterOrEqual(price))
	assert.Equal(t, price.Cents(), total.Min(price).Cents())
}

func TestString(t *testing.T) {
	assert.Equal(t, "100.00", money.FromCents(10000).String())
	assert.Equal(t, "0.05", money.FromCents(5).String())
	assert.Equal(t, "-1.50", money.FromCents(-150).String())
}
