// Package money provides a fixed-point currency amount. Amounts are
// held as integer cents so repeated partial-payment accumulation never
// drifts the way float arithmetic would.
package money

import (
	"errors"
	"fmt"
	"math"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

type Money struct {
	cents int64
}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// FromFloat converts a decimal currency amount to cents, rounding
// half-away-from-zero. Gateway responses carry float amounts, so this
// is the only place a float crosses into the domain.
func FromFloat(amount float64) Money {
	return Money{cents: int64(math.Round(amount * 100))}
}

func NewNonNegative(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func Zero() Money {
	return Money{}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Float() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) GreaterOrEqual(other Money) bool {
	return m.cents >= other.cents
}

// Min returns the smaller of m and other. Used to clamp the paid
// amount at the work price.
func (m Money) Min(other Money) Money {
	if other.cents < m.cents {
		return other
	}
	return m
}

func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
