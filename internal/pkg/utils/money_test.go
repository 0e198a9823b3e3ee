package utils

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{100, "100"},
		{33.333333, "33.33"},
		{14.999, "15"},
		{-65.126, "-65.13"},
		{math.NaN(), "0"},
		{math.Inf(1), "0"},
		{math.Inf(-1), "0"},
	}
	for _, c := range cases {
		got := Money(c.in)
		assert.True(t, decimal.RequireFromString(c.want).Equal(got), "Money(%v) = %s, want %s", c.in, got, c.want)
	}
}
