package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOf_UsesLocation(t *testing.T) {
	riyadh := time.FixedZone("AST", 3*60*60)
	// 22:30 UTC is already the next day in Riyadh.
	instant := time.Date(2024, 3, 10, 22, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), DateOf(instant, riyadh))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), DateOf(instant, time.UTC))
}

func TestAtClock(t *testing.T) {
	date, err := ParseDate("2024-03-10")
	require.NoError(t, err)

	got, err := AtClock(date, "18:30", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC), got)

	_, err = AtClock(date, "25:00", time.UTC)
	assert.Error(t, err)
	_, err = AtClock(date, "8am", time.UTC)
	assert.Error(t, err)
}

func TestSameDate(t *testing.T) {
	a := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	c := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(a, c))
}

func TestFormatDatePtr(t *testing.T) {
	assert.Nil(t, FormatDatePtr(nil))

	d := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	got := FormatDatePtr(&d)
	require.NotNil(t, got)
	assert.Equal(t, "2024-01-05", *got)
}
