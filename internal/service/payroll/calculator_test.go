package payroll

import (
	"math"
	"testing"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
)

func clock(t *testing.T, hhmm string) time.Time {
	t.Helper()
	c, err := time.Parse("15:04", hhmm)
	if err != nil {
		t.Fatalf("bad clock %q: %v", hhmm, err)
	}
	return time.Date(2025, 3, 10, c.Hour(), c.Minute(), 0, 0, time.UTC)
}

func TestDeriveRates(t *testing.T) {
	rates := DeriveRates(payroll.DefaultSettings(), 3000)

	assert.InDelta(t, 100.0, rates.Daily, 1e-9)
	assert.InDelta(t, 10.0, rates.Hourly, 1e-9)
	assert.InDelta(t, 15.0, rates.Overtime, 1e-9)
}

func TestDeriveRates_CustomSettings(t *testing.T) {
	rates := DeriveRates(payroll.Settings{DaysInMonth: 26, BaseHours: 8}, 5200)

	assert.InDelta(t, 200.0, rates.Daily, 1e-9)
	assert.InDelta(t, 25.0, rates.Hourly, 1e-9)
	assert.InDelta(t, 37.5, rates.Overtime, 1e-9)
}

func TestDeriveRates_ZeroSalary(t *testing.T) {
	rates := DeriveRates(payroll.DefaultSettings(), 0)
	assert.Zero(t, rates.Daily)
	assert.Zero(t, rates.Hourly)
	assert.Zero(t, rates.Overtime)

	degenerate := DeriveRates(payroll.Settings{}, 3000)
	assert.True(t, math.IsInf(degenerate.Daily, 1))
}

func TestCalculateBreakdown(t *testing.T) {
	settings := payroll.DefaultSettings()
	rates := DeriveRates(settings, 3000)

	tests := []struct {
		name             string
		start, end       string
		breakMinutes     int
		regularHours     float64
		overtimeHours    float64
		regularEarnings  float64
		overtimeEarnings float64
	}{
		{"exactly base hours", "08:00", "18:30", 30, 10, 0, 100, 0},
		{"one hour overtime", "08:00", "19:30", 30, 10, 1, 100, 15},
		{"hour and a half overtime", "08:00", "20:00", 30, 10, 1.5, 100, 22.5},
		{"equal start and end", "08:00", "08:00", 0, 0, 0, 0, 0},
		{"short shift", "08:00", "12:00", 0, 4, 0, 40, 0},
		{"break longer than shift", "09:00", "09:15", 60, 0, 0, 0, 0},
		{"break equal to shift", "09:00", "10:00", 60, 0, 0, 0, 0},
		{"crosses midnight", "22:00", "06:00", 0, 8, 0, 80, 0},
		{"long night shift", "18:00", "07:00", 60, 10, 2, 100, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := CalculateBreakdown(settings, rates, clock(t, tt.start), clock(t, tt.end), tt.breakMinutes)

			assert.InDelta(t, tt.regularHours, b.RegularHours, 1e-9)
			assert.InDelta(t, tt.overtimeHours, b.OvertimeHours, 1e-9)
			assert.InDelta(t, tt.regularHours+tt.overtimeHours, b.TotalHours, 1e-9)
			assert.InDelta(t, tt.regularEarnings, b.RegularEarnings, 1e-9)
			assert.InDelta(t, tt.overtimeEarnings, b.OvertimeEarnings, 1e-9)
			assert.InDelta(t, tt.regularEarnings+tt.overtimeEarnings, b.TotalEarnings(), 1e-9)
		})
	}
}

func TestCalculateBreakdown_NeverNegative(t *testing.T) {
	settings := payroll.DefaultSettings()
	rates := DeriveRates(settings, 4500)
	start := clock(t, "06:00")

	for minutes := 0; minutes < 24*60; minutes += 17 {
		for _, brk := range []int{0, 30, 90, 600, 2000} {
			end := start.Add(time.Duration(minutes) * time.Minute)
			b := CalculateBreakdown(settings, rates, start, end, brk)

			worked := float64(minutes)/60 - float64(brk)/60
			assert.GreaterOrEqual(t, b.RegularHours, 0.0)
			assert.GreaterOrEqual(t, b.OvertimeHours, 0.0)
			assert.GreaterOrEqual(t, b.RegularEarnings, 0.0)
			assert.GreaterOrEqual(t, b.OvertimeEarnings, 0.0)
			assert.InDelta(t, math.Max(0, worked), b.RegularHours+b.OvertimeHours, 1e-9)
			if worked <= settings.BaseHours {
				assert.Zero(t, b.OvertimeHours)
			}
		}
	}
}

func TestCalculateBreakdown_NoHoursWithInfiniteRates(t *testing.T) {
	settings := payroll.DefaultSettings()
	b := CalculateBreakdown(settings, payroll.Rates{Hourly: math.Inf(1), Overtime: math.Inf(1)}, clock(t, "09:00"), clock(t, "09:15"), 60)

	assert.Zero(t, b.TotalEarnings())
}
