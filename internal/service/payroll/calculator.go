package payroll

import (
	"math"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/payroll"
)

// DeriveRates turns a fixed monthly salary into daily, hourly and overtime rates.
// A zero salary yields zero rates; a zero divisor in settings yields non-finite ones.
func DeriveRates(settings payroll.Settings, monthlySalary float64) payroll.Rates {
	daily := monthlySalary / settings.DaysInMonth
	hourly := daily / settings.BaseHours
	return payroll.Rates{
		Daily:    daily,
		Hourly:   hourly,
		Overtime: hourly * payroll.OvertimeMultiplier,
	}
}

// CalculateBreakdown splits the time between start and end, less the break,
// into regular hours (capped at BaseHours) and overtime. An end before start
// is read as a shift that crossed midnight.
func CalculateBreakdown(settings payroll.Settings, rates payroll.Rates, start, end time.Time, breakMinutes int) payroll.ShiftBreakdown {
	elapsed := end.Sub(start)
	if elapsed < 0 {
		elapsed += 24 * time.Hour
	}

	worked := elapsed.Hours() - float64(breakMinutes)/60

	regular := math.Max(0, math.Min(settings.BaseHours, worked))
	overtime := math.Max(0, worked-settings.BaseHours)

	return payroll.ShiftBreakdown{
		TotalHours:       regular + overtime,
		RegularHours:     regular,
		OvertimeHours:    overtime,
		RegularEarnings:  earnings(regular, rates.Hourly),
		OvertimeEarnings: earnings(overtime, rates.Overtime),
	}
}

// earnings keeps zero hours at zero pay even when the rate is non-finite.
func earnings(hours, rate float64) float64 {
	if hours == 0 {
		return 0
	}
	return hours * rate
}
