package fixtures

import (
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/advance"
	"github.com/fastep-work/fastep-backend-go/internal/domain/leave"
	"github.com/fastep-work/fastep-backend-go/internal/domain/shift"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/utils"
)

func strPtr(s string) *string { return &s }

// DemoPassword is the login password of every demo worker.
const DemoPassword = "fastep-demo"

// ==========================================
// DEMO WORKERS
// ==========================================

// DemoWorkers returns a small site crew with a mix of trades, salaries and document expiries.
func DemoWorkers(today time.Time) []worker.CreateWorkerRequest {
	date := func(days int) *string {
		d := today.AddDate(0, 0, days).Format(utils.DateLayout)
		return &d
	}

	return []worker.CreateWorkerRequest{
		{
			Name:          "Ahmed Khan",
			WorkerCode:    "FW-001",
			Trade:         strPtr("Mason"),
			MonthlySalary: 3000,
			Password:      DemoPassword,
			IqamaExpiry:   date(12),
		},
		{
			Name:           "Bilal Hussain",
			WorkerCode:     "FW-002",
			Trade:          strPtr("Electrician"),
			MonthlySalary:  4500,
			Password:       DemoPassword,
			PassportExpiry: date(-3),
		},
		{
			Name:          "Chandra Rao",
			WorkerCode:    "FW-003",
			Trade:         strPtr("Carpenter"),
			MonthlySalary: 3600,
			Password:      DemoPassword,
		},
		{
			Name:          "Dev Sharma",
			WorkerCode:    "FW-004",
			Trade:         strPtr("Helper"),
			MonthlySalary: 2400,
			Password:      DemoPassword,
		},
	}
}

// ==========================================
// DEMO ATTENDANCE
// ==========================================

// shiftPattern is start, end and break per weekday offset; overtime is deliberate.
var shiftPattern = []struct {
	start, end string
	breakMin   int
}{
	{"07:00", "17:00", 0},
	{"07:00", "19:30", 30},
	{"08:00", "18:00", 60},
	{"18:00", "04:00", 0},
	{"07:00", "21:00", 60},
}

// DemoShiftEntries returns the last days of attendance for every worker, ending yesterday.
func DemoShiftEntries(workerIDs []string, today time.Time, days int) []shift.ImportShiftEntry {
	entries := make([]shift.ImportShiftEntry, 0, len(workerIDs)*days)
	for i, workerID := range workerIDs {
		for d := 1; d <= days; d++ {
			p := shiftPattern[(i+d)%len(shiftPattern)]
			entries = append(entries, shift.ImportShiftEntry{
				WorkerID:     workerID,
				Date:         today.AddDate(0, 0, -d).Format(utils.DateLayout),
				StartTime:    p.start,
				EndTime:      p.end,
				BreakMinutes: p.breakMin,
			})
		}
	}
	return entries
}

// ==========================================
// DEMO LEAVES AND ADVANCES
// ==========================================

func DemoLeave(today time.Time) leave.CreateLeaveRequest {
	return leave.CreateLeaveRequest{
		Date:   today.AddDate(0, 0, 2).Format(utils.DateLayout),
		Reason: "Family visit",
	}
}

func DemoAdvance() advance.CreateAdvanceRequest {
	return advance.CreateAdvanceRequest{
		Amount: 250,
		Reason: "Rent",
	}
}
