package payroll

import (
	"fmt"
	"io"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/payroll"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const salarySheetName = "Salary Sheet"

var salarySheetHeader = []interface{}{
	"Worker Code", "Worker Name", "Daily Rate", "Approved Shifts",
	"Regular Hours", "Overtime Hours", "Regular Earnings", "Overtime Earnings",
	"Rejected Leaves", "Leave Deduction", "Advance Deduction", "Final Pay",
}

// WriteSalarySheet renders statements as an xlsx workbook, one row per worker
// followed by a totals row.
func WriteSalarySheet(w io.Writer, statements []payroll.Statement, generatedOn time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", salarySheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetCellValue(salarySheetName, "A1", "Generated on "+utils.FormatDate(generatedOn)); err != nil {
		return err
	}
	if err := f.SetSheetRow(salarySheetName, "A2", &salarySheetHeader); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetCellStyle(salarySheetName, "A2", "L2", headerStyle); err != nil {
		return err
	}

	var regular, overtime, leave, advance, final float64
	row := 3
	for _, stmt := range statements {
		code := ""
		if stmt.WorkerCode != nil {
			code = *stmt.WorkerCode
		}

		values := []interface{}{
			code,
			stmt.WorkerName,
			amount(stmt.Rates.Daily),
			stmt.ApprovedShiftCount,
			amount(stmt.RegularHours),
			amount(stmt.OvertimeHours),
			amount(stmt.RegularEarnings),
			amount(stmt.OvertimeEarnings),
			stmt.RejectedLeaveCount,
			amount(stmt.LeaveDeduction),
			amount(stmt.AdvanceDeduction),
			amount(stmt.FinalPay),
		}
		if err := setRow(f, row, values); err != nil {
			return err
		}

		regular += stmt.RegularEarnings
		overtime += stmt.OvertimeEarnings
		leave += stmt.LeaveDeduction
		advance += stmt.AdvanceDeduction
		final += stmt.FinalPay
		row++
	}

	totals := []interface{}{
		"TOTAL", "", "", "", "", "",
		amount(regular), amount(overtime), "",
		amount(leave), amount(advance), amount(final),
	}
	if err := setRow(f, row, totals); err != nil {
		return err
	}
	totalsStart, _ := excelize.CoordinatesToCellName(1, row)
	totalsEnd, _ := excelize.CoordinatesToCellName(len(salarySheetHeader), row)
	if err := f.SetCellStyle(salarySheetName, totalsStart, totalsEnd, headerStyle); err != nil {
		return err
	}

	if err := f.SetColWidth(salarySheetName, "A", "B", 22); err != nil {
		return err
	}
	if err := f.SetColWidth(salarySheetName, "C", "L", 16); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write salary sheet: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(salarySheetName, cell, &values)
}

func amount(v float64) float64 {
	return utils.Money(v).InexactFloat64()
}
