package payroll

import (
	"context"
	"io"
)

type PayrollService interface {
	Settings() Settings
	PreviewBreakdown(ctx context.Context, workerID string, req BreakdownPreviewRequest) (BreakdownResponse, error)
	GetStatement(ctx context.Context, workerID string) (StatementResponse, error)
	ListStatements(ctx context.Context, filter StatementFilter) (StatementListResponse, error)
	// ExportSheet writes the salary sheet for the filtered workers as an xlsx workbook.
	ExportSheet(ctx context.Context, w io.Writer, filter StatementFilter) error
}
