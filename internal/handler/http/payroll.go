package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/payroll"
	"github.com/fastep-work/fastep-backend-go/internal/handler/http/response"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PayrollHandler interface {
	MyStatement(w http.ResponseWriter, r *http.Request)
	WorkerStatement(w http.ResponseWriter, r *http.Request)
	ListStatements(w http.ResponseWriter, r *http.Request)
	Sheet(w http.ResponseWriter, r *http.Request)
	Breakdown(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
	now            func() time.Time
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService, now: time.Now}
}

// MyStatement implements PayrollHandler.
func (h *PayrollHandlerImpl) MyStatement(w http.ResponseWriter, r *http.Request) {
	workerID, ok := currentWorkerID(w, r)
	if !ok {
		return
	}

	statement, err := h.payrollService.GetStatement(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, statement)
}

// WorkerStatement implements PayrollHandler.
func (h *PayrollHandlerImpl) WorkerStatement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "worker")
	if !ok {
		return
	}

	statement, err := h.payrollService.GetStatement(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, statement)
}

// ListStatements implements PayrollHandler.
func (h *PayrollHandlerImpl) ListStatements(w http.ResponseWriter, r *http.Request) {
	filter, ok := statementFilter(w, r)
	if !ok {
		return
	}

	statements, err := h.payrollService.ListStatements(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, statements)
}

// Sheet implements PayrollHandler. The workbook is buffered so failures still get a JSON error.
func (h *PayrollHandlerImpl) Sheet(w http.ResponseWriter, r *http.Request) {
	filter, ok := statementFilter(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.payrollService.ExportSheet(r.Context(), &buf, filter); err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("salary-sheet-%s.xlsx", h.now().Format(time.DateOnly))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// Breakdown implements PayrollHandler.
func (h *PayrollHandlerImpl) Breakdown(w http.ResponseWriter, r *http.Request) {
	workerID, ok := currentWorkerID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	req := payroll.BreakdownPreviewRequest{
		Date:      q.Get("date"),
		StartTime: q.Get("start_time"),
		EndTime:   q.Get("end_time"),
	}
	if raw := q.Get("break_minutes"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			response.ValidationError(w, map[string]string{"break_minutes": "must be a whole number of minutes"})
			return
		}
		req.BreakMinutes = minutes
	}

	breakdown, err := h.payrollService.PreviewBreakdown(r.Context(), workerID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, breakdown)
}

func statementFilter(w http.ResponseWriter, r *http.Request) (payroll.StatementFilter, bool) {
	q := r.URL.Query()
	filter := payroll.StatementFilter{ActiveOnly: q.Get("active") == "true"}
	for _, id := range q["worker_id"] {
		if !validator.IsValidUUID(id) {
			response.ValidationError(w, map[string]string{"worker_id": "must be a valid worker ID"})
			return payroll.StatementFilter{}, false
		}
		filter.WorkerIDs = append(filter.WorkerIDs, id)
	}
	return filter, true
}
