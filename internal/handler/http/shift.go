package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fastep-work/fastep-backend-go/internal/domain/shift"
	"github.com/fastep-work/fastep-backend-go/internal/handler/http/response"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/validator"
)

type ShiftHandler interface {
	LogMine(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// LogMine implements ShiftHandler.
func (h *ShiftHandlerImpl) LogMine(w http.ResponseWriter, r *http.Request) {
	workerID, ok := currentWorkerID(w, r)
	if !ok {
		return
	}

	var req shift.LogShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("LogShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	logged, err := h.shiftService.LogShift(r.Context(), workerID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift saved", logged)
}

// ListMine implements ShiftHandler.
func (h *ShiftHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	workerID, ok := currentWorkerID(w, r)
	if !ok {
		return
	}

	shifts, err := h.shiftService.ListByWorker(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, shifts)
}

// List implements ShiftHandler.
func (h *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := shift.ShiftFilter{
		WorkerID: optionalQuery(r, "worker_id"),
		Status:   optionalQuery(r, "status"),
	}
	if raw := optionalQuery(r, "date"); raw != nil {
		date, ok := validator.IsValidDate(*raw)
		if !ok {
			response.ValidationError(w, map[string]string{"date": "must be YYYY-MM-DD"})
			return
		}
		filter.Date = &date
	}

	shifts, err := h.shiftService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, shifts)
}

// Import implements ShiftHandler.
func (h *ShiftHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req shift.ImportShiftsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ImportShifts decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.shiftService.Import(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shifts imported", result)
}

// Approve implements ShiftHandler.
func (h *ShiftHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "shift")
	if !ok {
		return
	}

	approved, err := h.shiftService.Approve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift approved", approved)
}
