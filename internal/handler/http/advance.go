package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fastep-work/fastep-backend-go/internal/domain/advance"
	"github.com/fastep-work/fastep-backend-go/internal/handler/http/response"
)

type AdvanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type AdvanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &AdvanceHandlerImpl{advanceService: advanceService}
}

// Create implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	workerID, ok := currentWorkerID(w, r)
	if !ok {
		return
	}

	var req advance.CreateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAdvance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.advanceService.Request(r.Context(), workerID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Advance request submitted", created)
}

// ListMine implements AdvanceHandler.
func (h *AdvanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	workerID, ok := currentWorkerID(w, r)
	if !ok {
		return
	}

	advances, err := h.advanceService.ListByWorker(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, advances)
}

// List implements AdvanceHandler.
func (h *AdvanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	advances, err := h.advanceService.List(r.Context(), advance.AdvanceFilter{
		WorkerID: optionalQuery(r, "worker_id"),
		Status:   optionalQuery(r, "status"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, advances)
}

// Decide implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "advance")
	if !ok {
		return
	}

	var req advance.DecideAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("DecideAdvance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	decided, err := h.advanceService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Advance request "+decided.Status, decided)
}
