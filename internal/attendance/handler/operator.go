package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rollcall/internal/attendance/operator"
	"rollcall/internal/transport/http/shared"
	dErrors "rollcall/pkg/domain-errors"
)

func (h *Handler) handlePendingList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	scheduleID := chi.URLParam(r, "scheduleID")
	pending, err := h.operator.FetchPendingAttendances(ctx, scheduleID)
	if err != nil {
		h.logError(ctx, "failed to fetch pending attendances", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toPendingListResponse(pending))
}

func (h *Handler) handleChallengerHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	challengerID := chi.URLParam(r, "challengerID")
	items, err := h.operator.FetchChallengerHistory(ctx, challengerID)
	if err != nil {
		h.logError(ctx, "failed to fetch challenger history", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toHistoryResponse(items))
}

func (h *Handler) handleSessionAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "sessionID")
	scheduleID := r.URL.Query().Get("scheduleId")
	if scheduleID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "scheduleId query parameter is required"))
		return
	}
	aggregate, err := h.operator.SessionAttendance(ctx, sessionID, scheduleID)
	if err != nil {
		h.logError(ctx, "failed to build session attendance view", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toAggregateResponse(aggregate))
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.resolveOne(w, r, true)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.resolveOne(w, r, false)
}

func (h *Handler) resolveOne(w http.ResponseWriter, r *http.Request, approve bool) {
	ctx := r.Context()
	recordID := chi.URLParam(r, "recordID")

	var err error
	if approve {
		err = h.operator.ApproveAttendance(ctx, recordID)
	} else {
		err = h.operator.RejectAttendance(ctx, recordID)
	}
	if err != nil {
		h.logError(ctx, "failed to resolve pending record", err)
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleResolveBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req resolveBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if len(req.Decisions) == 0 {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "decisions must not be empty"))
		return
	}

	decisions := make([]operator.Decision, 0, len(req.Decisions))
	for _, d := range req.Decisions {
		if d.RecordID == "" {
			shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "recordId is required for every decision"))
			return
		}
		decisions = append(decisions, operator.Decision{RecordID: d.RecordID, Approve: d.Approve})
	}

	results := h.operator.ResolveBatch(ctx, decisions)
	shared.WriteJSON(w, http.StatusMultiStatus, toBatchResponse(results))
}
