package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"holiday_tracker/internal/api/middleware"
	"holiday_tracker/internal/app/service"
	"holiday_tracker/internal/common"
	"holiday_tracker/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type LedgerHandler struct {
	ledgerService *service.LedgerService
}

func NewLedgerHandler(ls *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ls}
}

func (h *LedgerHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(employee chi.Router) {
		employee.Use(middleware.RequireRole(model.RoleEmployee))
		employee.Post("/hours", h.submitHours)      // POST /api/v1/hours
		employee.Post("/holidays", h.submitHoliday) // POST /api/v1/holidays
	})

	r.Group(func(manager chi.Router) {
		manager.Use(middleware.RequireRole(model.RoleManager))
		manager.Post("/hours/{entryID}/approve", h.approveHours)
		manager.Post("/holidays/{requestID}/approve", h.approveHoliday)
	})
}

func (h *LedgerHandler) submitHours(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipalFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.SubmitHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	entry, err := h.ledgerService.SubmitHours(r.Context(), principal, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, entry)
}

func (h *LedgerHandler) submitHoliday(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipalFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.SubmitHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	request, err := h.ledgerService.SubmitHoliday(r.Context(), principal, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, request)
}

func (h *LedgerHandler) approveHours(w http.ResponseWriter, r *http.Request) {
	h.approve(w, r, "entryID", h.ledgerService.ApproveHours)
}

func (h *LedgerHandler) approveHoliday(w http.ResponseWriter, r *http.Request) {
	h.approve(w, r, "requestID", h.ledgerService.ApproveHoliday)
}

func (h *LedgerHandler) approve(w http.ResponseWriter, r *http.Request, param string, approveFn func(ctx context.Context, p model.Principal, id int64) error) {
	principal, ok := middleware.GetPrincipalFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid id: "+err.Error())
		return
	}

	if err := approveFn(r.Context(), principal, id); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "approved"})
}
