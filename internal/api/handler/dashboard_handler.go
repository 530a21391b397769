package handler

import (
	"net/http"

	"holiday_tracker/internal/api/middleware"
	"holiday_tracker/internal/app/service"
	"holiday_tracker/internal/common"

	"github.com/go-chi/chi/v5"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(ds *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.view) // GET /api/v1/dashboard
}

func (h *DashboardHandler) view(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipalFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	view, err := h.dashboardService.View(r.Context(), principal)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, view)
}
