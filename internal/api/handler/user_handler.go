package handler

import (
	"net/http"

	"holiday_tracker/internal/api/middleware"
	"holiday_tracker/internal/app/service"
	"holiday_tracker/internal/common"
	"holiday_tracker/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(us *service.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(model.RoleAdmin, model.RoleReviewer))
		admin.Get("/", h.listUsers) // GET /api/v1/users
	})
}

func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipalFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	users, err := h.userService.List(r.Context(), principal)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, users)
}
