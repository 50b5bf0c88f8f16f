package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/profile"
	"github.com/mycityradius/timeclock-backend-go/internal/handler/http/response"
)

type ProfileHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	AssignRole(w http.ResponseWriter, r *http.Request)
	RemoveRole(w http.ResponseWriter, r *http.Request)
	SetActive(w http.ResponseWriter, r *http.Request)
}

type profileHandlerImpl struct {
	profileService profile.Service
}

func NewProfileHandler(profileService profile.Service) ProfileHandler {
	return &profileHandlerImpl{
		profileService: profileService,
	}
}

// List implements ProfileHandler.
func (h *profileHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.profileService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AssignRole implements ProfileHandler.
func (h *profileHandlerImpl) AssignRole(w http.ResponseWriter, r *http.Request) {
	var req profile.AssignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.profileService.AssignRole(r.Context(), chi.URLParam(r, "userID"), req.Role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role assigned", result)
}

// RemoveRole implements ProfileHandler.
func (h *profileHandlerImpl) RemoveRole(w http.ResponseWriter, r *http.Request) {
	result, err := h.profileService.RemoveRole(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "role"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role removed", result)
}

// SetActive implements ProfileHandler.
func (h *profileHandlerImpl) SetActive(w http.ResponseWriter, r *http.Request) {
	var req profile.SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.profileService.SetActive(r.Context(), chi.URLParam(r, "userID"), req.IsActive)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee status updated", result)
}
