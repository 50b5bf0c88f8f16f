package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/payrate"
	"github.com/mycityradius/timeclock-backend-go/internal/handler/http/response"
)

type PayRateHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	SetRoleRate(w http.ResponseWriter, r *http.Request)
	SetUserRate(w http.ResponseWriter, r *http.Request)
	ClearUserRate(w http.ResponseWriter, r *http.Request)
}

type payRateHandlerImpl struct {
	payRateService payrate.Service
}

func NewPayRateHandler(payRateService payrate.Service) PayRateHandler {
	return &payRateHandlerImpl{
		payRateService: payRateService,
	}
}

// List implements PayRateHandler.
func (h *payRateHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.payRateService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetRoleRate implements PayRateHandler.
func (h *payRateHandlerImpl) SetRoleRate(w http.ResponseWriter, r *http.Request) {
	var req payrate.SetRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payRateService.SetRoleRate(r.Context(), chi.URLParam(r, "role"), req.HourlyRate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role rate saved", result)
}

// SetUserRate implements PayRateHandler.
func (h *payRateHandlerImpl) SetUserRate(w http.ResponseWriter, r *http.Request) {
	var req payrate.SetRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payRateService.SetUserRate(r.Context(), chi.URLParam(r, "userID"), req.HourlyRate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Individual rate saved", result)
}

// ClearUserRate implements PayRateHandler.
func (h *payRateHandlerImpl) ClearUserRate(w http.ResponseWriter, r *http.Request) {
	if err := h.payRateService.ClearUserRate(r.Context(), chi.URLParam(r, "userID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Individual rate cleared", nil)
}
