package http

import (
	"net/http"
	"strconv"

	"github.com/mycityradius/timeclock-backend-go/internal/domain/activity"
	"github.com/mycityradius/timeclock-backend-go/internal/handler/http/response"
)

type ActivityHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type activityHandlerImpl struct {
	activityService activity.Service
}

func NewActivityHandler(activityService activity.Service) ActivityHandler {
	return &activityHandlerImpl{
		activityService: activityService,
	}
}

// List implements ActivityHandler.
func (h *activityHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 500 {
			response.BadRequest(w, "Query parameter 'limit' must be a positive integer up to 500", nil)
			return
		}
		limit = parsed
	}

	result, err := h.activityService.List(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
