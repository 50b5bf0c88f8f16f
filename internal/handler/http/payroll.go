package http

import (
	"net/http"

	"github.com/mycityradius/timeclock-backend-go/internal/domain/payroll"
	"github.com/mycityradius/timeclock-backend-go/internal/handler/http/response"
	"github.com/mycityradius/timeclock-backend-go/internal/pkg/validator"
)

type PayrollHandler interface {
	MySummary(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
	Range(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// MySummary implements PayrollHandler.
func (h *payrollHandlerImpl) MySummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.MySummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Report implements PayrollHandler.
func (h *payrollHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.Report(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Range implements PayrollHandler.
func (h *payrollHandlerImpl) Range(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	details := map[string]string{}
	start, ok := validator.IsValidDate(startDate)
	if !ok {
		details["start_date"] = "must be YYYY-MM-DD"
	}
	end, ok := validator.IsValidDate(endDate)
	if !ok {
		details["end_date"] = "must be YYYY-MM-DD"
	}
	if len(details) > 0 {
		response.BadRequest(w, "Invalid date range", details)
		return
	}
	if end.Before(start) {
		response.BadRequest(w, "Invalid date range", map[string]string{"end_date": "must not be before start_date"})
		return
	}

	result, err := h.payrollService.Range(r.Context(), startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
