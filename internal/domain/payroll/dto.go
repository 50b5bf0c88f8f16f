package payroll

import (
	"context"
)

// PeriodSummary is one employee's pay figures for the current biweekly
// period: hours from the persisted worked-minute snapshots, rate from the
// override hierarchy, pay as their product.
type PeriodSummary struct {
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	Hours       float64 `json:"hours"`
	HourlyRate  float64 `json:"hourly_rate"`
	Pay         float64 `json:"pay"`
	TargetHours float64 `json:"target_hours"`
}

// EmployeePayroll is one row of the all-employee payroll report.
type EmployeePayroll struct {
	UserID     string   `json:"user_id"`
	FullName   string   `json:"full_name"`
	Email      string   `json:"email"`
	Roles      []string `json:"roles"`
	Hours      float64  `json:"hours"`
	HourlyRate float64  `json:"hourly_rate"`
	Pay        float64  `json:"pay"`
}

type Report struct {
	PeriodStart string            `json:"period_start"`
	PeriodEnd   string            `json:"period_end"`
	Employees   []EmployeePayroll `json:"employees"`
	TotalPay    float64           `json:"total_pay"`
}

// RangeRow is one employee's figures for an arbitrary date-range report.
// DaysWorked counts only completed (checked-out) records.
type RangeRow struct {
	UserID         string   `json:"user_id"`
	FullName       string   `json:"full_name"`
	Email          string   `json:"email"`
	Roles          []string `json:"roles"`
	Hours          float64  `json:"hours"`
	DaysWorked     int      `json:"days_worked"`
	AvgHoursPerDay float64  `json:"avg_hours_per_day"`
}

type RangeReport struct {
	StartDate     string     `json:"start_date"`
	EndDate       string     `json:"end_date"`
	TotalHours    float64    `json:"total_hours"`
	ActiveWorkers int        `json:"active_workers"`
	Rows          []RangeRow `json:"rows"`
}

type Service interface {
	// MySummary computes the authenticated user's current-period summary.
	MySummary(ctx context.Context) (PeriodSummary, error)

	// Report computes the all-employee payroll for the current period. A
	// failure for one employee yields a zero row; the batch never aborts.
	Report(ctx context.Context) (Report, error)

	// Range computes per-employee hours over [startDate, endDate].
	Range(ctx context.Context, startDate string, endDate string) (RangeReport, error)
}
