package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/go-chi/jwtauth/v5"
	"github.com/mycityradius/timeclock-backend-go/internal/config"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/attendance"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/payperiod"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/payrate"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/payroll"
	"github.com/mycityradius/timeclock-backend-go/internal/domain/profile"
	"github.com/mycityradius/timeclock-backend-go/internal/pkg/clock"
)

type PayrollServiceImpl struct {
	attendanceRepo attendance.Repository
	payRateRepo    payrate.Repository
	profileRepo    profile.Repository
	clock          clock.Clock
	org            config.OrgConfig
}

func NewPayrollService(
	attendanceRepo attendance.Repository,
	payRateRepo payrate.Repository,
	profileRepo profile.Repository,
	clk clock.Clock,
	org config.OrgConfig,
) payroll.Service {
	return &PayrollServiceImpl{
		attendanceRepo: attendanceRepo,
		payRateRepo:    payRateRepo,
		profileRepo:    profileRepo,
		clock:          clk,
		org:            org,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// resolveRate applies the override hierarchy: the user's individual rate row
// wins; otherwise the default for the user's first-assigned role; otherwise
// zero. Users with several roles are paid by the role assigned first.
func (s *PayrollServiceImpl) resolveRate(ctx context.Context, userID string) (float64, error) {
	userRate, err := s.payRateRepo.GetByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if userRate != nil {
		return userRate.HourlyRate, nil
	}

	roles, err := s.profileRepo.GetRoles(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(roles) == 0 {
		return 0, nil
	}

	roleRate, err := s.payRateRepo.GetByRole(ctx, roles[0])
	if err != nil {
		return 0, err
	}
	if roleRate == nil {
		return 0, nil
	}

	return roleRate.HourlyRate, nil
}

// MySummary implements payroll.Service.
func (s *PayrollServiceImpl) MySummary(ctx context.Context) (payroll.PeriodSummary, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return payroll.PeriodSummary{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return payroll.PeriodSummary{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	period := payperiod.Current(s.clock, s.org.Location)

	minutes, err := s.attendanceRepo.SumWorkedMinutes(ctx, userID, period.StartDate(), period.EndDate())
	if err != nil {
		return payroll.PeriodSummary{}, err
	}

	rate, err := s.resolveRate(ctx, userID)
	if err != nil {
		return payroll.PeriodSummary{}, err
	}

	hours := round2(minutes / 60)
	return payroll.PeriodSummary{
		PeriodStart: period.StartDate(),
		PeriodEnd:   period.EndDate(),
		Hours:       hours,
		HourlyRate:  rate,
		Pay:         round2(hours * rate),
		TargetHours: s.org.BiweeklyTargetHours,
	}, nil
}

// Report implements payroll.Service. A failure for one employee yields a zero
// row and a warning; the rest of the batch still comes back.
func (s *PayrollServiceImpl) Report(ctx context.Context) (payroll.Report, error) {
	period := payperiod.Current(s.clock, s.org.Location)

	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return payroll.Report{}, err
	}

	report := payroll.Report{
		PeriodStart: period.StartDate(),
		PeriodEnd:   period.EndDate(),
		Employees:   make([]payroll.EmployeePayroll, 0, len(profiles)),
	}

	for _, prof := range profiles {
		row := payroll.EmployeePayroll{
			UserID:   prof.UserID,
			FullName: prof.DisplayName(),
			Email:    prof.Email,
			Roles:    prof.Roles,
		}

		minutes, err := s.attendanceRepo.SumWorkedMinutes(ctx, prof.UserID, period.StartDate(), period.EndDate())
		if err != nil {
			slog.Warn("payroll row failed, reporting zero",
				slog.String("user_id", prof.UserID), slog.Any("error", err))
			report.Employees = append(report.Employees, row)
			continue
		}

		rate, err := s.resolveRate(ctx, prof.UserID)
		if err != nil {
			slog.Warn("payroll rate resolution failed, reporting zero",
				slog.String("user_id", prof.UserID), slog.Any("error", err))
			report.Employees = append(report.Employees, row)
			continue
		}

		row.Hours = round2(minutes / 60)
		row.HourlyRate = rate
		row.Pay = round2(row.Hours * rate)
		report.Employees = append(report.Employees, row)
		report.TotalPay += row.Pay
	}

	report.TotalPay = round2(report.TotalPay)
	return report, nil
}

// Range implements payroll.Service. DaysWorked counts only completed
// (checked-out) records; rows come back busiest first.
func (s *PayrollServiceImpl) Range(ctx context.Context, startDate string, endDate string) (payroll.RangeReport, error) {
	records, err := s.attendanceRepo.ListBetween(ctx, startDate, endDate)
	if err != nil {
		return payroll.RangeReport{}, err
	}

	type agg struct {
		minutes float64
		days    int
	}
	byUser := make(map[string]*agg)
	for _, rec := range records {
		a, ok := byUser[rec.UserID]
		if !ok {
			a = &agg{}
			byUser[rec.UserID] = a
		}
		a.minutes += rec.TotalWorkedMinutes
		if rec.Status == attendance.StatusCheckedOut {
			a.days++
		}
	}

	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return payroll.RangeReport{}, err
	}

	report := payroll.RangeReport{
		StartDate: startDate,
		EndDate:   endDate,
		Rows:      make([]payroll.RangeRow, 0, len(byUser)),
	}

	for _, prof := range profiles {
		a, ok := byUser[prof.UserID]
		if !ok {
			continue
		}

		row := payroll.RangeRow{
			UserID:     prof.UserID,
			FullName:   prof.DisplayName(),
			Email:      prof.Email,
			Roles:      prof.Roles,
			Hours:      round2(a.minutes / 60),
			DaysWorked: a.days,
		}
		if a.days > 0 {
			row.AvgHoursPerDay = round2(row.Hours / float64(a.days))
		}

		report.Rows = append(report.Rows, row)
		report.TotalHours += row.Hours
	}

	sort.Slice(report.Rows, func(i, j int) bool {
		return report.Rows[i].Hours > report.Rows[j].Hours
	})

	report.TotalHours = round2(report.TotalHours)
	report.ActiveWorkers = len(report.Rows)
	return report, nil
}
