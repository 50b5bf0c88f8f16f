package main

import (
	"fmt"
	"net/http"

	"github.com/mycityradius/timeclock-backend-go/internal/config"
	appHTTP "github.com/mycityradius/timeclock-backend-go/internal/handler/http"
	"github.com/mycityradius/timeclock-backend-go/internal/pkg/clock"
	"github.com/mycityradius/timeclock-backend-go/internal/pkg/database"
	"github.com/mycityradius/timeclock-backend-go/internal/pkg/jwt"
	"github.com/mycityradius/timeclock-backend-go/internal/repository/postgresql"
	activityService "github.com/mycityradius/timeclock-backend-go/internal/service/activity"
	attendanceService "github.com/mycityradius/timeclock-backend-go/internal/service/attendance"
	payrateService "github.com/mycityradius/timeclock-backend-go/internal/service/payrate"
	payrollService "github.com/mycityradius/timeclock-backend-go/internal/service/payroll"
	profileService "github.com/mycityradius/timeclock-backend-go/internal/service/profile"
	settingsService "github.com/mycityradius/timeclock-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payRateRepo := postgresql.NewPayRateRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	clk := clock.System()

	activitySvc := activityService.NewActivityService(activityRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, activitySvc, clk, cfg.Org)
	payrollSvc := payrollService.NewPayrollService(attendanceRepo, payRateRepo, profileRepo, clk, cfg.Org)
	payRateSvc := payrateService.NewPayRateService(db, payRateRepo, activitySvc)
	profileSvc := profileService.NewProfileService(profileRepo, activitySvc)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	payRateHandler := appHTTP.NewPayRateHandler(payRateSvc)
	profileHandler := appHTTP.NewProfileHandler(profileSvc)
	activityHandler := appHTTP.NewActivityHandler(activitySvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		attendanceHandler,
		payrollHandler,
		payRateHandler,
		profileHandler,
		activityHandler,
		settingsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
