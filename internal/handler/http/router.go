package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/mycityradius/timeclock-backend-go/internal/config"
	"github.com/mycityradius/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/mycityradius/timeclock-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	payRateHandler PayRateHandler,
	profileHandler ProfileHandler,
	activityHandler ActivityHandler,
	settingsHandler SettingsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/pause", attendanceHandler.Pause)
				r.Post("/resume", attendanceHandler.Resume)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/today", attendanceHandler.Today)
				r.Get("/me", attendanceHandler.History)
				r.Get("/summary", attendanceHandler.Summary)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", attendanceHandler.ListByDate)
					r.Put("/{id}", attendanceHandler.Correct)
					r.Delete("/{id}", attendanceHandler.Delete)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/me", payrollHandler.MySummary)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/report", payrollHandler.Report)
					r.Get("/range", payrollHandler.Range)
				})
			})

			// Admin only
			r.Route("/pay-rates", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", payRateHandler.List)
				r.Put("/roles/{role}", payRateHandler.SetRoleRate)
				r.Put("/users/{userID}", payRateHandler.SetUserRate)
				r.Delete("/users/{userID}", payRateHandler.ClearUserRate)
			})

			// Admin only
			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", profileHandler.List)
				r.Post("/{userID}/roles", profileHandler.AssignRole)
				r.Delete("/{userID}/roles/{role}", profileHandler.RemoveRole)
				r.Put("/{userID}/active", profileHandler.SetActive)
			})

			// Admin only
			r.Route("/activity", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", activityHandler.List)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", settingsHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/refresh", settingsHandler.Refresh)
					r.Put("/{key}", settingsHandler.Update)
				})
			})
		})
	})
	return r
}
