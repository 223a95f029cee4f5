package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/zeitgrid/worktime-backend-go/internal/handler/http/middleware"
	"github.com/zeitgrid/worktime-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	env string,
	logLevel slog.Level,
	userHandler UserHandler,
	employeeHandler EmployeeHandler,
	timeEntryHandler TimeEntryHandler,
	absenceEntryHandler AbsenceEntryHandler,
	overviewHandler OverviewHandler,
	settingsHandler SettingsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worktime-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel,
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

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Get("/{id}", userHandler.GetByID)

				// Superuser only
				r.Group(func(r chi.Router) {
					r.Use(middleware.SuperuserOnly)
					r.Delete("/{id}", userHandler.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{user_id}", employeeHandler.GetProfile)

				r.Group(func(r chi.Router) {
					r.Use(middleware.SuperuserOnly)
					r.Patch("/{user_id}", employeeHandler.UpdateProfile)
				})
			})

			r.Route("/time-entries", func(r chi.Router) {
				r.Get("/{user_id}", timeEntryHandler.ListForDay)
				r.Post("/", timeEntryHandler.Create)
				r.Delete("/{id}", timeEntryHandler.Delete)
			})

			r.Route("/absence-entries", func(r chi.Router) {
				r.Get("/{user_id}", absenceEntryHandler.ListForDay)
				r.Post("/", absenceEntryHandler.Create)
				r.Delete("/{id}", absenceEntryHandler.Delete)
			})

			r.Route("/overview", func(r chi.Router) {
				r.Get("/{user_id}", overviewHandler.GetOverview)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/server-store", settingsHandler.GetServerStore)
			})
		})
	})
	return r
}
