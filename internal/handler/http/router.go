package http

import (
	"log/slog"
	"os"

	"github.com/crewfield/crewfield-backend-go/internal/config"
	"github.com/crewfield/crewfield-backend-go/internal/handler/http/middleware"
	"github.com/crewfield/crewfield-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Schedule  ScheduleHandler
	TimeEntry TimeEntryHandler
	Alert     AlertHandler
	Site      SiteHandler
	Crew      CrewHandler
	Company   CompanyHandler
	Report    ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "crewfield"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", h.Schedule.List)
				r.Get("/{id}", h.Schedule.Get)

				// Managers own the calendar
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Schedule.Create)
					r.Put("/{id}", h.Schedule.Update)
					r.Delete("/{id}", h.Schedule.Cancel)
				})
			})

			r.Route("/time-entries", func(r chi.Router) {
				r.Post("/clock-in", h.TimeEntry.ClockIn)
				r.Post("/{id}/clock-out", h.TimeEntry.ClockOut)
				r.Get("/my", h.TimeEntry.GetMyTimeEntries)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", h.TimeEntry.List)
				})
			})

			r.Route("/alerts", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/", h.Alert.List)
				r.Get("/unread-count", h.Alert.UnreadCount)
				r.Put("/read-all", h.Alert.MarkAllRead)
				r.Put("/{id}/read", h.Alert.MarkRead)
			})

			r.Route("/sites", func(r chi.Router) {
				r.Get("/", h.Site.List)
				r.Get("/{id}", h.Site.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Site.Create)
					r.Put("/{id}", h.Site.Update)
					r.Delete("/{id}", h.Site.Deactivate)
				})
			})

			r.Route("/crew-members", func(r chi.Router) {
				r.Get("/", h.Crew.List)
				r.Get("/{id}", h.Crew.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Crew.Create)
					r.Put("/{id}", h.Crew.Update)
					r.Delete("/{id}", h.Crew.Deactivate)
				})
			})

			r.Route("/company", func(r chi.Router) {
				r.Get("/", h.Company.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireOwner)
					r.Put("/", h.Company.Update)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/labor", h.Report.LaborReport)
			})
		})
	})

	return r
}
