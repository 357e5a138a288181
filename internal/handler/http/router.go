package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/tracklight/workhours-backend-go/internal/handler/http/middleware"
	"github.com/tracklight/workhours-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	workHoursHandler WorkHoursHandler,
	reportHandler ReportHandler,
	timeOffHandler TimeOffHandler,
	holidayHandler HolidayHandler,
	workConfigHandler WorkConfigHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workhours-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Everything requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/entries", func(r chi.Router) {
				r.Get("/", workHoursHandler.ListMyEntries)
				r.Post("/", workHoursHandler.CreateEntry)
				r.Put("/{id}", workHoursHandler.UpdateEntry)
				r.Delete("/{id}", workHoursHandler.DeleteEntry)

				r.Route("/defaults", func(r chi.Router) {
					r.Get("/", workHoursHandler.GetMyDefaults)
					r.Put("/", workHoursHandler.UpdateMyDefaults)
				})

				r.Post("/prefill", workHoursHandler.Prefill)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/summary", reportHandler.GetSummary)
				r.Get("/export.csv", reportHandler.ExportSummaryCSV)
			})

			r.Route("/timeoff", func(r chi.Router) {
				r.Get("/", timeOffHandler.ListMy)
				r.Post("/", timeOffHandler.Submit)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/{id}/approve", timeOffHandler.Approve)
					r.Post("/{id}/reject", timeOffHandler.Reject)
				})
			})

			r.Route("/config", func(r chi.Router) {
				r.Get("/my", workConfigHandler.GetMyConfig)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/roles", workConfigHandler.ListRoleConfigs)
					r.Put("/roles", workConfigHandler.UpsertRoleConfig)
					r.Put("/overrides/{userID}", workConfigHandler.UpsertUserOverride)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/{calendarID}", holidayHandler.ListByCalendar)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", holidayHandler.Create)
					r.Delete("/{id}", holidayHandler.Delete)
				})
			})
		})
	})
	return r
}
