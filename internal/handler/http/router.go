package http

import (
	"log/slog"
	"os"

	"github.com/dharunlider/erp-shift-backend-go/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	shiftHandler ShiftHandler,
	calendarHandler CalendarHandler,
	masterHandler MasterHandler,
	holidayHandler HolidayHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "erp-shift-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
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

		r.Route("/shifts", func(r chi.Router) {
			r.Route("/categories", func(r chi.Router) {
				r.Get("/", shiftHandler.ListCategories)
				r.Post("/", shiftHandler.CreateCategory)
				r.Delete("/{id}", shiftHandler.DeleteCategory)
			})

			r.Route("/assignments", func(r chi.Router) {
				r.Post("/", shiftHandler.CreateAssignment)
				r.Get("/{id}", shiftHandler.GetAssignment)
				r.Put("/{id}", shiftHandler.UpdateAssignment)
				r.Delete("/{id}", shiftHandler.DeleteAssignment)
			})
		})

		r.Route("/staff", func(r chi.Router) {
			r.Get("/", masterHandler.ListStaff)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", masterHandler.GetStaff)
				r.Get("/assignments", shiftHandler.ListStaffAssignments)
				r.Get("/calendar", calendarHandler.GetStaffCalendar)
				r.Get("/shift", calendarHandler.ResolveShift)
			})
		})

		r.Get("/departments", masterHandler.ListDepartments)
		r.Get("/roles", masterHandler.ListRoles)

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", holidayHandler.ListHolidays)
			r.Post("/", holidayHandler.CreateHoliday)
			r.Delete("/{id}", holidayHandler.DeleteHoliday)
		})
	})

	return r
}
