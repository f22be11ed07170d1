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

	"github.com/tabacalera-hn/attendance-backend/internal/config"
	"github.com/tabacalera-hn/attendance-backend/internal/domain/user"
	"github.com/tabacalera-hn/attendance-backend/internal/handler/http/middleware"
	"github.com/tabacalera-hn/attendance-backend/internal/handler/http/response"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Report     ReportHandler
	Dashboard  DashboardHandler
	User       UserHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.CORSOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Uploaded photos and QR badges
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			response.Success(w, map[string]string{"status": "ok"})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/verify", h.Auth.Verify)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Put("/update-profile", h.Auth.UpdateProfile)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)
				r.Get("/{id}/stats", h.Employee.Stats)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceRecord))
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
					r.Post("/{id}/photo", h.Employee.UploadPhoto)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/today", h.Attendance.Today)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceRecord))
					r.Post("/entry", h.Attendance.Entry)
					r.Post("/exit", h.Attendance.Exit)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/dashboard-daily", h.Report.DashboardDaily)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionReportsView))
					r.Get("/weekly", h.Report.Weekly)
					r.Get("/daily", h.Report.Daily)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/stats", h.Dashboard.Stats)
				r.Get("/attendance-today", h.Dashboard.AttendanceToday)
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionUsersManage))
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
				r.Put("/{id}", h.User.Update)
				r.Delete("/{id}", h.User.Delete)
			})
		})
	})

	return r
}
