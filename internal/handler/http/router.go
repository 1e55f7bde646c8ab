package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/nexoptima/ems-backend-go/internal/config"
	"github.com/nexoptima/ems-backend-go/internal/domain/user"
	"github.com/nexoptima/ems-backend-go/internal/handler/http/middleware"
	"github.com/nexoptima/ems-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Task       TaskHandler
	WorkLog    WorkLogHandler
	Dashboard  DashboardHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ems-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/profile", h.Auth.Profile)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				// staff or the user themselves; enforced in the service
				r.Get("/{id}", h.User.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin))
					r.Get("/", h.User.List)
					r.Put("/{id}", h.User.Update)
					r.Delete("/{id}", h.User.Delete)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleHR))
					r.Get("/role/{role}", h.User.ListByRole)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Put("/check-out", h.Attendance.CheckOut)
				r.Get("/my", h.Attendance.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleHR))
					r.Get("/team", h.Attendance.ListForDay)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Apply)
				r.Get("/my", h.Leave.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleHR))
					r.Get("/pending", h.Leave.ListPending)
					r.Put("/{id}/status", h.Leave.SetStatus)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/my", h.Task.ListMine)
				r.Put("/{id}/status", h.Task.UpdateStatus)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleHR))
					r.Post("/", h.Task.Create)
					r.Get("/", h.Task.ListAll)
					r.Put("/{id}/inspect", h.Task.Inspect)
				})
			})

			r.Route("/worklogs", func(r chi.Router) {
				r.Post("/", h.WorkLog.Submit)
				r.Get("/my", h.WorkLog.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleHR))
					r.Get("/team", h.WorkLog.ListForTeam)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/stats", h.Dashboard.Stats)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleHR))
					r.Get("/analytics", h.Dashboard.Analytics)
				})
			})
		})
	})

	return r
}
