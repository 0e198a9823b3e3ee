package http

import (
	"log/slog"
	"net/http"

	"github.com/fastep-work/fastep-backend-go/internal/handler/http/middleware"
	"github.com/fastep-work/fastep-backend-go/internal/handler/http/response"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Auth      AuthHandler
	Worker    WorkerHandler
	Shift     ShiftHandler
	Leave     LeaveHandler
	Advance   AdvanceHandler
	Payroll   PayrollHandler
	Dashboard DashboardHandler
	Feed      FeedHandler
	Upload    UploadHandler
}

type RouterOptions struct {
	AllowedOrigins []string
	Logger         *slog.Logger
	// UploadDir is served read-only under /uploads when set.
	UploadDir string
}

func NewRouter(opts RouterOptions, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if opts.UploadDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadDir))))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/me", h.Worker.Me)

			r.Route("/workers", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Worker.List)
				r.Post("/", h.Worker.Create)
				r.Get("/{id}", h.Worker.Get)
				r.Put("/{id}", h.Worker.Update)
				r.Post("/{id}/deactivate", h.Worker.Deactivate)
				r.Delete("/{id}", h.Worker.Delete)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Put("/me", h.Shift.LogMine)
				r.Get("/me", h.Shift.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Shift.List)
					r.Post("/import", h.Shift.Import)
					r.Post("/{id}/approve", h.Shift.Approve)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/me", h.Leave.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Leave.List)
					r.Post("/{id}/decide", h.Leave.Decide)
				})
			})

			r.Route("/advances", func(r chi.Router) {
				r.Post("/", h.Advance.Create)
				r.Get("/me", h.Advance.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Advance.List)
					r.Post("/{id}/decide", h.Advance.Decide)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/me", h.Payroll.MyStatement)
				r.Get("/breakdown", h.Payroll.Breakdown)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/workers/{id}", h.Payroll.WorkerStatement)
					r.Get("/statements", h.Payroll.ListStatements)
					r.Get("/sheet", h.Payroll.Sheet)
				})
			})

			r.With(middleware.AdminOnly).Get("/dashboard", h.Dashboard.Overview)

			r.Get("/posts", h.Feed.ListPosts)
			r.Post("/posts", h.Feed.CreatePost)
			r.Post("/uploads/photos", h.Upload.UploadPhoto)
			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", h.Feed.ListAnnouncements)
				r.With(middleware.AdminOnly).Post("/", h.Feed.CreateAnnouncement)
				r.With(middleware.AdminOnly).Delete("/{id}", h.Feed.DeleteAnnouncement)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
