package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"campus-backend/internal/handlers"
	"campus-backend/internal/middleware"
)

func New(
	jwtAuth *middleware.JWTAuth,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	courseHandler *handlers.CourseHandler,
	attendanceHandler *handlers.AttendanceHandler,
	eventHandler *handlers.EventHandler,
	studyGroupHandler *handlers.StudyGroupHandler,
	chatHandler *handlers.ChatHandler,
	dashboardHandler *handlers.DashboardHandler,
	corsOrigins string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(corsOrigins))

	// Auth rate limiter (10 req/min per IP)
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		// Liveness
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"Campus Management Platform API","status":"running"}`))
		})

		// ──── Auth Routes (public) ────
		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// ──── User Routes ────
		r.Group(func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/users/me", userHandler.Me)
		})

		// ──── Course Routes ────
		r.Route("/courses", func(r chi.Router) {
			r.Get("/", courseHandler.List)      // Public
			r.Get("/{id}/qr", courseHandler.QR) // Public

			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Post("/", courseHandler.Create)
			})
		})

		// ──── Attendance Routes ────
		r.Route("/attendance", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Post("/", attendanceHandler.Mark)
			r.Get("/my", attendanceHandler.My)
		})

		// ──── Event Routes ────
		r.Route("/events", func(r chi.Router) {
			r.Get("/", eventHandler.List) // Public

			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Post("/", eventHandler.Create)
				r.Post("/{id}/register", eventHandler.Register)
			})
		})

		// ──── Study Group Routes ────
		r.Route("/study-groups", func(r chi.Router) {
			r.Get("/", studyGroupHandler.List) // Public

			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Post("/", studyGroupHandler.Create)
				r.Post("/{id}/join", studyGroupHandler.Join)
			})
		})

		// ──── Chat Routes ────
		r.Route("/chat", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Post("/", chatHandler.Chat)
			r.Get("/history", chatHandler.History)
		})

		// ──── Dashboard Routes ────
		r.Route("/dashboard", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/stats", dashboardHandler.Stats)
		})
	})

	return r
}
