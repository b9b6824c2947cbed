package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/redmonkez12/adventure-api/internal/auth"
	"github.com/redmonkez12/adventure-api/internal/config"
	"github.com/redmonkez12/adventure-api/internal/httputil"
	"github.com/redmonkez12/adventure-api/internal/logging"
	"github.com/redmonkez12/adventure-api/internal/ratelimit"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	cfg *config.Config,
	authHandler *auth.Handler,
	authMiddleware *auth.Middleware,
	healthHandler *HealthHandler,
	limiter *ratelimit.Limiter,
	logger *logging.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.TrustedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300, // 5 minutes
		}))
	}

	// Global middleware
	r.Use(SecurityHeaders)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.Compress(5))

	// Public routes
	r.Get("/", handleIndex)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/db/healthz", healthHandler.DBHealthz)

	// Auth routes, all behind the rate limiter before any other processing
	r.Route("/auth", func(r chi.Router) {
		r.Use(ratelimit.Middleware(limiter))

		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Get("/me", authHandler.Me)
		})
	})

	return r
}

// handleIndex lists the available endpoints
func handleIndex(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]any{
		"service": "adventure-api",
		"endpoints": []string{
			"GET /",
			"GET /healthz",
			"GET /db/healthz",
			"POST /auth/register",
			"POST /auth/login",
			"GET /auth/me",
		},
	}, http.StatusOK)
}
