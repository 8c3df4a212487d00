package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"github.com/derak-isaack/KenyaRe-Hackathon/internal/config"
	"github.com/derak-isaack/KenyaRe-Hackathon/internal/logger"
)

// NewRouter wires the middleware stack and all routes.
func NewRouter(handler *AnalysisHandler, cfg *config.AppConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Use(rateLimitMiddleware(rate.NewLimiter(rate.Every(cfg.RateLimitInterval), cfg.RateLimitBurst)))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", handler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/claims", func(r chi.Router) {
			r.Post("/analyze", handler.Analyze)
			r.Post("/analyze-batch", handler.AnalyzeBatch)
		})
		r.Route("/reports", func(r chi.Router) {
			r.Get("/", handler.ListReports)
			r.Get("/{id}/compliance", handler.GetReportCompliance)
		})
		r.Get("/stats", handler.Stats)
	})

	return r
}

func rateLimitMiddleware(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.L.Warn("rate limit exceeded", "path", r.URL.Path)
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
