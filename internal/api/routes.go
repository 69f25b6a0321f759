package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures all API routes. dispatchHandler is the newsletter
// dispatch function; it carries its own CORS and method handling to keep its
// wire contract self-contained.
func SetupRoutes(h *Handlers, dispatchHandler http.Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	if h.metrics != nil {
		r.Use(metricsMiddleware(h))
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://glitchowt.com", "http://localhost:5173", "http://localhost:8080"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.HealthCheck)
	if h.metrics != nil {
		r.Handle("/metrics", h.metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		// Public surface
		r.Post("/subscribers", h.Subscribe)
		r.Get("/posts", h.ListPosts)
		r.Get("/posts/{id}", h.GetPost)
		r.Get("/roadmap", h.ListRoadmap)
		r.Get("/roadmap/buckets", h.RoadmapBuckets)
		r.Get("/reels", h.ListReels)

		// Admin surface. Authorization is delegated to the deployment
		// (reverse proxy / platform auth), matching the dispatch contract.
		r.Get("/subscribers", h.ListSubscribers)
		r.Get("/subscribers/export", h.ExportSubscribers)
		r.Delete("/subscribers/{id}", h.DeleteSubscriber)

		r.Post("/posts", h.CreatePost)
		r.Put("/posts/{id}", h.UpdatePost)
		r.Delete("/posts/{id}", h.DeletePost)

		r.Post("/roadmap", h.CreateRoadmapFeature)
		r.Put("/roadmap/{id}", h.UpdateRoadmapFeature)
		r.Put("/roadmap/{id}/status", h.UpdateRoadmapStatus)
		r.Delete("/roadmap/{id}", h.DeleteRoadmapFeature)

		r.Post("/reels", h.CreateReel)
		r.Put("/reels/{id}", h.UpdateReel)
		r.Delete("/reels/{id}", h.DeleteReel)

		r.Handle("/send-newsletter", dispatchHandler)
	})

	return r
}

// metricsMiddleware records status codes and latency for every request.
func metricsMiddleware(h *Handlers) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			h.metrics.RecordHTTP(ww.Status(), time.Since(start))
		})
	}
}
