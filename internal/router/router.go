package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/diskusi-dev/diskusi/internal/middleware/metrics"
	"github.com/diskusi-dev/diskusi/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", h.Health)

	// Account routes
	r.Post("/users", h.Register)
	r.Post("/authentications", h.Login)
	r.Put("/authentications", h.RefreshAuthentication)
	r.Delete("/authentications", h.Logout)

	// Thread detail is public; everything mutating requires auth.
	r.Get("/threads/{threadId}", h.GetDetailThread)

	r.Group(func(r chi.Router) {
		r.Use(authMw.NeedAuth())

		r.Post("/threads", h.PostThread)
		r.Post("/threads/{threadId}/comments", h.PostComment)
		r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
		r.Put("/threads/{threadId}/comments/{commentId}/likes", h.LikeComment)
		r.Post("/threads/{threadId}/comments/{commentId}/replies", h.PostReply)
		r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	})

	return r
}
