/*
Package handler provides the HTTP handlers and routing setup for the meetgate token gateway.

This file defines the main Router, applying necessary middleware like logging, metrics, CORS,
and IP-based rate limiting before delegating requests to specific handlers.
*/
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"meetgate/internal/pkg/auth/jwt"
	"meetgate/internal/pkg/limiter"
	"meetgate/internal/pkg/logx"
	"meetgate/internal/pkg/metrics"
	"meetgate/internal/pkg/pow"
	"meetgate/internal/pkg/resp"
)

const (
	JoinRate   = 0.5
	JoinBurst  = 10
	TokenRate  = 0.2
	TokenBurst = 5
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It initializes IP-based rate limiters, configures CORS, and applies global and per-route middleware.
// The limiters' cleanup goroutines stop when ctx is done.
func Router(ctx context.Context, deps *AppDeps) http.Handler {
	joinLimiter := limiter.NewIPRateLimiter(ctx, rate.Limit(JoinRate), JoinBurst)
	tokenLimiter := limiter.NewIPRateLimiter(ctx, rate.Limit(TokenRate), TokenBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.IsDevelopment() {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", pow.TokenHeaderKey},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(metrics.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		logx.Debug("Health check endpoint hit")

		data := map[string]string{
			"status":  "ok",
			"service": "meetgate",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Route("/pow", func(p chi.Router) {
			p.Get("/challenge", HandlePowChallenge(deps))
			p.Post("/verify", HandlePowVerify(deps))
		})

		api.Route("/meeting", func(m chi.Router) {
			m.With(joinLimiter.Middleware).Post("/join", HandleJoinMeeting(deps))
			m.Get("/room", HandleSuggestRoom())
		})

		api.With(tokenLimiter.Middleware).Post("/auth/token", HandleIssueToken(deps))

		requireToken := jwt.RequireTokenMiddleware(deps.Issuer.Secret(), deps.Issuer.ParseOptions(""), deps.Clock)
		api.With(requireToken).Get("/token/verify", HandleVerifyToken())
	})

	return r
}
