package jwt

import (
	"context"
	"net/http"
	"strings"

	"github.com/jonboulle/clockwork"

	"meetgate/internal/pkg/errs"
	"meetgate/internal/pkg/logx"
	"meetgate/internal/pkg/metrics"
	"meetgate/internal/pkg/resp"
)

// Define Context Key for storing the Claims struct, preventing key collisions with other packages.
type contextKey string

const (
	// ContextClaimsKey is the key used to store the verified *Claims in the request Context.
	ContextClaimsKey contextKey = "token_claims"
)

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

// RequireTokenMiddleware verifies the bearer token of every request the way a relying party
// holding the same secret would. Requests without a token are answered with ErrUnauthorized,
// requests with an invalid or expired token with ErrInvalidToken. On success the claims are
// injected into the request Context.
func RequireTokenMiddleware(secret []byte, opts ParseOptions, clock clockwork.Clock) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := BearerToken(r)
			if !ok {
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
				return
			}

			reqOpts := opts
			reqOpts.Now = clock.Now()

			claims, err := ParseToken(tokenString, secret, reqOpts)
			if err != nil {
				logx.Warn("Rejected meeting token", "error", err)
				metrics.RecordVerification(false)
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidToken))
				return
			}

			ctx := context.WithValue(r.Context(), ContextClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaimsFromContext extracts the verified Claims from the request Context.
// It returns nil when RequireTokenMiddleware did not run.
func GetClaimsFromContext(r *http.Request) *Claims {
	claims, ok := r.Context().Value(ContextClaimsKey).(*Claims)
	if !ok {
		return nil
	}
	return claims
}
