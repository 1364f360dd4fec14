package handler

import (
	"net/http"
	"time"

	"meetgate/internal/pkg/auth/jwt"
	"meetgate/internal/pkg/errs"
	"meetgate/internal/pkg/metrics"
	"meetgate/internal/pkg/resp"
)

// HandleVerifyToken reports the claims of the bearer token verified by RequireTokenMiddleware.
// When the "room" query parameter is set the token must have been issued for exactly that room.
func HandleVerifyToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := jwt.GetClaimsFromContext(r)
		if claims == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		if room := r.URL.Query().Get("room"); room != "" && room != claims.Room {
			metrics.RecordVerification(false)
			resp.RespondError(w, r, errs.NewError(errs.ErrRoomMismatch))
			return
		}

		metrics.RecordVerification(true)
		resp.RespondSuccess(w, r, map[string]any{
			"claims":    claims,
			"expiresAt": time.Unix(claims.ExpiresAt, 0).UTC().Format(time.RFC3339),
		})
	}
}
