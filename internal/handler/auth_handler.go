/*
Package handler provides HTTP handler functions for registered-user authentication.
*/
package handler

import (
	"net/http"

	"meetgate/internal/pkg/errs"
	"meetgate/internal/pkg/logx"
	"meetgate/internal/pkg/req"
	"meetgate/internal/pkg/resp"
)

type TokenInput struct {
	Email    string `json:"email" validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=128"`
	Room     string `json:"room" validate:"max=256"`
}

// HandleIssueToken verifies registered-user credentials and returns a meeting token for the room.
// No token is signed for a wrong email/password pair, and no fallback token is ever handed out here.
func HandleIssueToken(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input TokenInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if !deps.PoW.ConsumeProofToken(r) {
			logx.Warn("Token request rejected: missing or invalid proof token")
			resp.RespondError(w, r, errs.NewError(errs.ErrPowChallengeRequired))
			return
		}

		token, err := deps.Meeting.IssueWithCredentials(input.Email, input.Password, input.Room)
		if err != nil {
			resp.RespondError(w, r, meetingError(err))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"token":  token,
			"room":   input.Room,
			"domain": deps.Config.MeetDomain,
		})
	}
}
