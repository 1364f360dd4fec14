/*
Package handler provides HTTP handler functions for joining classroom meetings.
*/
package handler

import (
	"net/http"

	"meetgate/internal/app/meeting"
	"meetgate/internal/app/user"
	"meetgate/internal/pkg/errs"
	"meetgate/internal/pkg/logx"
	"meetgate/internal/pkg/req"
	"meetgate/internal/pkg/resp"
)

// JoinInput is the form the classroom UI submits before entering a room.
// Role may be omitted when both Email and Password are given, since the registered role wins.
type JoinInput struct {
	Role     string `json:"role" validate:"required_without=Password"`
	Username string `json:"username" validate:"max=64"`
	Room     string `json:"room" validate:"max=256"`
	Email    string `json:"email,omitempty" validate:"required_with=Password,max=254"`
	Password string `json:"password,omitempty" validate:"max=128"`
}

// HandleJoinMeeting issues a meeting token for the submitted form and returns the widget session.
// Credential joins must carry a valid proof token when Proof-of-Work is enabled.
func HandleJoinMeeting(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input JoinInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var role user.Role
		if input.Role != "" {
			parsed, err := user.ParseRole(input.Role)
			if err != nil {
				logx.Warn("Join rejected: unknown role", "role", input.Role)
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
				return
			}
			role = parsed
		}

		if input.Email != "" && input.Password != "" && !deps.PoW.ConsumeProofToken(r) {
			logx.Warn("Credential join rejected: missing or invalid proof token")
			resp.RespondError(w, r, errs.NewError(errs.ErrPowChallengeRequired))
			return
		}

		session, err := deps.Meeting.Join(meeting.JoinRequest{
			Role:     role,
			Username: input.Username,
			Room:     input.Room,
			Email:    input.Email,
			Password: input.Password,
		})
		if err != nil {
			resp.RespondError(w, r, meetingError(err))
			return
		}

		if warning := session.Warning(); warning != nil {
			resp.RespondWarning(w, r, session, errorCode(warning))
			return
		}

		resp.RespondSuccess(w, r, session)
	}
}
