package handler

import (
	"errors"

	"meetgate/internal/app/meeting"
	"meetgate/internal/pkg/errs"
)

// errorCode maps a meeting error to its application error code.
func errorCode(err error) int {
	switch {
	case errors.Is(err, meeting.ErrInvalidCredentials):
		return errs.ErrInvalidCredentials
	case errors.Is(err, meeting.ErrInvalidIdentity):
		return errs.ErrInvalidIdentity
	case errors.Is(err, meeting.ErrRoomRequired):
		return errs.ErrRoomRequired
	case errors.Is(err, meeting.ErrTokenSigning):
		return errs.ErrTokenSigningFailed
	case errors.Is(err, meeting.ErrDegradedFallbackUsed):
		return errs.ErrDegradedFallbackUsed
	default:
		return errs.ErrUnknown
	}
}

func meetingError(err error) *errs.CustomError {
	return errs.NewError(errorCode(err), err)
}
