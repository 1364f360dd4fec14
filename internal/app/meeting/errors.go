package meeting

import "errors"

var (
	// ErrInvalidCredentials is returned when an email/password pair matches no registered user.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidIdentity is returned when the display name or email of an identity is empty.
	ErrInvalidIdentity = errors.New("invalid identity")

	// ErrRoomRequired is returned when no room name is given.
	ErrRoomRequired = errors.New("room is required")

	// ErrTokenSigning is returned when the token could not be signed.
	ErrTokenSigning = errors.New("token signing failed")

	// ErrDegradedFallbackUsed marks a session that runs on the static fallback token
	// after a signing failure. The fallback token is not bound to the requested room.
	ErrDegradedFallbackUsed = errors.New("degraded fallback token used")
)
