/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific business or system errors both inside the gateway
and in the JSON envelope returned to the classroom front-end.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRequestEntityTooLarge indicates that the request body size exceeded the server limit.
	ErrRequestEntityTooLarge = 1006

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1007
)

// 2xxx: Room Errors
const (
	// ErrRoomRequired indicates that no room name was supplied for the token.
	ErrRoomRequired = 2101

	// ErrRoomMismatch indicates that a token was presented for a room it was not issued for.
	ErrRoomMismatch = 2102
)

// 3xxx: Identity, Token, and Security Errors
const (
	// ErrPowChallengeRequired indicates the client must complete a Proof-of-Work challenge first.
	ErrPowChallengeRequired = 3001

	// ErrPowChallengeInvalid indicates that the PoW proof provided by the client is invalid or incorrect.
	ErrPowChallengeInvalid = 3002

	// ErrUnauthorized indicates that the request carried no bearer token.
	ErrUnauthorized = 3005

	// ErrInvalidCredentials indicates that the email/password pair matched no registered user.
	ErrInvalidCredentials = 3101

	// ErrInvalidIdentity indicates that the display name or email of the identity is empty.
	ErrInvalidIdentity = 3102

	// ErrInvalidToken indicates that a presented token is malformed, forged, or expired.
	ErrInvalidToken = 3103

	// ErrDegradedFallbackUsed flags a session that runs on the static fallback token.
	ErrDegradedFallbackUsed = 3104
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrTokenSigningFailed indicates that the token could not be signed.
	ErrTokenSigningFailed = 5001
)
