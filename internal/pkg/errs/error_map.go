/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the CustomError template of every application error code.
// Entries without an explicit Status are answered with HTTP 200 and carry the failure in Code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:         {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Message: "Unsupported request format."},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large."},
	ErrRateLimitExceeded:     {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Room Errors
	ErrRoomRequired: {Code: ErrRoomRequired, Message: "Please enter a meeting room."},
	ErrRoomMismatch: {Code: ErrRoomMismatch, Message: "This token is not valid for the requested room.", Status: http.StatusForbidden},

	// 3xxx: Identity, Token, and Security Errors
	ErrPowChallengeRequired: {Code: ErrPowChallengeRequired, Message: "Verification required. Please try again."},
	ErrPowChallengeInvalid:  {Code: ErrPowChallengeInvalid, Message: "Verification failed. Please try again."},
	ErrUnauthorized:         {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},
	ErrInvalidCredentials:   {Code: ErrInvalidCredentials, Message: "Incorrect email or password.", Status: http.StatusUnauthorized},
	ErrInvalidIdentity:      {Code: ErrInvalidIdentity, Message: "Please enter your name."},
	ErrInvalidToken:         {Code: ErrInvalidToken, Message: "Meeting token is invalid or expired.", Status: http.StatusUnauthorized},
	ErrDegradedFallbackUsed: {Code: ErrDegradedFallbackUsed, Message: "Using fallback token - authentication may be limited."},

	// 5xxx: Internal System Errors
	ErrUnknown:            {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrTokenSigningFailed: {Code: ErrTokenSigningFailed, Message: "Could not create a meeting token. Please try again later.", Status: http.StatusInternalServerError},
}
