package jwt

import "github.com/golang-jwt/jwt"

// Claims defines the claim set of a meeting access token.
// The layout follows the token format expected by Jitsi-compatible conferencing servers:
// standard registered claims at the top level plus room, moderator and context.user.
type Claims struct {
	// StandardClaims carries aud, iss, sub and exp. It is embedded without a JSON tag so
	// the registered claims are serialized at the top level of the payload.
	jwt.StandardClaims

	// Room is the literal name of the room the holder may join. It is never a wildcard.
	Room string `json:"room"`

	// Moderator grants room control in the conferencing session.
	Moderator bool `json:"moderator"`

	// Context carries the user information displayed by the conferencing service.
	Context Context `json:"context"`
}

// Context is the "context" claim object.
type Context struct {
	User UserInfo `json:"user"`
}

// UserInfo is the "context.user" claim object.
type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
