package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// Algorithm is the only signing algorithm issued and accepted.
const Algorithm = "HS256"

var (
	// ErrSigningFailed is returned when the secret or the claim serialization is unusable.
	ErrSigningFailed = errors.New("token signing failed")

	// ErrInvalidToken is returned when a token is malformed, uses another algorithm or has a bad signature.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when the exp claim lies in the past or is missing.
	ErrTokenExpired = errors.New("token expired")

	// ErrClaimMismatch is returned when aud, iss or room differ from the expected values.
	ErrClaimMismatch = errors.New("token claim mismatch")
)

// GenerateToken signs the claims with HS256 and returns the compact token string.
// The result depends only on the claims and the secret, so equal inputs produce equal tokens.
func GenerateToken(claims *Claims, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", fmt.Errorf("%w: empty secret", ErrSigningFailed)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSigningFailed, err)
	}

	return signed, nil
}

// ParseOptions controls the claim checks performed by ParseToken.
// Empty string fields are not checked.
type ParseOptions struct {
	// Now is the instant exp is compared against. Zero means time.Now().
	Now time.Time

	Audience string
	Issuer   string
	Room     string
}

// ParseToken verifies the signature of tokenString with secret and returns its claims.
// Only HS256 tokens are accepted. The exp claim is required.
func ParseToken(tokenString string, secret []byte, opts ParseOptions) (*Claims, error) {
	claims := &Claims{}

	parser := &jwt.Parser{
		ValidMethods:         []string{Algorithm},
		SkipClaimsValidation: true,
	}

	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	if !claims.VerifyExpiresAt(now.Unix(), true) {
		return nil, ErrTokenExpired
	}

	if opts.Audience != "" && !claims.VerifyAudience(opts.Audience, true) {
		return nil, fmt.Errorf("%w: audience %q", ErrClaimMismatch, claims.Audience)
	}

	if opts.Issuer != "" && !claims.VerifyIssuer(opts.Issuer, true) {
		return nil, fmt.Errorf("%w: issuer %q", ErrClaimMismatch, claims.Issuer)
	}

	if opts.Room != "" && claims.Room != opts.Room {
		return nil, fmt.Errorf("%w: room %q", ErrClaimMismatch, claims.Room)
	}

	return claims, nil
}
