/*
Package meeting issues signed room tokens and assembles the join session handed to the
conferencing widget.

The Issuer builds and signs the claim set for an identity and a room. The Service composes
the credential verifier with the Issuer, synthesizes guest identities, and applies the
explicitly configured degraded-mode fallback when signing fails.
*/
package meeting

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt"
	"github.com/jonboulle/clockwork"

	"meetgate/internal/app/user"
	"meetgate/internal/pkg/auth/jwt"
)

// IssuerConfig holds the deployment-time token settings.
type IssuerConfig struct {
	// Secret is the shared HMAC key. Its UTF-8 bytes are used as-is.
	Secret string

	// AppID is the "iss" claim.
	AppID string

	// Audience is the "aud" claim.
	Audience string

	// Domain is the "sub" claim, the conferencing domain.
	Domain string

	// Validity is added to the issuance instant to compute "exp".
	Validity time.Duration
}

// Issuer signs meeting tokens. It holds only read-only state and is safe for concurrent use.
type Issuer struct {
	cfg    IssuerConfig
	secret []byte
	clock  clockwork.Clock
}

// NewIssuer validates cfg and returns an Issuer reading the issuance time from clock.
func NewIssuer(cfg IssuerConfig, clock clockwork.Clock) (*Issuer, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token secret is empty")
	}
	if cfg.Validity <= 0 {
		return nil, fmt.Errorf("token validity must be positive, got %s", cfg.Validity)
	}

	return &Issuer{
		cfg:    cfg,
		secret: []byte(cfg.Secret),
		clock:  clock,
	}, nil
}

// Claims builds the claim set asserting id for room at the current instant.
// The room is used verbatim.
func (i *Issuer) Claims(id user.Identity, room string) (*jwt.Claims, error) {
	if err := id.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIdentity, err)
	}
	if room == "" {
		return nil, ErrRoomRequired
	}

	return &jwt.Claims{
		StandardClaims: gojwt.StandardClaims{
			Audience:  i.cfg.Audience,
			Issuer:    i.cfg.AppID,
			Subject:   i.cfg.Domain,
			ExpiresAt: i.clock.Now().Add(i.cfg.Validity).Unix(),
		},
		Room:      room,
		Moderator: id.Role.IsModerator(),
		Context: jwt.Context{
			User: jwt.UserInfo{
				Name:  id.DisplayName,
				Email: id.Email,
			},
		},
	}, nil
}

// Issue returns the signed token asserting id for room.
func (i *Issuer) Issue(id user.Identity, room string) (string, error) {
	claims, err := i.Claims(id, room)
	if err != nil {
		return "", err
	}

	token, err := jwt.GenerateToken(claims, i.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenSigning, err)
	}

	return token, nil
}

// ParseOptions returns the checks a relying party holding this issuer's configuration
// applies to a token presented for room.
func (i *Issuer) ParseOptions(room string) jwt.ParseOptions {
	return jwt.ParseOptions{
		Now:      i.clock.Now(),
		Audience: i.cfg.Audience,
		Issuer:   i.cfg.AppID,
		Room:     room,
	}
}

// Verify checks token the way the conferencing server would for room.
func (i *Issuer) Verify(token, room string) (*jwt.Claims, error) {
	return jwt.ParseToken(token, i.secret, i.ParseOptions(room))
}

// Secret returns a copy of the signing key bytes.
func (i *Issuer) Secret() []byte {
	return append([]byte(nil), i.secret...)
}
