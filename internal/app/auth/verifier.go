package auth

import (
	"golang.org/x/crypto/bcrypt"

	"meetgate/internal/app/user"
)

// Verifier checks submitted credentials against a Registry.
// It holds no mutable state and is safe for concurrent use.
type Verifier struct {
	registry *Registry
}

// NewVerifier creates a verifier over the given registry.
func NewVerifier(registry *Registry) *Verifier {
	return &Verifier{registry: registry}
}

// Verify returns the identity registered for email when password matches.
// A missing entry or a wrong password yields false; neither is an error.
//
// Plaintext entries are compared byte for byte, which is not timing safe and only
// suitable for demo users. Entries with a bcrypt PasswordHash use bcrypt instead.
func (v *Verifier) Verify(email, password string) (user.Identity, bool) {
	if email == "" || password == "" {
		return user.Identity{}, false
	}

	entry, ok := v.registry.Lookup(email)
	if !ok {
		return user.Identity{}, false
	}

	if entry.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(entry.PasswordHash), []byte(password)); err != nil {
			return user.Identity{}, false
		}
		return entry.Identity, true
	}

	if entry.Password != password {
		return user.Identity{}, false
	}

	return entry.Identity, true
}
