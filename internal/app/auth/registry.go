/*
Package auth implements the credential registry and the credential verifier.

The registry is a static, immutable table of known users built once at process start,
either from the built-in demo users or from a YAML file. The verifier matches an
email/password pair against it and returns the stored identity.
*/
package auth

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"meetgate/internal/app/user"
)

// RegisteredUser is a single registry entry.
// Exactly one of Password (plaintext, demo-grade) or PasswordHash (bcrypt) is set.
type RegisteredUser struct {
	Password     string
	PasswordHash string
	Identity     user.Identity
}

// Registry is an immutable email-keyed table of registered users.
type Registry struct {
	users map[string]RegisteredUser
}

// NewRegistry builds a registry from the given entries.
// The email of each entry's identity is the lookup key; empty or duplicate emails are rejected.
func NewRegistry(users ...RegisteredUser) (*Registry, error) {
	reg := &Registry{users: make(map[string]RegisteredUser, len(users))}

	for _, u := range users {
		email := u.Identity.Email
		if email == "" {
			return nil, fmt.Errorf("registry entry for %q has no email", u.Identity.DisplayName)
		}
		if _, exists := reg.users[email]; exists {
			return nil, fmt.Errorf("duplicate registry entry for %s", email)
		}
		if u.Password == "" && u.PasswordHash == "" {
			return nil, fmt.Errorf("registry entry for %s has no password", email)
		}
		if err := u.Identity.Validate(); err != nil {
			return nil, fmt.Errorf("registry entry for %s: %w", email, err)
		}
		reg.users[email] = u
	}

	return reg, nil
}

// DefaultRegistry returns the demo registry with one moderator and one participant.
func DefaultRegistry() *Registry {
	reg, err := NewRegistry(
		RegisteredUser{
			Password: "tutor123",
			Identity: user.Identity{
				DisplayName: "John Tutor",
				Email:       "tutor@example.com",
				Role:        user.RoleModerator,
			},
		},
		RegisteredUser{
			Password: "student123",
			Identity: user.Identity{
				DisplayName: "Jane Student",
				Email:       "student@example.com",
				Role:        user.RoleParticipant,
			},
		},
	)
	if err != nil {
		panic(err)
	}
	return reg
}

// Lookup returns the entry stored for email.
func (r *Registry) Lookup(email string) (RegisteredUser, bool) {
	u, ok := r.users[email]
	return u, ok
}

// Len returns the number of registered users.
func (r *Registry) Len() int {
	return len(r.users)
}

type registryFile struct {
	Users []struct {
		Email        string `yaml:"email"`
		DisplayName  string `yaml:"displayName"`
		Role         string `yaml:"role"`
		Password     string `yaml:"password"`
		PasswordHash string `yaml:"passwordHash"`
	} `yaml:"users"`
}

// LoadRegistry reads a YAML registry file. An empty path yields the demo registry.
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	return ParseRegistry(data)
}

// ParseRegistry decodes a registry from its YAML representation.
func ParseRegistry(data []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse registry file: %w", err)
	}

	users := make([]RegisteredUser, 0, len(file.Users))
	for _, u := range file.Users {
		role, err := user.ParseRole(u.Role)
		if err != nil {
			return nil, fmt.Errorf("registry entry for %s: %w", u.Email, err)
		}
		users = append(users, RegisteredUser{
			Password:     u.Password,
			PasswordHash: u.PasswordHash,
			Identity: user.Identity{
				DisplayName: u.DisplayName,
				Email:       u.Email,
				Role:        role,
			},
		})
	}

	return NewRegistry(users...)
}
