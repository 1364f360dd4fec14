/*
Package user contains the core identity types of the classroom meeting gateway.

It defines the closed Role enum (moderator or participant) and the Identity value that is
asserted inside issued meeting tokens, either looked up from the credential registry or
synthesized for a guest from a plain username.
*/
package user

import (
	"fmt"
	"strings"
)

// Role is the privilege level of a participant inside a conferencing room.
type Role int

const (
	// RoleParticipant is a regular attendee (the "student" role of the front-end).
	RoleParticipant Role = iota

	// RoleModerator controls the room (the "teacher" role of the front-end).
	RoleModerator
)

// ParseRole converts a role word received from a client into a Role.
// Both the front-end vocabulary (teacher/student) and the conferencing vocabulary
// (moderator/participant) are accepted, case-insensitively.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "teacher", "tutor", "moderator":
		return RoleModerator, nil
	case "student", "participant":
		return RoleParticipant, nil
	}
	return RoleParticipant, fmt.Errorf("unknown role %q", s)
}

// IsModerator reports whether the role grants moderator privileges.
func (r Role) IsModerator() bool {
	return r == RoleModerator
}

func (r Role) String() string {
	if r == RoleModerator {
		return "moderator"
	}
	return "participant"
}

// MarshalText encodes the role as its conferencing name.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Identity represents the user asserted by a meeting token.
// Fields use JSON tags for API responses.
type Identity struct {
	// DisplayName is shown to the other participants of the room.
	DisplayName string `json:"displayName"`

	// Email identifies the user towards the conferencing service.
	Email string `json:"email"`

	// Role decides the moderator flag of the issued token.
	Role Role `json:"role"`
}

// NewGuest synthesizes an identity for a user who did not authenticate.
// When email is empty it defaults to <username>@<emailDomain>.
func NewGuest(username, email string, role Role, emailDomain string) Identity {
	if email == "" {
		email = username + "@" + emailDomain
	}
	return Identity{
		DisplayName: username,
		Email:       email,
		Role:        role,
	}
}

// Validate checks that the identity carries the fields every token needs.
func (i Identity) Validate() error {
	if i.DisplayName == "" {
		return fmt.Errorf("identity display name is empty")
	}
	if i.Email == "" {
		return fmt.Errorf("identity email is empty")
	}
	return nil
}
