package meeting

import (
	"errors"

	"meetgate/internal/app/user"
	"meetgate/internal/pkg/logx"
	"meetgate/internal/pkg/metrics"
)

// Issuance modes used in logs and metrics.
const (
	ModeGuest       = "guest"
	ModeCredentials = "credentials"
)

// TokenIssuer signs a token asserting an identity for a room.
type TokenIssuer interface {
	Issue(id user.Identity, room string) (string, error)
}

// CredentialVerifier resolves an email/password pair to a registered identity.
type CredentialVerifier interface {
	Verify(email, password string) (user.Identity, bool)
}

// Options configures a Service.
type Options struct {
	// Domain is the conferencing domain the widget connects to.
	Domain string

	// GuestEmailDomain completes guest emails as <username>@<GuestEmailDomain>.
	GuestEmailDomain string

	// FallbackToken is substituted when signing fails. Empty disables degraded mode.
	FallbackToken string
}

// Service issues meeting tokens for guests and registered users.
type Service struct {
	verifier CredentialVerifier
	issuer   TokenIssuer
	opts     Options
}

// NewService creates a Service.
func NewService(verifier CredentialVerifier, issuer TokenIssuer, opts Options) *Service {
	return &Service{
		verifier: verifier,
		issuer:   issuer,
		opts:     opts,
	}
}

// JoinRequest is what the UI submits before entering a room.
// When both Email and Password are set the user is authenticated against the registry and
// Role is ignored in favor of the registered role.
type JoinRequest struct {
	Role     user.Role
	Username string
	Room     string
	Email    string
	Password string
}

// Session is everything the UI needs to initialize the conferencing widget.
type Session struct {
	Token         string        `json:"token"`
	Room          string        `json:"room"`
	Domain        string        `json:"domain"`
	DisplayName   string        `json:"displayName"`
	Email         string        `json:"email"`
	Moderator     bool          `json:"moderator"`
	Authenticated bool          `json:"authenticated"`
	Degraded      bool          `json:"degraded"`
	Options       WidgetOptions `json:"options"`
}

// Issue signs a token for id and room without consulting the registry.
func (s *Service) Issue(id user.Identity, room string) (string, error) {
	token, err := s.issuer.Issue(id, room)
	s.record(id, ModeGuest, err)
	return token, err
}

// IssueWithCredentials verifies email and password and signs a token for the registered
// identity. On a mismatch it returns ErrInvalidCredentials without signing anything.
func (s *Service) IssueWithCredentials(email, password, room string) (string, error) {
	id, err := s.authenticate(email, password)
	if err != nil {
		return "", err
	}

	token, err := s.issuer.Issue(id, room)
	s.record(id, ModeCredentials, err)
	return token, err
}

// Join resolves the identity of req, issues its token and assembles the widget session.
// If signing fails and a fallback token is configured, the session is returned with
// Degraded set; invalid input and invalid credentials never fall back.
func (s *Service) Join(req JoinRequest) (*Session, error) {
	var (
		id            user.Identity
		mode          = ModeGuest
		authenticated bool
	)

	if req.Email != "" && req.Password != "" {
		var err error
		if id, err = s.authenticate(req.Email, req.Password); err != nil {
			return nil, err
		}
		mode = ModeCredentials
		authenticated = true
	} else {
		if req.Username == "" {
			return nil, ErrInvalidIdentity
		}
		id = user.NewGuest(req.Username, req.Email, req.Role, s.opts.GuestEmailDomain)
	}

	token, err := s.issuer.Issue(id, req.Room)
	degraded := false

	if err != nil {
		if !errors.Is(err, ErrTokenSigning) || s.opts.FallbackToken == "" {
			s.record(id, mode, err)
			return nil, err
		}

		logx.Warn("Token signing failed, using static fallback token with reduced trust",
			"error", err,
			"room", req.Room,
			"role", id.Role.String(),
			"mode", mode,
		)
		metrics.RecordIssuance(id.Role.String(), mode, metrics.ResultFallback)

		token = s.opts.FallbackToken
		degraded = true
	} else {
		s.record(id, mode, nil)
	}

	return &Session{
		Token:         token,
		Room:          req.Room,
		Domain:        s.opts.Domain,
		DisplayName:   id.DisplayName,
		Email:         id.Email,
		Moderator:     id.Role.IsModerator(),
		Authenticated: authenticated,
		Degraded:      degraded,
		Options:       newWidgetOptions(token, req.Room, id),
	}, nil
}

func (s *Service) authenticate(email, password string) (user.Identity, error) {
	id, ok := s.verifier.Verify(email, password)
	if !ok {
		logx.Warn("Credential verification failed", "email", email)
		metrics.RecordCredentialFailure()
		return user.Identity{}, ErrInvalidCredentials
	}
	return id, nil
}

func (s *Service) record(id user.Identity, mode string, err error) {
	if err != nil {
		if errors.Is(err, ErrTokenSigning) {
			logx.Error(err, "Token signing failed", "role", id.Role.String(), "mode", mode)
		}
		metrics.RecordIssuance(id.Role.String(), mode, metrics.ResultFailed)
		return
	}

	logx.Debug("Meeting token issued", "email", id.Email, "role", id.Role.String(), "mode", mode)
	metrics.RecordIssuance(id.Role.String(), mode, metrics.ResultIssued)
}

// Warning returns ErrDegradedFallbackUsed for degraded sessions and nil otherwise.
func (s *Session) Warning() error {
	if s.Degraded {
		return ErrDegradedFallbackUsed
	}
	return nil
}
