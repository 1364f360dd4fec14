package main

import (
	"fmt"

	"github.com/jonboulle/clockwork"

	"meetgate/internal/app/auth"
	"meetgate/internal/app/meeting"
	"meetgate/internal/configs"
)

// newMeeting builds the token issuer and the meeting service from cfg.
func newMeeting(cfg *configs.AppConfig, clock clockwork.Clock) (*meeting.Service, *meeting.Issuer, error) {
	registry, err := auth.LoadRegistry(cfg.RegistryFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load credential registry: %w", err)
	}

	issuer, err := meeting.NewIssuer(meeting.IssuerConfig{
		Secret:   cfg.JWTSecret,
		AppID:    cfg.AppID,
		Audience: cfg.Audience,
		Domain:   cfg.MeetDomain,
		Validity: cfg.TokenValidity,
	}, clock)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	service := meeting.NewService(auth.NewVerifier(registry), issuer, meeting.Options{
		Domain:           cfg.MeetDomain,
		GuestEmailDomain: cfg.GuestEmailDomain,
		FallbackToken:    cfg.FallbackToken,
	})

	return service, issuer, nil
}
