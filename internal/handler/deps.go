package handler

import (
	"github.com/jonboulle/clockwork"

	"meetgate/internal/app/meeting"
	"meetgate/internal/configs"
	"meetgate/internal/pkg/pow"
)

// AppDeps bundles everything the HTTP handlers need.
type AppDeps struct {
	Config  *configs.AppConfig
	Meeting *meeting.Service
	Issuer  *meeting.Issuer
	PoW     *pow.Manager
	Clock   clockwork.Clock
}
