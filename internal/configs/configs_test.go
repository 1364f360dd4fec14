package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"ENVIRONMENT", "PORT", "LOG_LEVEL", "POW_DIFFICULTY", "ALLOWED_ORIGINS", "JWT_SECRET",
	"JWT_APP_ID", "JWT_AUDIENCE", "MEET_DOMAIN", "GUEST_EMAIL_DOMAIN", "TOKEN_VALIDITY",
	"FALLBACK_TOKEN", "REGISTRY_FILE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 0, cfg.PowDifficulty)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, developmentSecret, cfg.JWTSecret)
	assert.Equal(t, "mydeploy1", cfg.AppID)
	assert.Equal(t, "jitsi", cfg.Audience)
	assert.Equal(t, "jit.shancloudservice.com", cfg.MeetDomain)
	assert.Equal(t, "classroom.com", cfg.GuestEmailDomain)
	assert.Equal(t, 10*time.Hour, cfg.TokenValidity)
	assert.Empty(t, cfg.FallbackToken)
	assert.Empty(t, cfg.RegistryFile)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("POW_DIFFICULTY", "3")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("JWT_APP_ID", "classroom")
	t.Setenv("MEET_DOMAIN", "meet.school.org")
	t.Setenv("TOKEN_VALIDITY", "90m")
	t.Setenv("FALLBACK_TOKEN", " static.token.value ")
	t.Setenv("REGISTRY_FILE", "/etc/meetgate/users.yaml")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 3, cfg.PowDifficulty)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "prod-secret", cfg.JWTSecret)
	assert.Equal(t, "classroom", cfg.AppID)
	assert.Equal(t, "meet.school.org", cfg.MeetDomain)
	assert.Equal(t, 90*time.Minute, cfg.TokenValidity)
	assert.Equal(t, "static.token.value", cfg.FallbackToken)
	assert.Equal(t, "/etc/meetgate/users.yaml", cfg.RegistryFile)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"secret required in production", map[string]string{"ENVIRONMENT": "production"}},
		{"port not a number", map[string]string{"PORT": "http"}},
		{"privileged port", map[string]string{"PORT": "80"}},
		{"bad difficulty", map[string]string{"POW_DIFFICULTY": "lots"}},
		{"difficulty too high", map[string]string{"POW_DIFFICULTY": "12"}},
		{"bad validity", map[string]string{"TOKEN_VALIDITY": "ten hours"}},
		{"negative validity", map[string]string{"TOKEN_VALIDITY": "-1h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
