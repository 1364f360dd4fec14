package auth

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"meetgate/internal/app/user"
)

func TestVerify_DefaultRegistry(t *testing.T) {
	v := NewVerifier(DefaultRegistry())

	tests := []struct {
		name     string
		email    string
		password string
		want     user.Identity
		wantOK   bool
	}{
		{
			name:     "tutor",
			email:    "tutor@example.com",
			password: "tutor123",
			want:     user.Identity{DisplayName: "John Tutor", Email: "tutor@example.com", Role: user.RoleModerator},
			wantOK:   true,
		},
		{
			name:     "student",
			email:    "student@example.com",
			password: "student123",
			want:     user.Identity{DisplayName: "Jane Student", Email: "student@example.com", Role: user.RoleParticipant},
			wantOK:   true,
		},
		{name: "wrong password", email: "tutor@example.com", password: "wrong"},
		{name: "password case differs", email: "tutor@example.com", password: "TUTOR123"},
		{name: "password prefix", email: "tutor@example.com", password: "tutor12"},
		{name: "other user's password", email: "tutor@example.com", password: "student123"},
		{name: "unknown email", email: "nobody@example.com", password: "tutor123"},
		{name: "email case differs", email: "Tutor@example.com", password: "tutor123"},
		{name: "empty password", email: "tutor@example.com", password: ""},
		{name: "empty email", email: "", password: "tutor123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.Verify(tt.email, tt.password)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerify_HashedEntry(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	reg, err := NewRegistry(RegisteredUser{
		PasswordHash: string(hash),
		Identity:     user.Identity{DisplayName: "Ms Frizzle", Email: "frizzle@school.org", Role: user.RoleModerator},
	})
	require.NoError(t, err)
	v := NewVerifier(reg)

	id, ok := v.Verify("frizzle@school.org", "s3cret")
	require.True(t, ok)
	assert.Equal(t, "Ms Frizzle", id.DisplayName)

	_, ok = v.Verify("frizzle@school.org", string(hash))
	assert.False(t, ok)
}

func TestVerify_Concurrent(t *testing.T) {
	v := NewVerifier(DefaultRegistry())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok := v.Verify("student@example.com", "student123")
			assert.True(t, ok)
		}()
	}
	wg.Wait()
}

func TestNewRegistry_Rejects(t *testing.T) {
	id := user.Identity{DisplayName: "A", Email: "a@example.com"}

	_, err := NewRegistry(
		RegisteredUser{Password: "x", Identity: id},
		RegisteredUser{Password: "y", Identity: id},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")

	_, err = NewRegistry(RegisteredUser{Password: "x", Identity: user.Identity{DisplayName: "A"}})
	require.Error(t, err)

	_, err = NewRegistry(RegisteredUser{Identity: id})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no password")
}

func TestLoadRegistry_EmptyPathIsDefault(t *testing.T) {
	reg, err := LoadRegistry("")
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	_, ok := reg.Lookup("tutor@example.com")
	assert.True(t, ok)
}

func TestLoadRegistry_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.yaml")
	content := `users:
  - email: teacher@school.org
    displayName: Walter White
    role: teacher
    password: chem101
  - email: pupil@school.org
    displayName: Jesse Pinkman
    role: student
    password: yo
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	reg, err := LoadRegistry(path)
	require.NoError(t, err)
	require.Equal(t, 2, reg.Len())

	v := NewVerifier(reg)
	id, ok := v.Verify("teacher@school.org", "chem101")
	require.True(t, ok)
	assert.Equal(t, user.Identity{DisplayName: "Walter White", Email: "teacher@school.org", Role: user.RoleModerator}, id)

	id, ok = v.Verify("pupil@school.org", "yo")
	require.True(t, ok)
	assert.Equal(t, user.RoleParticipant, id.Role)
}

func TestParseRegistry_InvalidRole(t *testing.T) {
	_, err := ParseRegistry([]byte(`users:
  - email: a@example.com
    displayName: A
    role: janitor
    password: x
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
