/*
Package pow implements a Proof-of-Work (PoW) challenge used to slow down credential
guessing against the registered-user login paths.

A client fetches a nonce, searches for a counter such that SHA-256(nonce + counter) has the
required number of leading hex zeros, and exchanges the proof for a short-lived proof token
that must accompany the credential request.
*/
package pow

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const (
	// TokenHeaderKey is the HTTP header key used by the client to send the Proof Token.
	TokenHeaderKey = "X-PoW-Token"

	// ProofTokenDuration is the validity period of a proof token. Tokens are single use.
	ProofTokenDuration = 30 * time.Second

	// NonceExpiryDuration is the validity period for the challenge Nonce.
	NonceExpiryDuration = 5 * time.Minute
)

var (
	// ErrNonceInvalid is returned for unknown, expired or already consumed nonces.
	ErrNonceInvalid = errors.New("nonce expired or invalid")

	// ErrProofInsufficient is returned when the hash does not meet the difficulty.
	ErrProofInsufficient = errors.New("proof does not meet difficulty requirement")
)

// Manager tracks outstanding nonces and issued proof tokens. It is safe for concurrent use.
type Manager struct {
	difficulty int
	clock      clockwork.Clock

	mu         sync.Mutex
	nonceStore map[string]time.Time
	tokenStore map[string]time.Time
}

// NewManager creates a Manager requiring difficulty leading hex zeros.
// Expired entries are purged in the background until ctx is done.
func NewManager(ctx context.Context, difficulty int, clock clockwork.Clock) *Manager {
	m := &Manager{
		difficulty: difficulty,
		clock:      clock,
		nonceStore: make(map[string]time.Time),
		tokenStore: make(map[string]time.Time),
	}

	go m.cleanupExpiredEntries(ctx)

	return m
}

// Enabled reports whether proofs are required at all.
func (m *Manager) Enabled() bool {
	return m.difficulty > 0
}

// Difficulty returns the number of leading hex zeros required.
func (m *Manager) Difficulty() int {
	return m.difficulty
}

// GenerateNonce creates and stores a new challenge nonce.
func (m *Manager) GenerateNonce() string {
	nonce := uuid.NewString()

	m.mu.Lock()
	m.nonceStore[nonce] = m.clock.Now().Add(NonceExpiryDuration)
	m.mu.Unlock()

	return nonce
}

// Solved reports whether SHA-256(nonce + counter) meets difficulty.
func Solved(nonce, counter string, difficulty int) bool {
	hash := sha256.Sum256([]byte(nonce + counter))
	return strings.HasPrefix(hex.EncodeToString(hash[:]), strings.Repeat("0", difficulty))
}

// ValidateProof consumes nonce and returns a proof token when counter solves it.
func (m *Manager) ValidateProof(nonce, counter string) (string, error) {
	if !Solved(nonce, counter, m.difficulty) {
		return "", ErrProofInsufficient
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()

	expiry, ok := m.nonceStore[nonce]
	if !ok || now.After(expiry) {
		return "", ErrNonceInvalid
	}
	delete(m.nonceStore, nonce)

	token := uuid.NewString()
	m.tokenStore[token] = now.Add(ProofTokenDuration)
	return token, nil
}

// ConsumeProofToken checks the proof token carried by r (X-PoW-Token header or pow_token
// query parameter) and invalidates it. It always succeeds when the manager is disabled.
func (m *Manager) ConsumeProofToken(r *http.Request) bool {
	if !m.Enabled() {
		return true
	}

	token := r.Header.Get(TokenHeaderKey)
	if token == "" {
		token = r.URL.Query().Get("pow_token")
	}
	if token == "" {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	expiry, ok := m.tokenStore[token]
	if !ok {
		return false
	}
	delete(m.tokenStore, token)

	return !m.clock.Now().After(expiry)
}

func (m *Manager) purge(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for nonce, expiry := range m.nonceStore {
		if now.After(expiry) {
			delete(m.nonceStore, nonce)
		}
	}

	for token, expiry := range m.tokenStore {
		if now.After(expiry) {
			delete(m.tokenStore, token)
		}
	}
}

func (m *Manager) cleanupExpiredEntries(ctx context.Context) {
	ticker := m.clock.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			m.purge(m.clock.Now())
		}
	}
}
