package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bab-library/catalog-service/internal/errs"
)

const DefaultTTL = 60 * time.Minute

// CredentialVerifier delegates the password check to the server-held
// secret. The gate itself never sees the stored credential.
type CredentialVerifier interface {
	VerifyAdminCredential(ctx context.Context, candidate string) (bool, error)
}

// Gate holds at most one elevated admin session. A session is valid until
// an absolute deadline; validity is checked against the deadline on each
// privileged attempt rather than by a countdown timer.
type Gate struct {
	mu       sync.Mutex
	verifier CredentialVerifier
	ttl      time.Duration
	now      func() time.Time
	log      *zap.Logger

	token    string
	deadline time.Time
}

func NewGate(verifier CredentialVerifier, ttl time.Duration, log *zap.Logger) *Gate {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Gate{
		verifier: verifier,
		ttl:      ttl,
		now:      time.Now,
		log:      log.Named("session"),
	}
}

// Login verifies the candidate and, on success, grants a fresh session
// superseding any previous one. A wrong password and a verification
// transport failure are indistinguishable to the caller; the cause is
// logged.
func (g *Gate) Login(ctx context.Context, candidate string) (string, error) {
	if g.verifier == nil {
		g.log.Warn("credential verification unavailable: no remote store")
		return "", errs.ErrInvalidCredentials
	}
	ok, err := g.verifier.VerifyAdminCredential(ctx, candidate)
	if err != nil {
		g.log.Error("credential verification failed", zap.Error(err))
		return "", errs.ErrInvalidCredentials
	}
	if !ok {
		return "", errs.ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		g.log.Error("token generation", zap.Error(err))
		return "", errs.ErrInvalidCredentials
	}

	g.mu.Lock()
	g.token = token
	g.deadline = g.now().Add(g.ttl)
	g.mu.Unlock()

	g.log.Info("admin session granted", zap.Duration("ttl", g.ttl))
	return token, nil
}

// Valid reports whether the token identifies the live session and its
// deadline has not passed.
func (g *Gate) Valid(token string) bool {
	if token == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return token == g.token && g.now().Before(g.deadline)
}

func (g *Gate) Logout(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if token != "" && token == g.token {
		g.token = ""
		g.deadline = time.Time{}
	}
}

// TTL is the configured session lifetime.
func (g *Gate) TTL() time.Duration {
	return g.ttl
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
