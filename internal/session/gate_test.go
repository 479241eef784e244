package session

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bab-library/catalog-service/internal/errs"
)

type fakeVerifier struct {
	ok  bool
	err error
}

func (f *fakeVerifier) VerifyAdminCredential(context.Context, string) (bool, error) {
	return f.ok, f.err
}

func testLog() *zap.Logger { return zap.NewExample().Named("test") }

func TestGate_LoginGrantsSessionUntilDeadline(t *testing.T) {
	t.Parallel()
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := NewGate(&fakeVerifier{ok: true}, time.Hour, testLog())
	g.now = func() time.Time { return current }

	token, err := g.Login(context.Background(), "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.True(t, g.Valid(token))

	// still inside the hour
	current = current.Add(59 * time.Minute)
	require.True(t, g.Valid(token))

	// the deadline has passed, no timer needed for the session to die
	current = current.Add(2 * time.Minute)
	require.False(t, g.Valid(token))
}

func TestGate_LoginRejections(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name     string
		verifier CredentialVerifier
	}{
		{name: "wrong password", verifier: &fakeVerifier{ok: false}},
		{name: "verifier transport failure", verifier: &fakeVerifier{err: errors.New("remote down")}},
		{name: "no verifier configured", verifier: nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewGate(tt.verifier, time.Hour, testLog())
			token, err := g.Login(context.Background(), "whatever")
			require.ErrorIs(t, err, errs.ErrInvalidCredentials)
			require.Empty(t, token)
		})
	}
}

func TestGate_LoginSupersedesPreviousSession(t *testing.T) {
	t.Parallel()
	g := NewGate(&fakeVerifier{ok: true}, time.Hour, testLog())

	first, err := g.Login(context.Background(), "secret")
	require.NoError(t, err)
	second, err := g.Login(context.Background(), "secret")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.False(t, g.Valid(first))
	require.True(t, g.Valid(second))
}

func TestGate_Logout(t *testing.T) {
	t.Parallel()
	g := NewGate(&fakeVerifier{ok: true}, time.Hour, testLog())

	token, err := g.Login(context.Background(), "secret")
	require.NoError(t, err)

	// a foreign token does not tear down the live session
	g.Logout("not-the-token")
	require.True(t, g.Valid(token))

	g.Logout(token)
	require.False(t, g.Valid(token))
}

func TestGate_ValidRejectsUnknownToken(t *testing.T) {
	t.Parallel()
	g := NewGate(&fakeVerifier{ok: true}, time.Hour, testLog())
	require.False(t, g.Valid(""))
	require.False(t, g.Valid("never-issued"))
}

func TestGate_DefaultTTL(t *testing.T) {
	t.Parallel()
	g := NewGate(&fakeVerifier{ok: true}, 0, testLog())
	require.Equal(t, DefaultTTL, g.TTL())
	require.Equal(t, 30*time.Minute, NewGate(nil, 30*time.Minute, testLog()).TTL())
}
