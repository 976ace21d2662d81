package auth_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	auth "github.com/hamiltonhq/go-auth"
)

// MockIdentityStore implements auth.IdentityStore
type MockIdentityStore struct {
	mock.Mock
}

func (m *MockIdentityStore) FindActiveIdentity(ctx context.Context, provider auth.Provider, normalized string) (*auth.AuthIdentity, error) {
	args := m.Called(ctx, provider, normalized)
	var identity *auth.AuthIdentity
	if v := args.Get(0); v != nil {
		identity = v.(*auth.AuthIdentity)
	}
	return identity, args.Error(1)
}

func (m *MockIdentityStore) GetUser(ctx context.Context, id int64) (*auth.User, error) {
	args := m.Called(ctx, id)
	var user *auth.User
	if v := args.Get(0); v != nil {
		user = v.(*auth.User)
	}
	return user, args.Error(1)
}

// StubAuthenticator implements auth.Authenticator for handler tests.
type StubAuthenticator struct {
	Token string
	Err   error

	GotIdentifier string
	GotPassword   string
	GotProviders  []auth.Provider
	Calls         int
}

func (s *StubAuthenticator) Login(ctx context.Context, identifier, password string, provider ...auth.Provider) (string, error) {
	s.Calls++
	s.GotIdentifier = identifier
	s.GotPassword = password
	s.GotProviders = provider
	return s.Token, s.Err
}

func (s *StubAuthenticator) TokenService() auth.TokenService {
	return nil
}

type testConfig struct {
	signingKey      string
	tokenExpiration int
	issuer          string
	audience        []string
}

func newTestConfig() testConfig {
	return testConfig{
		signingKey:      "test-signing-key",
		tokenExpiration: 60,
		issuer:          "go-auth-test",
		audience:        nil,
	}
}

type testLogger struct{}

func (testLogger) Debug(string, ...any) {}
func (testLogger) Info(string, ...any)  {}
func (testLogger) Warn(string, ...any)  {}
func (testLogger) Error(string, ...any) {}

func (c testConfig) GetSigningKey() string   { return c.signingKey }
func (c testConfig) GetTokenExpiration() int { return c.tokenExpiration }
func (c testConfig) GetIssuer() string       { return c.issuer }
func (c testConfig) GetAudience() []string   { return c.audience }

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func mustParseSubject(t *testing.T, claims auth.AuthClaims) int64 {
	t.Helper()
	id, err := strconv.ParseInt(claims.Subject(), 10, 64)
	require.NoError(t, err)
	return id
}
