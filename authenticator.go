package auth

import (
	"context"
	"strconv"
	"strings"
)

// Auther resolves identifiers against the identity store, verifies
// credentials, and issues signed access tokens. It holds no mutable state
// between calls; concurrent logins need no coordination here.
type Auther struct {
	store        IdentityStore
	logger       Logger
	tokenService TokenService
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(store IdentityStore, opts Config) *Auther {
	tokenService := NewTokenService(
		[]byte(opts.GetSigningKey()),
		opts.GetTokenExpiration(),
		opts.GetIssuer(),
		opts.GetAudience(),
		defLogger{},
	)

	return &Auther{
		store:        store,
		logger:       defLogger{},
		tokenService: tokenService,
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger == nil {
		return s
	}
	s.logger = logger
	// Update the TokenService logger in place. A service injected via
	// WithTokenService keeps its key, expiry, and clock regardless of the
	// order the builder methods run in.
	if ts, ok := s.tokenService.(interface{ SetLogger(Logger) }); ok {
		ts.SetLogger(logger)
	}
	return s
}

// WithTokenService sets a custom token service, e.g. one with an injected
// clock.
func (s *Auther) WithTokenService(tokenService TokenService) *Auther {
	if tokenService != nil {
		s.tokenService = tokenService
	}
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

var _ Authenticator = (*Auther)(nil)

// Login resolves the identifier against one or more providers, verifies the
// password, and returns a signed access token. An explicit provider, when
// given, is the only one tried. Every authentication-time failure returns
// ErrAuthenticationFailed with no further detail; storage failures propagate
// as distinct errors.
func (s *Auther) Login(ctx context.Context, identifier, password string, provider ...Provider) (string, error) {
	// Fail fast on empty input: no lookup, no hashing work.
	if identifier == "" || password == "" {
		s.logger.Debug("Login rejected empty identifier or password")
		return "", ErrAuthenticationFailed
	}

	identity, err := s.resolveIdentity(ctx, identifier, provider...)
	if err != nil {
		s.logger.Error("Login identity lookup error", "error", err)
		return "", err
	}

	if identity == nil {
		s.logger.Debug("Login no active identity matched", "error", ErrIdentityNotFound)
		return "", ErrAuthenticationFailed
	}

	// A passwordless or federated identity cannot be verified with a
	// password.
	if !identity.HasPassword() {
		s.logger.Debug("Login identity has no password hash", "provider", identity.Provider)
		return "", ErrAuthenticationFailed
	}

	if err := ComparePasswordAndHash(password, identity.PasswordHash); err != nil {
		s.logger.Debug("Login password verification failed", "error", err)
		return "", ErrAuthenticationFailed
	}

	// Active status is only checked after the password verifies; an
	// inactive account must stay indistinguishable from a wrong password.
	user, err := s.store.GetUser(ctx, identity.UserID)
	if err != nil {
		s.logger.Error("Login user load error", "error", err)
		return "", err
	}

	if user == nil || !user.IsActive {
		s.logger.Debug("Login blocked inactive user", "error", ErrInactiveAccount, "user_id", identity.UserID)
		return "", ErrAuthenticationFailed
	}

	token, err := s.tokenService.Generate(
		strconv.FormatInt(user.ID, 10),
		user.Email,
		user.RoleNames(),
		user.PermissionCodes(),
	)
	if err != nil {
		s.logger.Error("Login token generation error", "error", err)
		return "", err
	}

	s.logger.Info("Login succeeded", "user_id", user.ID)

	return token, nil
}

// resolveIdentity walks the candidate providers in order and stops at the
// first active identity, whether or not its credential later verifies.
// There is no fallback to later providers once a match is found; that would
// let one typed string be stuffed against several identities.
func (s *Auther) resolveIdentity(ctx context.Context, identifier string, provider ...Provider) (*AuthIdentity, error) {
	for _, prov := range s.candidateProviders(identifier, provider...) {
		normalized := NormalizeIdentifier(prov, identifier)

		identity, err := s.store.FindActiveIdentity(ctx, prov, normalized)
		if err != nil {
			return nil, err
		}

		if identity != nil {
			return identity, nil
		}
	}

	return nil, nil
}

// candidateProviders picks the providers to try. An explicit valid provider
// wins; an identifier containing "@" can only be an email; anything else
// walks the default order.
func (s *Auther) candidateProviders(identifier string, provider ...Provider) []Provider {
	if len(provider) > 0 && provider[0].IsValid() {
		return []Provider{provider[0]}
	}

	if strings.Contains(identifier, "@") {
		return []Provider{ProviderEmail}
	}

	return DefaultProviderOrder()
}
