package auth

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// ErrAuthenticationFailed is the single error surfaced to callers for every
// authentication-time failure: unknown identifier, wrong password,
// passwordless identity, inactive account. The specific reason is only
// logged, never returned, so callers cannot enumerate users or providers.
var ErrAuthenticationFailed = goerrors.New("authentication failed", goerrors.CategoryAuth).
	WithTextCode("AUTH_FAILED")

// ErrIdentityNotFound is the internal error for non found identities.
var ErrIdentityNotFound = goerrors.New("identity not found", goerrors.CategoryAuth).
	WithTextCode("IDENTITY_NOT_FOUND")

// ErrMismatchedHashAndPassword is the internal error for failed password
// verification. Malformed digests count as a mismatch.
var ErrMismatchedHashAndPassword = goerrors.New("mismatched hash and password", goerrors.CategoryAuth).
	WithTextCode("CREDENTIAL_MISMATCH")

// ErrInactiveAccount is the internal error for a disabled user or identity.
var ErrInactiveAccount = goerrors.New("account is inactive", goerrors.CategoryAuth).
	WithTextCode("INACTIVE_ACCOUNT")

// ErrNoEmptyString rejects empty inputs where a value is mandatory.
var ErrNoEmptyString = goerrors.New("value must not be empty", goerrors.CategoryBadInput).
	WithTextCode("EMPTY_VALUE")

// ErrTokenExpired is returned when a token's exp claim has elapsed.
var ErrTokenExpired = goerrors.New("token is expired", goerrors.CategoryAuth).
	WithTextCode("TOKEN_EXPIRED")

// ErrTokenMalformed covers every other token validation failure: bad
// signature, unexpected algorithm, or a structurally broken token.
var ErrTokenMalformed = goerrors.New("token is malformed", goerrors.CategoryAuth).
	WithTextCode("TOKEN_MALFORMED")

// IsAuthenticationFailure reports whether err is the uniform login failure,
// as opposed to a storage or signing problem. HTTP layers map the former to
// 401 and everything else to 503.
func IsAuthenticationFailure(err error) bool {
	return errors.Is(err, ErrAuthenticationFailed)
}

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	return errors.Is(err, ErrTokenExpired)
}

// IsTokenMalformedError will check for malformed or tampered tokens
func IsTokenMalformedError(err error) bool {
	return errors.Is(err, ErrTokenMalformed)
}

// wrapStorageError marks a failure coming out of the identity store. These
// propagate to callers unchanged so "system unavailable" stays
// distinguishable from "wrong credentials".
func wrapStorageError(err error, msg string) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, msg).
		WithTextCode("STORAGE_UNAVAILABLE")
}
