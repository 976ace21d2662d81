// Package auth implements a multi-provider authentication core: it resolves
// a user-supplied identifier (email, username, or room code) plus credential
// against a store of identities, verifies the credential, and issues a
// signed, claims-bearing access token.
//
// Identifier resolution:
//   - An explicit provider restricts the lookup to that provider. Without
//     one, identifiers containing "@" are treated as emails; bare
//     identifiers walk the fixed order email, username, room and stop at
//     the first active identity. There is no fallback to later providers
//     after a match, even when the credential check then fails.
//   - Identifiers are normalized (NFKC, trimmed, case-folded for the
//     case-insensitive providers) before lookup, so matching never depends
//     on how the user typed the identifier or on the process locale.
//
// Failure semantics:
//   - Every authentication-time failure (unknown identifier, wrong
//     password, passwordless identity, inactive account) collapses into
//     ErrAuthenticationFailed. Storage failures propagate separately so
//     callers can distinguish bad credentials from an unavailable system.
//
// The identity store is a collaborator behind the IdentityStore interface;
// a Bun-backed implementation ships with the package along with schema
// helpers used by the seeder and tests.
package auth
