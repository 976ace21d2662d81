package auth

// Provider identifies the channel an identity authenticates through.
type Provider string

const (
	// ProviderEmail authenticates with an email address.
	ProviderEmail Provider = "email"
	// ProviderUsername authenticates with a username.
	ProviderUsername Provider = "username"
	// ProviderRoom authenticates with a room code.
	ProviderRoom Provider = "room"
	// ProviderPhone is reserved for phone-number identities.
	ProviderPhone Provider = "phone"
	// ProviderSSO is reserved for federated identities.
	ProviderSSO Provider = "sso"
)

// IsValid checks if the provider is one of the predefined providers
func (p Provider) IsValid() bool {
	switch p {
	case ProviderEmail, ProviderUsername, ProviderRoom, ProviderPhone, ProviderSSO:
		return true
	default:
		return false
	}
}

// caseInsensitive reports whether identifiers under this provider are
// matched without regard to letter case.
func (p Provider) caseInsensitive() bool {
	switch p {
	case ProviderEmail, ProviderUsername, ProviderRoom:
		return true
	default:
		return false
	}
}

// DefaultProviderOrder returns the providers tried, in order, when a login
// attempt does not name a provider. First match wins; the order is part of
// the login contract (a string valid as both a username and a room code
// resolves to the username identity).
func DefaultProviderOrder() []Provider {
	return []Provider{
		ProviderEmail,
		ProviderUsername,
		ProviderRoom,
	}
}

// GetAllProviders returns every known provider, reserved ones included.
func GetAllProviders() []Provider {
	return []Provider{
		ProviderEmail,
		ProviderUsername,
		ProviderRoom,
		ProviderPhone,
		ProviderSSO,
	}
}

// ParseProvider safely parses a string into a Provider type
func ParseProvider(raw string) (Provider, bool) {
	provider := Provider(raw)
	return provider, provider.IsValid()
}
