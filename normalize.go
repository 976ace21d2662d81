package auth

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeIdentifier canonicalizes an identifier for lookup: Unicode NFKC,
// surrounding whitespace removed, and full case folding for providers whose
// identifiers are case-insensitive by convention. Reserved providers (phone,
// sso) keep their case. The result depends only on the inputs, never on the
// process locale.
func NormalizeIdentifier(provider Provider, raw string) string {
	s := norm.NFKC.String(raw)
	s = strings.TrimSpace(s)

	if provider.caseInsensitive() {
		// cases.Caser carries state, so a fresh folder per call.
		s = cases.Fold().String(s)
	}

	return s
}
