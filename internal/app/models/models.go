package models

// AuthProvider identifies how a student account authenticates.
type AuthProvider string

const (
	// ProviderLocal means the account uses an email/password credential.
	ProviderLocal AuthProvider = "local"
	// ProviderGoogle means the account is linked to a Google identity.
	ProviderGoogle AuthProvider = "google"
	// ProviderApple means the account is linked to an Apple identity.
	ProviderApple AuthProvider = "apple"
)

// Valid reports whether p is one of the known providers.
func (p AuthProvider) Valid() bool {
	switch p {
	case ProviderLocal, ProviderGoogle, ProviderApple:
		return true
	}
	return false
}
