package entity

// Credential is the opaque bearer token issued by the commerce API after a
// federated login exchange. Its presence is the sole gate for any cart or
// wishlist mutation.
type Credential string

// IsZero reports whether no credential is held.
func (c Credential) IsZero() bool {
	return c == ""
}

// String returns the raw token. Callers must not log it; use Redacted.
func (c Credential) String() string {
	return string(c)
}

// Redacted returns a log-safe representation of the credential.
func (c Credential) Redacted() string {
	if len(c) <= 8 {
		return "***"
	}

	return string(c[:8]) + "..."
}
