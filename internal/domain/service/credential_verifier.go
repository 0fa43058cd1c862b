// Package service defines domain-level service contracts implemented by the
// infrastructure layer.
package service

import (
	"time"

	"neocart/internal/domain/entity"
)

// CredentialClaims is the decoded payload of a bearer credential. Decoding is
// structural only; the commerce API is the authority on validity.
type CredentialClaims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// CredentialVerifier decodes a bearer credential. A decode failure destroys
// the credential: the session treats it exactly like a logout.
type CredentialVerifier interface {
	// Decode parses the credential and returns its claims, or an error when
	// the token is structurally invalid or expired.
	Decode(credential entity.Credential) (*CredentialClaims, error)
}
