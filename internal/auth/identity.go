// Package auth owns the authenticated identity for a process. The identity
// provider is an external service; this package exposes its current result
// as an explicitly owned Session that consumers read as a snapshot and never
// mutate directly.
package auth

import "context"

// Identity is the minimal result consumed from the identity provider.
type Identity struct {
	// UID is the provider-assigned stable user ID.
	UID string

	// Email may be empty when the provider has no email on file.
	Email string
}

// Provider is the external identity service. Each operation is attempted
// once; errors carry the provider's human-readable message and are
// propagated verbatim.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (Identity, error)
	SignUp(ctx context.Context, email, password string) (Identity, error)
	SendPasswordReset(ctx context.Context, email string) error
}
