// Package creds persists the session credentials between runs.
//
// The durable state is exactly two strings, the login token and the
// username. They are written together on a successful signup/login and
// cleared together on logout; if either is missing the next start resumes
// anonymous.
package creds

import "context"

// Credentials is the persisted subset of a session.
type Credentials struct {
	Token    string
	Username string
}

// Complete reports whether both keys are present. An incomplete pair is
// treated the same as no session at all.
func (c Credentials) Complete() bool {
	return c.Token != "" && c.Username != ""
}

type Repository interface {
	// Load returns the stored credentials, zero-valued when absent.
	Load(ctx context.Context) (Credentials, error)

	// Save stores both keys atomically.
	Save(ctx context.Context, c Credentials) error

	// Clear wipes the stored credentials.
	Clear(ctx context.Context) error
}
