// Package credstore persists the session credential. The token is the only
// durable piece of client state; everything else is re-fetched.
package credstore

import "context"

// credentialKey is the fixed name the token is stored under.
const credentialKey = "lake_token"

// Store holds at most one credential token. An empty token means logged out.
type Store interface {
	// Token returns the stored credential, or "" when none is stored.
	Token(ctx context.Context) (string, error)

	// Save replaces the stored credential.
	Save(ctx context.Context, token string) error

	// Clear removes the stored credential. Clearing an empty store is a
	// no-op.
	Clear(ctx context.Context) error
}
