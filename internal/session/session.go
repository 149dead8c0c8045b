// Package session mints the anonymous session token that scopes a
// shopper's cart. The token is unrelated to authenticated user identity;
// the client persists it and replays it in the X-Session-ID header.
package session

import "github.com/google/uuid"

// NewSessionID mints a random session token.
func NewSessionID() string {
	return uuid.NewString()
}
