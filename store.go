package swt

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

// ErrTokenNotFound is returned by TokenStore.Load when no live token
// exists under the given ID.
var ErrTokenNotFound = errors.New("swt: token not found")

// TokenStore persists issued wire strings keyed by an opaque ID, for
// callers that track tokens server-side (session stores, one-time
// links). It is an external collaborator: nothing in the signing core
// reads or writes a store, and a loaded wire string is as untrusted as
// any other — Parse and IsValid still apply.
type TokenStore interface {
	// Save stores wire under id for ttl. ttl must be positive.
	Save(ctx context.Context, id string, wire string, ttl time.Duration) error

	// Load returns the wire string stored under id, or ErrTokenNotFound.
	Load(ctx context.Context, id string) (string, error)

	// Delete removes the token stored under id, if any.
	Delete(ctx context.Context, id string) error

	// Exists reports whether a live token is stored under id.
	Exists(ctx context.Context, id string) (bool, error)
}

// hashStoreKey derives the storage key for a token ID so raw IDs never
// appear verbatim in the backing store.
func hashStoreKey(id string) string {
	sum := sha256.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])
}
