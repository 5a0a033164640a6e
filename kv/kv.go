// Package kv defines the key-value blob store that backs the app store.
// Each state slice is serialized whole and saved under a fixed key on
// every change; there are no incremental diffs and no schema versioning.
// When several store instances share a backend, last writer wins.
package kv

import "context"

// Keys under which the five state slices are persisted. These match the
// original deployment's storage keys so existing data stays readable.
const (
	KeyProducts = "tunga_nakangaka_products"
	KeyUsers    = "tunga_nakangaka_users"
	KeyOrders   = "tunga_nakangaka_orders"
	KeyCart     = "tunga_nakangaka_cart"
	KeySession  = "tunga_nakangaka_currentUser"
)

// Store is the persistence contract the app store depends on. Load
// reports ok=false when the key has never been written. Save failures
// are non-fatal to callers: in-memory state stays authoritative.
type Store interface {
	Load(ctx context.Context, key string) (blob []byte, ok bool, err error)
	Save(ctx context.Context, key string, blob []byte) error
}
