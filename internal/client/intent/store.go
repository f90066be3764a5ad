// Package intent persists a single deferred navigation request on the
// client: the record of "the user tapped a notification before being
// authenticated", replayed once authentication completes.
package intent

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"
)

// storageKey is the single slot the pending intent occupies in the local
// key-value store. A new deferred tap overwrites the previous one.
const storageKey = "moment.pending_intent"

type keyValueStore interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// Intent is a deferred navigation request awaiting authentication.
type Intent struct {
	Type     string    `json:"type"`
	StoredAt time.Time `json:"stored_at"`
}

// Store is the client-local pending intent store.
type Store struct {
	kv keyValueStore
}

// NewStore creates a pending intent store over the given key-value store.
func NewStore(kv keyValueStore) *Store {
	return &Store{kv: kv}
}

// Put stores the intent, overwriting any prior one.
func (s *Store) Put(in Intent) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal intent: %w", err)
	}

	if err := s.kv.Set(storageKey, raw); err != nil {
		return fmt.Errorf("failed to store intent: %w", err)
	}

	return nil
}

// Take reads and clears the stored intent. The slot is cleared whether or
// not the caller ends up acting on the intent, so each stored intent is
// replayed at most once. A corrupt record is dropped and treated as
// absent.
func (s *Store) Take() (Intent, bool, error) {
	raw, ok, err := s.kv.Get(storageKey)
	if err != nil {
		return Intent{}, false, fmt.Errorf("failed to read intent: %w", err)
	}

	if !ok {
		return Intent{}, false, nil
	}

	if err := s.kv.Remove(storageKey); err != nil {
		return Intent{}, false, fmt.Errorf("failed to clear intent: %w", err)
	}

	var in Intent
	if err := json.Unmarshal(raw, &in); err != nil {
		zlog.Logger.Warn().Err(err).Msg("dropping corrupt pending intent")
		return Intent{}, false, nil
	}

	return in, true, nil
}
