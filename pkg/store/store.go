// Package store persists editor state across sessions in a bolt database.
package store

import (
	"fmt"
	"testing"
	"time"

	bolt "go.etcd.io/bbolt"

	"src.plugview.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[store] ")

// Bucket initializers, populated by init functions of the files that use
// them.
var initDB = map[string]func(*bolt.Tx) error{}

// Store is the persistent storage of plugview. Its methods are safe for
// concurrent use.
type Store struct {
	db *bolt.DB
}

// NewStore opens or creates the database at path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a Store from an open database, initializing the
// buckets it needs.
func NewStoreFromDB(db *bolt.DB) (*Store, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")

	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Store{db}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// MustTempStore returns a Store backed by a file in a temporary directory,
// closed when the test ends.
func MustTempStore(t testing.TB) *Store {
	t.Helper()
	st, err := NewStore(t.TempDir() + "/db")
	if err != nil {
		t.Fatalf("create temp store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}
