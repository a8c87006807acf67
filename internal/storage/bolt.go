package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ingdavann/bookverse-project/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var bucketCollections = []byte("collections")

// BoltStorage implements domain.Storage using BoltDB. Values are
// JSON-encoded. Reads are promoted into an in-memory cache; writes
// commit to disk first and only then refresh the cache, so a failed
// write never leaves a dirty in-memory view.
type BoltStorage struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	cache map[string][]byte
}

// Open opens (or creates) the store at dir/bookverse.db. An empty dir
// selects memory-only mode (no persistence), used by tests.
func Open(dir string) (*BoltStorage, error) {
	if dir == "" {
		return &BoltStorage{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "bookverse.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCollections)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStorage{db: db, cache: make(map[string][]byte)}, nil
}

func (s *BoltStorage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *BoltStorage) Get(key string, dest any) (bool, error) {
	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return true, decode(key, data, dest)
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false, nil
	}

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCollections)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return false, &domain.PersistenceError{Op: "get", Key: key, Err: err}
	}
	if data == nil {
		return false, nil
	}

	if err := decode(key, data, dest); err != nil {
		return false, err
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return true, nil
}

func (s *BoltStorage) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &domain.PersistenceError{Op: "set", Key: key, Err: err}
	}

	if s.db != nil {
		err = s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketCollections).Put([]byte(key), data)
		})
		if err != nil {
			return &domain.PersistenceError{Op: "set", Key: key, Err: err}
		}
	}

	// Refresh cache only after the write is durable
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return nil
}

func (s *BoltStorage) Delete(key string) error {
	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucketCollections)
			if b == nil {
				return nil
			}
			return b.Delete([]byte(key))
		})
		if err != nil {
			return &domain.PersistenceError{Op: "delete", Key: key, Err: err}
		}
	}

	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()

	return nil
}

// decode converts malformed stored data into a PersistenceError rather
// than propagating a corrupt or silently-empty value.
func decode(key string, data []byte, dest any) error {
	if err := json.Unmarshal(data, dest); err != nil {
		return &domain.PersistenceError{Op: "decode", Key: key, Err: err}
	}
	return nil
}
