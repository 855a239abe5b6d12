// Package cache stores parse results keyed by the digest of their
// source text, so a host reloading scripts can skip re-parsing
// unchanged sources.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"go.etcd.io/bbolt"
)

var ErrNotFound = errors.New("cache: not found")

// Cache is the read side used by consumers that never write.
type Cache interface {
	Get(string) ([]byte, error)
}

var bucket = []byte("scripts")

// Store is a bolt-backed Cache. A Store is safe for concurrent use.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the cache file at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the data stored under key, or ErrNotFound.
func (s *Store) Get(key string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucket).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		data = append(data, v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Put stores data under key, replacing any previous entry.
func (s *Store) Put(key string, data []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
}

// Key digests source text into a stable cache key.
func Key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
