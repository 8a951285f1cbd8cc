// Package tuplestore provides a sorted key-value store with tuple keys and
// byte values, the storage shape the databuf compiler targets: a table's
// compound key becomes a key tuple and scans walk a tuple prefix in key
// order. The in-memory store is the reference implementation; the SQLite
// store offers the same contract with persistence.
package tuplestore

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"github.com/databuf-xyz/go-databuf/tuplekey"
)

// Entry is one key-value pair returned by a scan.
type Entry struct {
	Key   tuplekey.Tuple
	Value []byte
}

// Store is a tuple-keyed byte store with ordered prefix scans.
type Store interface {
	// Get returns the value stored under key, or nil when absent.
	Get(ctx context.Context, key tuplekey.Tuple) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key tuplekey.Tuple, value []byte) error

	// Scan returns every entry whose key begins with prefix, in ascending
	// key order. An empty prefix returns the whole store.
	Scan(ctx context.Context, prefix tuplekey.Tuple) ([]Entry, error)

	// Close releases any resources held by the store.
	Close() error
}

// MemoryStore keeps all entries in memory. Safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte // packed key -> value
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key tuplekey.Tuple) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[string(tuplekey.Pack(key))]
	if !ok {
		return nil, nil
	}
	return bytes.Clone(value), nil
}

func (s *MemoryStore) Put(ctx context.Context, key tuplekey.Tuple, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[string(tuplekey.Pack(key))] = bytes.Clone(value)
	return nil
}

func (s *MemoryStore) Scan(ctx context.Context, prefix tuplekey.Tuple) ([]Entry, error) {
	packed := string(tuplekey.Pack(prefix))

	s.mu.RLock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		if len(k) >= len(packed) && k[:len(packed)] == packed {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		tup, err := tuplekey.Unpack([]byte(k))
		if err != nil {
			s.mu.RUnlock()
			return nil, err
		}
		entries = append(entries, Entry{Key: tup, Value: bytes.Clone(s.data[k])})
	}
	s.mu.RUnlock()
	return entries, nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
