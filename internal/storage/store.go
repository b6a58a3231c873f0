// Package storage implements the namespaced key-value store backing all
// entity collections. Every value is a single JSON document; collections are
// always read and written wholesale. Failures never propagate as errors:
// reads report absence, writes report a boolean result, and the cause goes to
// the log.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"ripple/internal/observability"
)

// Storage keys for the persisted collections.
const (
	KeyUsers           = "users"
	KeyPosts           = "posts"
	KeyComments        = "comments"
	KeyMessages        = "messages"
	KeyNotifications   = "notifications"
	KeyCurrentUser     = "currentUser"
	KeyDataInitialized = "dataInitialized"
)

// DefaultPrefix namespaces this application's keys within a shared directory.
const DefaultPrefix = "socialapp_"

// Store is a namespaced JSON key-value store over a filesystem. The mutex
// makes the owning process the single writer; there is no cross-key
// atomicity, so a crash between two related writes can leave them
// inconsistent.
type Store struct {
	mu     sync.Mutex
	fs     afero.Fs
	dir    string
	prefix string
	log    *observability.Logger
}

// New returns a Store rooted at dir on fs. Keys are prefixed with prefix;
// pass DefaultPrefix unless the directory is shared with another namespace.
func New(fs afero.Fs, dir, prefix string) *Store {
	s := &Store{
		fs:     fs,
		dir:    dir,
		prefix: prefix,
		log:    observability.GlobalLogger,
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		s.log.StorageError("mkdir", dir, err)
	}
	return s
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, s.prefix+key+".json")
}

// Get reads the value stored under key into out. It returns false when the
// key is absent or the stored document cannot be decoded; out is left
// untouched in that case.
func (s *Store) Get(key string, out interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.StorageError("get", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.StorageError("decode", key, err)
		return false
	}
	return true
}

// Set stores value under key, replacing any previous document. It returns
// false when the value cannot be serialized or written.
func (s *Store) Set(key string, value interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		s.log.StorageError("encode", key, err)
		return false
	}
	if err := afero.WriteFile(s.fs, s.path(key), data, 0o644); err != nil {
		s.log.StorageError("set", key, err)
		return false
	}
	return true
}

// Remove deletes the value stored under key. Removing an absent key succeeds.
func (s *Store) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.log.StorageError("remove", key, err)
		return false
	}
	return true
}

// Clear removes every key in this store's namespace.
func (s *Store) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	names, err := s.list()
	if err != nil {
		s.log.StorageError("clear", s.dir, err)
		return false
	}
	ok := true
	for _, name := range names {
		if err := s.fs.Remove(filepath.Join(s.dir, name)); err != nil {
			s.log.StorageError("clear", name, err)
			ok = false
		}
	}
	return ok
}

// Size returns the total number of bytes persisted in this store's namespace.
func (s *Store) Size() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	names, err := s.list()
	if err != nil {
		s.log.StorageError("size", s.dir, err)
		return 0
	}
	var total int64
	for _, name := range names {
		info, err := s.fs.Stat(filepath.Join(s.dir, name))
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total
}

// list returns the file names in the store directory that belong to this
// namespace. Callers must hold the mutex.
func (s *Store) list() ([]string, error) {
	infos, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		name := info.Name()
		if len(name) > len(s.prefix) && name[:len(s.prefix)] == s.prefix {
			names = append(names, name)
		}
	}
	return names, nil
}
