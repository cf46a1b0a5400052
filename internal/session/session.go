// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

// package session holds the authentication token between invocations. The
// token is an opaque bearer credential: it is stored and attached to
// requests verbatim, never parsed or validated on the client. Exactly one
// slot exists; storing overwrites, clearing is idempotent.
package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/legend-score/lscli/internal/logging"
)

// tokenFileName is the single well-known slot the token lives under,
// matching the backend's "auth_token" credential name.
const tokenFileName = "auth_token"

// Backend is the durable storage behind a Store. Implementations must treat
// a missing slot as ("", nil), not as an error.
type Backend interface {
	Write(token string) error
	Read() (string, error)
	Remove() error
}

// Store is the session store: one token slot over an injectable backend so
// tests can substitute in-memory storage for the real file.
type Store struct {
	mu      sync.Mutex
	backend Backend
}

// NewStore creates a session store over the given backend.
func NewStore(b Backend) *Store {
	return &Store{backend: b}
}

// Store persists the token, overwriting any prior value. The token's shape
// is not validated.
func (s *Store) Store(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Write(token)
}

// Read returns the persisted token and whether one is present. Backend
// failures are logged and reported as "no token" so callers never have to
// branch on storage errors just to ask whether a session exists.
func (s *Store) Read() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, err := s.backend.Read()
	if err != nil {
		logging.Debugf("session: read failed: %v", err)
		return "", false
	}
	if token == "" {
		return "", false
	}
	return token, true
}

// Clear removes the persisted token. Clearing an already-empty store is a
// no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Remove()
}

// IsAuthenticated reports whether a token is present. It is a pure
// predicate over the store and never errors.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Read()
	return ok
}

// FileBackend persists the token as a single file under the user config
// directory, so a session survives process restarts.
type FileBackend struct {
	path string
}

// NewFileBackend creates a file backend rooted at os.UserConfigDir()/lscli.
func NewFileBackend() (*FileBackend, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &FileBackend{path: filepath.Join(configDir, "lscli", tokenFileName)}, nil
}

// NewFileBackendAt creates a file backend with an explicit slot path.
func NewFileBackendAt(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Write persists the token with owner-only permissions.
func (b *FileBackend) Write(token string) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0700); err != nil {
		return err
	}
	return os.WriteFile(b.path, []byte(token), 0600)
}

// Read returns the stored token, or "" if the slot does not exist.
func (b *FileBackend) Read() (string, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Remove deletes the slot. A missing slot is not an error.
func (b *FileBackend) Remove() error {
	err := os.Remove(b.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// MemoryBackend is an in-memory token slot for tests.
type MemoryBackend struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Write stores the token in memory.
func (b *MemoryBackend) Write(token string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.token = token
	return nil
}

// Read returns the stored token, "" when empty.
func (b *MemoryBackend) Read() (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.token, nil
}

// Remove clears the slot.
func (b *MemoryBackend) Remove() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.token = ""
	return nil
}
