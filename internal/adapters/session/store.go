// Package session implements the file-backed session credential store and
// the watcher that reacts to external credential changes.
package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/zerr"

	"github.com/Kxvin1/life-dashboard/internal/core/domain"
	"github.com/Kxvin1/life-dashboard/internal/core/ports"
)

// Store implements ports.TokenStore on a single token file. The token is
// cached in memory after the first read; Reload drops the cache when the
// file changes underneath us.
type Store struct {
	path string

	mu     sync.Mutex
	cached *string
}

// NewStore creates a Store for the given token file path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Path returns the token file path.
func (s *Store) Path() string { return s.path }

// Token returns the current session token, or "" when no session exists.
func (s *Store) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return *s.cached, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			empty := ""
			s.cached = &empty
			return "", nil
		}
		return "", zerr.With(domain.ErrTokenReadFailed, "path", s.path)
	}

	token := strings.TrimSpace(string(data))
	s.cached = &token
	return token, nil
}

// Save persists a new session token with private file permissions.
func (s *Store) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(domain.ErrTokenWriteFailed, "path", s.path)
	}
	if err := atomicWriteFile(s.path, []byte(token+"\n")); err != nil {
		return zerr.With(domain.ErrTokenWriteFailed, "path", s.path)
	}

	s.cached = &token
	return nil
}

// Clear removes the session token. Clearing an absent token is not an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(domain.ErrTokenClearFailed, "path", s.path)
	}

	empty := ""
	s.cached = &empty
	return nil
}

// Reload drops the in-memory token cache so the next Token call re-reads the
// file. Called by the watcher when the file changes externally.
func (s *Store) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file
// in the same directory and renaming it over the target.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, "token-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.PrivateFilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

var _ ports.TokenStore = (*Store)(nil)
