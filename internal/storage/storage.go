// Package storage persists audio blobs for the library endpoints.
//
// The Backend interface keeps the gateway decoupled from where bytes live;
// the default implementation uses the local filesystem. Metadata stays in
// PostgreSQL — only raw audio passes through here.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Backend defines the blob storage operations the library handlers use.
// Implementations must be safe for concurrent use.
type Backend interface {
	// Write stores the blob at the given key, creating parents as needed.
	Write(ctx context.Context, key string, r io.Reader) (int64, error)

	// Read retrieves the blob at the given key.
	Read(ctx context.Context, key string) ([]byte, error)

	// Delete removes the blob at the given key.
	Delete(ctx context.Context, key string) error

	// Exists checks whether a blob exists at the given key.
	Exists(ctx context.Context, key string) (bool, error)
}

// AudioKey builds the storage key for an uploaded audio file. Files without
// a project land under the "default" prefix.
func AudioKey(projectID, fileID, filename string) string {
	if projectID == "" {
		projectID = "default"
	}
	return fmt.Sprintf("projects/%s/audio/%s-%s", projectID, fileID, filename)
}

// Local implements Backend on the local filesystem. All keys are resolved
// relative to the configured root directory; traversal outside the root is
// rejected.
type Local struct {
	rootDir string
	mu      sync.RWMutex
}

// NewLocal creates a filesystem backend rooted at the given directory,
// creating it if needed.
func NewLocal(rootDir string) (*Local, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("storage: resolving root directory %q: %w", rootDir, err)
	}

	if err := os.MkdirAll(absRoot, 0o755); err != nil {
		return nil, fmt.Errorf("storage: creating root directory %q: %w", absRoot, err)
	}

	return &Local{rootDir: absRoot}, nil
}

// resolve maps a key to an absolute path inside the root.
func (l *Local) resolve(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: invalid key %q", key)
	}
	return filepath.Join(l.rootDir, cleaned), nil
}

func (l *Local) Write(ctx context.Context, key string, r io.Reader) (int64, error) {
	path, err := l.resolve(key)
	if err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("storage: creating parent directories for %q: %w", key, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("storage: creating %q: %w", key, err)
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		return n, fmt.Errorf("storage: writing %q: %w", key, err)
	}
	return n, nil
}

func (l *Local) Read(ctx context.Context, key string) ([]byte, error) {
	path, err := l.resolve(key)
	if err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("storage: reading %q: %w", key, err)
	}
	return data, nil
}

func (l *Local) Delete(ctx context.Context, key string) error {
	path, err := l.resolve(key)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: deleting %q: %w", key, err)
	}
	return nil
}

func (l *Local) Exists(ctx context.Context, key string) (bool, error) {
	path, err := l.resolve(key)
	if err != nil {
		return false, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	_, statErr := os.Stat(path)
	if statErr == nil {
		return true, nil
	}
	if os.IsNotExist(statErr) {
		return false, nil
	}
	return false, fmt.Errorf("storage: checking %q: %w", key, statErr)
}
