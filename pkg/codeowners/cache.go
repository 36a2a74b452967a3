package codeowners

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/ownerscan/codeowners/pkg/core/logging"
)

// cacheEntry is the on-disk shape of one cached annotation parse.
type cacheEntry struct {
	Timestamp int64   `json:"timestamp"`
	Owner     *string `json:"owner"`
}

// Cache is a pluggable key/value store for annotation parses, keyed by
// absolute path with a stored mtime. The annotation cache is the only
// shared mutable state in this system (§5).
type Cache interface {
	// Get returns the cached owner for path if the cache holds an
	// entry whose stored mtime equals mtime.
	Get(path string, mtime int64) (owner string, ok bool)
	// Put records owner (possibly NoOwner) for path at mtime.
	Put(path string, mtime int64, owner string)
	// Persist writes the cache to its backing store.
	Persist() error
	// Delete removes the backing store.
	Delete() error
}

// fileCache is a JSON file backed Cache guarded by a single mutex; a
// corrupted file on load is treated as empty, per §5/§7 (ErrCacheCorrupt
// is silent — callers never see it).
type fileCache struct {
	mu      sync.RWMutex
	path    string
	entries map[string]cacheEntry
	logger  *logging.Logger
}

// NewFileCache opens (or prepares to create) a JSON cache file at
// filepath.Join(cacheDirectory, "project-file-cache.json").
func NewFileCache(cacheDirectory string) Cache {
	path := filepath.Join(cacheDirectory, "project-file-cache.json")
	c := &fileCache{
		path:    path,
		entries: make(map[string]cacheEntry),
		logger:  logging.Default().WithOperation("annotation-cache"),
	}
	c.load()
	return c
}

func (c *fileCache) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return
	}
	var entries map[string]cacheEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		c.logger.Warn("discarding corrupt annotation cache", "path", c.path, "error", err)
		return
	}
	c.entries = entries
}

func (c *fileCache) Get(path string, mtime int64) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[path]
	if !ok || e.Timestamp != mtime {
		return "", false
	}
	if e.Owner == nil {
		return NoOwner, true
	}
	return *e.Owner, true
}

func (c *fileCache) Put(path string, mtime int64, owner string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var o *string
	if owner != NoOwner {
		o = &owner
	}
	c.entries[path] = cacheEntry{Timestamp: mtime, Owner: o}
}

func (c *fileCache) Persist() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(c.entries)
	if err != nil {
		return err
	}
	runID := uuid.New().String()
	c.logger.Debug("persisting annotation cache", "path", c.path, "entries", len(c.entries), "run_id", runID)

	f, err := os.OpenFile(c.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(data)
	return err
}

func (c *fileCache) Delete() error {
	err := os.Remove(c.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// noopCache is the null implementation used for --no-cache / CI.
type noopCache struct{}

// NewNoopCache returns a Cache that never remembers anything.
func NewNoopCache() Cache { return noopCache{} }

func (noopCache) Get(string, int64) (string, bool) { return "", false }
func (noopCache) Put(string, int64, string)         {}
func (noopCache) Persist() error                    { return nil }
func (noopCache) Delete() error                     { return nil }
