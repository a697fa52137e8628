package cache

import (
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// FileIdentity identifies one version of a file on disk
type FileIdentity struct {
	Size    int64
	ModTime time.Time
}

// StatIdentity returns the current identity of the file at path
func StatIdentity(path string) (FileIdentity, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileIdentity{}, err
	}
	return FileIdentity{Size: info.Size(), ModTime: info.ModTime()}, nil
}

// FileCache caches values parsed from files. An entry is reused for as long as
// the file's identity is unchanged; concurrent loads of one path share a single read.
type FileCache[T any] struct {
	mu      sync.RWMutex
	entries map[string]fileEntry[T]
	group   singleflight.Group
}

type fileEntry[T any] struct {
	identity FileIdentity
	value    T
	loadedAt time.Time
}

// NewFileCache creates an empty FileCache
func NewFileCache[T any]() *FileCache[T] {
	return &FileCache[T]{entries: make(map[string]fileEntry[T])}
}

// Get returns the cached value for path, calling load when the file is new or changed.
func (c *FileCache[T]) Get(path string, load func(path string) (T, error)) (T, error) {
	var zero T
	id, err := StatIdentity(path)
	if err != nil {
		return zero, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	c.mu.RLock()
	entry, exists := c.entries[path]
	c.mu.RUnlock()
	if exists && entry.identity == id {
		return entry.value, nil
	}

	v, err, _ := c.group.Do(path, func() (any, error) {
		value, err := load(path)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[path] = fileEntry[T]{identity: id, value: value, loadedAt: time.Now()}
		c.mu.Unlock()
		return value, nil
	})
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// Clear drops every entry so the next Get of each path reads the file again
func (c *FileCache[T]) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]fileEntry[T])
	c.mu.Unlock()
}
