package repo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// collection holds one entity list. With a path it is read from and written
// back to a JSON file wholesale on every call, so external edits to the file
// are picked up by the next read. Without a path it lives in memory.
type collection[T any] struct {
	mu    sync.Mutex
	path  string
	items []T
}

func newFileCollection[T any](dir, name string) *collection[T] {
	return &collection[T]{path: filepath.Join(dir, name+".json")}
}

func newMemoryCollection[T any](seed []T) *collection[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &collection[T]{items: items}
}

// load must be called with mu held.
func (c *collection[T]) load() ([]T, error) {
	if c.path == "" {
		out := make([]T, len(c.items))
		copy(out, c.items)
		return out, nil
	}

	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	items := []T{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.path, err)
	}
	return items, nil
}

// save must be called with mu held.
func (c *collection[T]) save(items []T) error {
	if c.path == "" {
		c.items = items
		return nil
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, c.path)
}

func (c *collection[T]) all() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// mutate loads the collection, applies fn and persists the result unless fn fails.
func (c *collection[T]) mutate(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return c.save(items)
}
