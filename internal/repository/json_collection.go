package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// jsonCollection is one JSON array file. All access goes through the mutex,
// and writes replace the file atomically with a renamed temp file. Other
// processes writing the same file are not coordinated.
type jsonCollection[T any] struct {
	mu   sync.Mutex
	path string
}

func newJSONCollection[T any](path string) *jsonCollection[T] {
	return &jsonCollection[T]{path: path}
}

// all returns a snapshot of the collection.
func (c *jsonCollection[T]) all() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// update runs fn over the current items and persists the returned slice when
// fn reports a change. An error from fn aborts without writing.
func (c *jsonCollection[T]) update(fn func(items []T) ([]T, bool, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, changed, err := fn(c.load())
	if err != nil || !changed {
		return err
	}
	return c.save(items)
}

// load reads the file, creating it empty when missing. Unreadable or corrupt
// files are logged and read as empty.
func (c *jsonCollection[T]) load() []T {
	items := make([]T, 0)

	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := c.save(items); err != nil {
				log.Printf("Error initializing %s: %v", c.path, err)
			}
		} else {
			log.Printf("Error loading %s: %v", c.path, err)
		}
		return items
	}

	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("Error loading %s: %v", c.path, err)
		return make([]T, 0)
	}
	return items
}

func (c *jsonCollection[T]) save(items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", c.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", c.path, err)
	}
	return nil
}
