// Package jsonfile contains the concrete implementation of the
// persistence layer using one JSON file per collection. Every access to
// a collection is serialized behind its mutex and mutations rewrite the
// whole file atomically, so concurrent read-modify-write sequences can
// never lose an update.
package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"storefront/internal/errors"
)

// Store is the shared root of all collections: one data directory and
// one mutex per file. Repositories obtain their collection through it
// so two repositories backed by the same file share a lock.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create data directory")
	}

	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

func (s *Store) lockFor(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[name]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[name] = lock
	}

	return lock
}

// Collection is a typed view over one JSON file. Load reads the whole
// file; Update applies a mutation and rewrites the whole file while
// holding the collection lock.
type Collection[T any] struct {
	path string
	lock *sync.Mutex
}

// NewCollection binds a typed collection to <dir>/<name>.json.
func NewCollection[T any](store *Store, name string) *Collection[T] {
	filename := name + ".json"

	return &Collection[T]{
		path: filepath.Join(store.dir, filename),
		lock: store.lockFor(filename),
	}
}

// Load returns the current contents of the collection.
// A missing or empty file is an empty collection; a file that exists
// but cannot be parsed is a hard error, never silently treated as empty.
func (c *Collection[T]) Load() ([]T, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.read()
}

// Update runs fn on the current contents and persists its result
// atomically. fn returning an error aborts the write and propagates.
func (c *Collection[T]) Update(fn func(items []T) ([]T, error)) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	items, err := c.read()
	if err != nil {
		return err
	}

	updated, err := fn(items)
	if err != nil {
		return err
	}

	return c.write(updated)
}

func (c *Collection[T]) read() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}

		return nil, errors.Wrapf(err, "failed to read %s", c.path)
	}

	if len(data) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		// Corrupt data must fail loudly: returning an empty collection
		// here would let the next write destroy the file's contents.
		return nil, errors.Wrapf(err, "corrupt collection file %s", c.path)
	}

	return items, nil
}

func (c *Collection[T]) write(items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", c.path)
	}

	// Write to a temp file in the same directory and rename over the
	// target so readers never observe a half-written file.
	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file for %s", c.path)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "failed to write %s", c.path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "failed to close temp file for %s", c.path)
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "failed to replace %s", c.path)
	}

	return nil
}
