package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// Entity provides generic keyed CRUD over one Badger key prefix.
// Records are JSON-encoded. An optional unique secondary index maps an
// alternate key to the primary ID.
type Entity[T any] struct {
	db        *badger.DB
	prefix    string
	indexName string
	indexKey  func(*T) string
}

// NewEntity creates an Entity for type T under the given key prefix.
func NewEntity[T any](db *DocStore, prefix string) *Entity[T] {
	return &Entity[T]{db: db.db, prefix: prefix}
}

// WithIndex adds a unique secondary index derived from the record.
func (e *Entity[T]) WithIndex(name string, keyFn func(*T) string) *Entity[T] {
	e.indexName = name
	e.indexKey = keyFn
	return e
}

// Create stores a new record under id. Returns ErrAlreadyExists when the
// primary key or the index key is taken.
func (e *Entity[T]) Create(ctx context.Context, id string, record *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal %s record: %w", e.prefix, err)
	}

	return e.db.Update(func(txn *badger.Txn) error {
		key := buildKey(e.prefix, id)
		defer releaseKey(key)

		if _, err := txn.Get(key); err == nil {
			return ErrAlreadyExists
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check existing key: %w", err)
		}

		if e.indexKey != nil {
			idxKey := buildIndexKey(e.prefix, e.indexName, e.indexKey(record))
			defer releaseKey(idxKey)
			if _, err := txn.Get(idxKey); err == nil {
				return ErrAlreadyExists
			} else if !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("check index key: %w", err)
			}
			if err := txn.Set(append([]byte(nil), idxKey...), []byte(id)); err != nil {
				return fmt.Errorf("set index key: %w", err)
			}
		}

		return txn.Set(append([]byte(nil), key...), data)
	})
}

// Get retrieves a record by primary ID. Returns ErrNotFound if absent.
func (e *Entity[T]) Get(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var record T
	err := e.db.View(func(txn *badger.Txn) error {
		key := buildKey(e.prefix, id)
		defer releaseKey(key)

		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get key: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByIndex retrieves a record through the secondary index.
func (e *Entity[T]) GetByIndex(ctx context.Context, value string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var id string
	err := e.db.View(func(txn *badger.Txn) error {
		idxKey := buildIndexKey(e.prefix, e.indexName, value)
		defer releaseKey(idxKey)

		item, err := txn.Get(idxKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id = string(val)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return e.Get(ctx, id)
}

// Delete removes a record and its index entry. Idempotent.
func (e *Entity[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.db.Update(func(txn *badger.Txn) error {
		key := buildKey(e.prefix, id)
		defer releaseKey(key)

		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get key: %w", err)
		}

		if e.indexKey != nil {
			var record T
			err = item.Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			})
			if err != nil {
				return err
			}
			idxKey := buildIndexKey(e.prefix, e.indexName, e.indexKey(&record))
			defer releaseKey(idxKey)
			if err := txn.Delete(append([]byte(nil), idxKey...)); err != nil {
				return fmt.Errorf("delete index key: %w", err)
			}
		}

		return txn.Delete(append([]byte(nil), key...))
	})
}

// List returns all records in key order, skipping index entries.
func (e *Entity[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []T
	err := e.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(e.prefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(e.prefix)); it.ValidForPrefix([]byte(e.prefix)); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			remainder := strings.TrimPrefix(string(it.Item().Key()), e.prefix)
			if strings.HasPrefix(remainder, "idx:") {
				continue
			}

			var record T
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			})
			if err != nil {
				return err
			}
			out = append(out, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
