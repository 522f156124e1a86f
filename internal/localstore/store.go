package localstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger/v4"
	log "github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("record not found")

const sessionPrefix = "session/"

// Store is the on-disk record cache the sync loop reconciles with the remote store.
type Store struct {
	db *badger.DB
}

func Open(path string) (*Store, error) {
	return open(badger.DefaultOptions(path))
}

func OpenInMemory() (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*Store, error) {
	opts = opts.WithLogger(log.StandardLogger()).WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func recordKey(kind Kind, id string) []byte {
	return []byte(string(kind) + "/" + id)
}

// Put inserts or replaces the record with the same id.
func Put[T Record](ctx context.Context, s *Store, rec T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec.Key() == "" {
		return errors.New("record id is required")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(rec.Kind(), rec.Key()), data)
	})
}

func Get[T Record](ctx context.Context, s *Store, id string) (T, error) {
	var rec T
	if err := ctx.Err(); err != nil {
		return rec, err
	}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(rec.Kind(), id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	return rec, err
}

// List returns the records of kind T owned by the user inside the company.
// Company-wide kinds ignore userID.
func List[T Record](ctx context.Context, s *Store, userID, companyID string) ([]T, error) {
	var zero T
	_, wide := any(zero).(companyWide)
	prefix := []byte(string(zero.Kind()) + "/")

	items := []T{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var rec T
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}

			recUser, recCompany := rec.Owner()
			if recCompany != companyID || (!wide && recUser != userID) {
				continue
			}
			items = append(items, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) SaveSessionData(key, value string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(sessionPrefix+key), []byte(value))
	})
}

// GetSessionData returns "" when the key was never saved.
func (s *Store) GetSessionData(key string) (string, error) {
	var value string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(sessionPrefix + key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		value = string(raw)
		return nil
	})
	return value, err
}

func (s *Store) DeleteSessionData(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(sessionPrefix + key))
	})
}
