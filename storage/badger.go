package storage

import (
	"errors"
	"log/slog"

	domainerrors "gantt-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/shirou/gopsutil/disk"
)

// keyPrefix namespaces every key so Clear never touches foreign data
// sharing the same database.
const keyPrefix = "gantt:"

const probeKey = keyPrefix + "__probe__"

// BadgerStore implements Service on top of BadgerDB. A quota of zero means
// "no configured limit"; the store then reports usage against the free disk
// space of its directory instead.
type BadgerStore struct {
	db    *badger.DB
	dir   string
	quota int64
	log   *slog.Logger
}

func NewBadgerStore(db *badger.DB, dir string, quotaBytes int64, log *slog.Logger) *BadgerStore {
	return &BadgerStore{db: db, dir: dir, quota: quotaBytes, log: log}
}

func (s *BadgerStore) Get(key string) ([]byte, bool, error) {
	if s.db.IsClosed() {
		return nil, false, &domainerrors.StorageUnavailableError{}
	}
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, mapBadgerError(err)
	}
	return value, true, nil
}

func (s *BadgerStore) Set(key string, value []byte) error {
	if s.db.IsClosed() {
		return &domainerrors.StorageUnavailableError{}
	}
	if s.quota > 0 {
		usage, err := s.Usage()
		if err != nil {
			return err
		}
		if usage.Used+int64(len(value)) > s.quota {
			s.log.Warn("write refused, quota exhausted",
				"key", key, "used", usage.Used, "quota", s.quota)
			return &domainerrors.QuotaExceededError{}
		}
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+key), value)
	})
	return mapBadgerError(err)
}

func (s *BadgerStore) Remove(key string) error {
	if s.db.IsClosed() {
		return &domainerrors.StorageUnavailableError{}
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + key))
	})
	return mapBadgerError(err)
}

// Clear drops only the namespaced keys, not the whole database.
func (s *BadgerStore) Clear() error {
	if s.db.IsClosed() {
		return &domainerrors.StorageUnavailableError{}
	}
	return mapBadgerError(s.db.DropPrefix([]byte(keyPrefix)))
}

// IsAvailable probes the database with a read transaction.
func (s *BadgerStore) IsAvailable() bool {
	if s.db.IsClosed() {
		return false
	}
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(probeKey))
		return err
	})
	return err == nil || errors.Is(err, badger.ErrKeyNotFound)
}

// Usage combines Badger's on-disk size with either the configured quota or
// the free space of the backing directory.
func (s *BadgerStore) Usage() (Usage, error) {
	if s.db.IsClosed() {
		return Usage{}, &domainerrors.StorageUnavailableError{}
	}
	lsm, vlog := s.db.Size()
	used := lsm + vlog

	capacity := s.quota
	if capacity == 0 {
		stat, err := disk.Usage(s.dir)
		if err != nil {
			return Usage{}, err
		}
		capacity = used + int64(stat.Free)
	}

	percentage := 0.0
	if capacity > 0 {
		percentage = float64(used) / float64(capacity) * 100
		if percentage > 100 {
			percentage = 100
		}
	}
	return Usage{
		Used:       used,
		Available:  capacity - used,
		Percentage: percentage,
	}, nil
}

func mapBadgerError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, badger.ErrTxnTooBig):
		return &domainerrors.QuotaExceededError{}
	case errors.Is(err, badger.ErrDBClosed), errors.Is(err, badger.ErrBlockedWrites):
		return &domainerrors.StorageUnavailableError{}
	default:
		return err
	}
}
