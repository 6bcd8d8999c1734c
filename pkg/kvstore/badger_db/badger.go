// Package badger_db 以 BadgerDB 为介质的键值存储
package badger_db

import (
	badger "github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

type BadgerDB struct {
	db *badger.DB
}

func NewClient(path string) (*BadgerDB, error) {
	if path == "" {
		return nil, errors.New("badger_db: path is required")
	}
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "badger_db: open")
	}
	return &BadgerDB{db: db}, nil
}

func (s *BadgerDB) Get(key string) (string, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "badger_db: get %s", key)
	}
	return string(value), true, nil
}

func (s *BadgerDB) Set(key string, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return errors.Wrapf(err, "badger_db: set %s", key)
	}
	return nil
}

func (s *BadgerDB) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return errors.Wrapf(err, "badger_db: delete %s", key)
	}
	return nil
}

func (s *BadgerDB) Close() error {
	return s.db.Close()
}
