package netstamp

import (
	"path/filepath"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// BadgerDbType is the driver name of the badger backend.
	BadgerDbType = "badger"

	// BadgerDirName is the name of the badger directory inside the data
	// directory.
	BadgerDirName = "netstamp.badger"
)

// badgerBackend keeps the stamp in a badger instance.
type badgerBackend struct {
	db *badger.DB
}

func openBadger(dir string) (Backend, error) {
	path := filepath.Join(dir, BadgerDirName)

	opts := badger.DefaultOptions(path).WithLogger(badgerLogger{log})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return &badgerBackend{db: db}, nil
}

// badgerLogger routes badger's messages to the package logger.  Badger is
// chatty at info level about compactions, so those are demoted to debug.
type badgerLogger struct {
	*logrus.Entry
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.Entry.Debugf("badger: "+format, args...)
}

func (b *badgerBackend) Get(key []byte) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	return value, err
}

func (b *badgerBackend) Put(key, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

func (b *badgerBackend) Close() error {
	return b.db.Close()
}

func init() {
	mustRegisterDriver(Driver{
		DbType: BadgerDbType,
		Open:   openBadger,
	})
}
