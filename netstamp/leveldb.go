package netstamp

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldbErrors "github.com/syndtr/goleveldb/leveldb/errors"
)

const (
	// LevelDbType is the driver name of the goleveldb backend.
	LevelDbType = "leveldb"

	// LevelDirName is the name of the leveldb directory inside the data
	// directory.
	LevelDirName = "netstamp.ldb"
)

// levelBackend keeps the stamp in a leveldb instance.
type levelBackend struct {
	ldb *leveldb.DB
}

func openLevel(dir string) (Backend, error) {
	path := filepath.Join(dir, LevelDirName)

	// Open leveldb. If it doesn't exist, create it.
	ldb, err := leveldb.OpenFile(path, nil)

	// If the database is corrupted, attempt to recover.
	if _, corrupted := err.(*ldbErrors.ErrCorrupted); corrupted {
		log.Warnf("LevelDB corruption detected for path %s: %s",
			path, err)
		ldb, err = leveldb.RecoverFile(path, nil)
		if err != nil {
			return nil, err
		}
		log.Warnf("LevelDB recovered from corruption for path %s",
			path)
	}

	// If the database cannot be opened for any other
	// reason, return the error as-is.
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return &levelBackend{ldb: ldb}, nil
}

func (l *levelBackend) Get(key []byte) ([]byte, error) {
	data, err := l.ldb.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	}
	return data, err
}

func (l *levelBackend) Put(key, value []byte) error {
	return l.ldb.Put(key, value, nil)
}

func (l *levelBackend) Close() error {
	return l.ldb.Close()
}

func init() {
	mustRegisterDriver(Driver{
		DbType: LevelDbType,
		Open:   openLevel,
	})
}
