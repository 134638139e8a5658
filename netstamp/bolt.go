package netstamp

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

const (
	// BoltDbType is the driver name of the bbolt backend.
	BoltDbType = "bolt"

	// BoltFileName is the name of the bbolt file inside the data directory.
	BoltFileName = "netstamp.db"

	// boltTimeout bounds the wait for the file lock held by another
	// process.
	boltTimeout = time.Second
)

var stampBucket = []byte("netstamp")

// fileMode returns the permissions of newly created stamp files.
func fileMode() os.FileMode {
	if runtime.GOOS == "windows" {
		return 0666
	}
	return 0600
}

// boltBackend keeps the stamp in a single bucket of a bbolt file.
type boltBackend struct {
	db *bolt.DB
}

func openBolt(dir string) (Backend, error) {
	path := filepath.Join(dir, BoltFileName)
	log.Debugf("Opening Bolt DB:path = %s", path)

	db, err := bolt.Open(path, fileMode(), &bolt.Options{
		Timeout: boltTimeout,
	})
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errors.New("cannot obtain database lock, " +
				"database may be in use by another process")
		}
		return nil, errors.Wrapf(err, "open %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(stampBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &boltBackend{db: db}, nil
}

func (b *boltBackend) Get(key []byte) ([]byte, error) {
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		// Values are only valid for the life of the transaction.
		if v := tx.Bucket(stampBucket).Get(key); v != nil {
			value = append([]byte(nil), v...)
		}
		return nil
	})
	return value, err
}

func (b *boltBackend) Put(key, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stampBucket).Put(key, value)
	})
}

func (b *boltBackend) Close() error {
	return b.db.Close()
}

func init() {
	mustRegisterDriver(Driver{
		DbType: BoltDbType,
		Open:   openBolt,
	})
}
