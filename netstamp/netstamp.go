// Package netstamp records which network a data directory belongs to and
// refuses to reuse the directory for another one.
//
// The stamp holds the network name, its magic and its genesis hash.  It is
// written the first time a directory is opened for a network and compared on
// every later start, so a node started with the wrong network flags fails
// before it touches any chain data.
package netstamp

import (
	"bytes"
	"encoding/binary"
	"os"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/pkg/errors"

	"github.com/squarecore/squared/chaincfg"
)

// DefaultDbType is the backend Open uses.
const DefaultDbType = BoltDbType

var (
	// ErrNetworkMismatch indicates the data directory is stamped for a
	// different network.
	ErrNetworkMismatch = errors.New("data directory belongs to another network")

	// ErrNotStamped indicates the data directory carries no stamp yet.
	ErrNotStamped = errors.New("data directory is not stamped")

	// ErrCorruptStamp indicates the stored stamp cannot be decoded.
	ErrCorruptStamp = errors.New("corrupt network stamp")
)

// stampKey is the key the stamp is stored under.
var stampKey = []byte("network")

// stampVersion is the encoding version of a stored stamp.
const stampVersion = 1

// Stamp identifies the network a data directory belongs to.
type Stamp struct {
	Name        string
	Net         wire.BitcoinNet
	GenesisHash chainhash.Hash
}

// stampFor returns the stamp of the network described by p.
func stampFor(p *chaincfg.Params) *Stamp {
	return &Stamp{
		Name:        p.Name,
		Net:         p.Net,
		GenesisHash: *p.GenesisHash,
	}
}

// matches reports whether two stamps identify the same network.
func (s *Stamp) matches(other *Stamp) bool {
	return s.Name == other.Name && s.Net == other.Net &&
		s.GenesisHash == other.GenesisHash
}

// encode serializes the stamp as version, magic, genesis hash and name.
func (s *Stamp) encode() []byte {
	var buf bytes.Buffer
	buf.Grow(1 + 4 + chainhash.HashSize + len(s.Name))
	buf.WriteByte(stampVersion)
	var magic [4]byte
	binary.LittleEndian.PutUint32(magic[:], uint32(s.Net))
	buf.Write(magic[:])
	buf.Write(s.GenesisHash[:])
	buf.WriteString(s.Name)
	return buf.Bytes()
}

// decodeStamp parses a stamp serialized by encode.
func decodeStamp(b []byte) (*Stamp, error) {
	const fixed = 1 + 4 + chainhash.HashSize
	if len(b) <= fixed {
		return nil, errors.Wrapf(ErrCorruptStamp, "length %d", len(b))
	}
	if b[0] != stampVersion {
		return nil, errors.Wrapf(ErrCorruptStamp, "version %d", b[0])
	}
	s := &Stamp{
		Net:  wire.BitcoinNet(binary.LittleEndian.Uint32(b[1:5])),
		Name: string(b[fixed:]),
	}
	copy(s.GenesisHash[:], b[5:fixed])
	return s, nil
}

// Store is an open network stamp of a data directory.
type Store struct {
	backend Backend
	dir     string
}

// Open opens the stamp of the data directory dir with the default backend,
// creating the directory when needed.
func Open(dir string) (*Store, error) {
	return OpenDriver(DefaultDbType, dir)
}

// OpenDriver opens the stamp of the data directory dir with the backend
// registered as dbType.
func OpenDriver(dbType, dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrapf(err, "create data directory %s", dir)
	}
	backend, err := openBackend(dbType, dir)
	if err != nil {
		return nil, err
	}
	return &Store{backend: backend, dir: dir}, nil
}

// Stamp returns the stamp stored in the data directory, or ErrNotStamped.
func (s *Store) Stamp() (*Stamp, error) {
	raw, err := s.backend.Get(stampKey)
	if err != nil {
		return nil, errors.Wrap(err, "read network stamp")
	}
	if raw == nil {
		return nil, ErrNotStamped
	}
	return decodeStamp(raw)
}

// Check stamps the data directory for the network described by p when it has
// no stamp yet, and otherwise verifies the existing stamp names the same
// network.  A stamp for another network yields ErrNetworkMismatch.
func (s *Store) Check(p *chaincfg.Params) error {
	want := stampFor(p)

	have, err := s.Stamp()
	switch {
	case errors.Is(err, ErrNotStamped):
		if err := s.backend.Put(stampKey, want.encode()); err != nil {
			return errors.Wrap(err, "write network stamp")
		}
		log.Infof("Stamped data directory %s for the %s network", s.dir,
			want.Name)
		return nil

	case err != nil:
		return err
	}

	if !have.matches(want) {
		return errors.Wrapf(ErrNetworkMismatch, "%s is stamped for %s "+
			"(magic %08x, genesis %v), not %s (magic %08x, genesis %v)",
			s.dir, have.Name, uint32(have.Net), have.GenesisHash,
			want.Name, uint32(want.Net), want.GenesisHash)
	}
	log.Debugf("Data directory %s matches the %s network", s.dir, want.Name)
	return nil
}

// Close releases the backend of the store.
func (s *Store) Close() error {
	return s.backend.Close()
}
