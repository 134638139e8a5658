package netstamp

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/squarecore/squared/chaincfg"
)

func mustParams(t *testing.T, name string) *chaincfg.Params {
	t.Helper()
	p, err := chaincfg.ParamsFor(name)
	require.NoError(t, err)
	return p
}

func TestCheck(t *testing.T) {
	main := mustParams(t, chaincfg.MainNetName)
	test := mustParams(t, chaincfg.TestNetName)
	regtest := mustParams(t, chaincfg.RegTestName)

	for _, dbType := range SupportedDrivers() {
		t.Run(dbType, func(t *testing.T) {
			dir := t.TempDir()

			store, err := OpenDriver(dbType, dir)
			require.NoError(t, err)

			_, err = store.Stamp()
			require.ErrorIs(t, err, ErrNotStamped)

			require.NoError(t, store.Check(main))
			require.NoError(t, store.Check(main))

			stamp, err := store.Stamp()
			require.NoError(t, err)
			require.Equal(t, "main", stamp.Name)
			require.Equal(t, chaincfg.MainNet, stamp.Net)
			require.Equal(t, *main.GenesisHash, stamp.GenesisHash)
			require.NoError(t, store.Close())

			// The stamp survives reopening and keeps other
			// networks out.
			store, err = OpenDriver(dbType, dir)
			require.NoError(t, err)
			defer store.Close()

			require.NoError(t, store.Check(main))
			err = store.Check(test)
			require.True(t, errors.Is(err, ErrNetworkMismatch), "%v", err)
			err = store.Check(regtest)
			require.True(t, errors.Is(err, ErrNetworkMismatch), "%v", err)

			stamp, err = store.Stamp()
			require.NoError(t, err)
			require.Equal(t, "main", stamp.Name)
		})
	}
}

// TestCheckSharedPrefixes makes sure test and regtest, which share address
// prefixes, are still told apart.
func TestCheckSharedPrefixes(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Check(mustParams(t, chaincfg.RegTestName)))
	err = store.Check(mustParams(t, chaincfg.TestNetName))
	require.ErrorIs(t, err, ErrNetworkMismatch)
}

func TestSupportedDrivers(t *testing.T) {
	require.Equal(t, []string{"badger", "bolt", "leveldb"}, SupportedDrivers())
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := OpenDriver("ffldb", t.TempDir())
	require.ErrorIs(t, err, ErrDbUnknownType)
}

func TestRegisterDuplicateDriver(t *testing.T) {
	err := RegisterDriver(Driver{DbType: BoltDbType, Open: openBolt})
	require.ErrorIs(t, err, ErrDbTypeRegistered)
}

func TestDecodeStamp(t *testing.T) {
	p := mustParams(t, chaincfg.TestNetName)
	want := stampFor(p)

	got, err := decodeStamp(want.encode())
	require.NoError(t, err)
	require.True(t, got.matches(want))

	tests := []struct {
		name string
		raw  []byte
	}{
		{"empty", nil},
		{"no name", want.encode()[:37]},
		{"bad version", append([]byte{9}, want.encode()[1:]...)},
	}
	for _, test := range tests {
		_, err := decodeStamp(test.raw)
		require.ErrorIs(t, err, ErrCorruptStamp, test.name)
	}
}

func TestCorruptStampReported(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.backend.Put(stampKey, []byte{1, 2, 3}))
	err = store.Check(mustParams(t, chaincfg.MainNetName))
	require.ErrorIs(t, err, ErrCorruptStamp)
}
