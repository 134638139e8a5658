package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/squarecore/squared/chaincfg"
	"github.com/squarecore/squared/netstamp"
)

func TestCheckStamp(t *testing.T) {
	testNet, err := chaincfg.ParamsFor(chaincfg.TestNetName)
	require.NoError(t, err)
	regTest, err := chaincfg.ParamsFor(chaincfg.RegTestName)
	require.NoError(t, err)

	cfg := &config{DataDir: t.TempDir(), DbType: netstamp.BoltDbType}
	require.NoError(t, checkStamp(cfg, testNet))
	require.NoError(t, checkStamp(cfg, testNet))

	// Test and regtest share address prefixes but not the directory.
	err = checkStamp(cfg, regTest)
	require.ErrorIs(t, err, netstamp.ErrNetworkMismatch)
}
