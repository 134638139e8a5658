package paramsrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/squarecore/squared/chaincfg"
)

const testProxy = "/square"

func newTestEngine(t *testing.T, network string) (*gin.Engine, *chaincfg.Params) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	p, err := chaincfg.ParamsFor(network)
	require.NoError(t, err)
	return NewRpc(p).NewEngine(testProxy, io.Discard), p
}

func get(t *testing.T, r *gin.Engine, path string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, testProxy+path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, path)
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), path)
	}
	return w
}

func TestHealth(t *testing.T) {
	r, p := newTestEngine(t, chaincfg.MainNetName)

	var resp HealthStatusResp
	w := get(t, r, "/health", &resp)
	require.Equal(t, "ok", resp.Status)
	require.Equal(t, "main", resp.Network)
	require.Equal(t, p.GenesisHash.String(), resp.GenesisHash)
	require.Equal(t, "*", w.Header().Get(ACCESS_CONTROL_ALLOW_ORIGIN))
}

func TestNetwork(t *testing.T) {
	tests := []struct {
		network      string
		magic        string
		messageStart string
		port         string
		pubKeyHashID byte
	}{
		{chaincfg.MainNetName, "dee1ecba", "bacee1de", "6666", 76},
		{chaincfg.TestNetName, "febceeec", "eceebcfe", "16666", 140},
		{chaincfg.RegTestName, "ddc8d2fa", "fad2c8dd", "16664", 140},
	}

	for _, test := range tests {
		r, _ := newTestEngine(t, test.network)

		var resp NetworkResp
		get(t, r, "/network", &resp)
		require.Equal(t, 0, resp.Code)
		require.Equal(t, test.network, resp.Data.Name)
		require.Equal(t, test.magic, resp.Data.Magic)
		require.Equal(t, test.messageStart, resp.Data.MessageStart)
		require.Equal(t, test.port, resp.Data.DefaultPort)
		require.Equal(t, test.pubKeyHashID, resp.Data.Prefixes.PubKeyHashAddrID)
	}
}

func TestGenesis(t *testing.T) {
	r, p := newTestEngine(t, chaincfg.MainNetName)

	var resp GenesisResp
	get(t, r, "/genesis", &resp)
	require.Equal(t, 0, resp.Code)
	require.Equal(t, "000009ce3dbc7226f90591453e668d25b37b019b6f1495d37470d43ed793055e",
		resp.Data.Hash)
	require.Equal(t, "6340383f63a22962bc62325640d75b3b634c7bfdde046093cde93201dbd1fae8",
		resp.Data.MerkleRoot)
	require.Equal(t, resp.Data.MerkleRoot, resp.Data.CoinbaseTxID)
	require.Equal(t, "1e0ffff0", resp.Data.Bits)
	require.EqualValues(t, 6219155, resp.Data.Nonce)
	require.EqualValues(t, 1517756773, resp.Data.Time)
	require.EqualValues(t, 1000000000, resp.Data.Reward)
	require.Len(t, resp.Data.HeaderHex, 160)
	require.Equal(t, p.GenesisBlock.SerializeSize(), resp.Data.Size)
}

func TestConsensus(t *testing.T) {
	r, _ := newTestEngine(t, chaincfg.RegTestName)

	var resp ConsensusResp
	get(t, r, "/consensus", &resp)
	require.Equal(t, 0, resp.Code)
	require.True(t, resp.Data.AllowMinDifficultyBlocks)
	require.True(t, resp.Data.NoRetargeting)
	require.EqualValues(t, 144, resp.Data.MinerConfirmationWindow)
	require.EqualValues(t, 150, resp.Data.TargetTimePerBlock)
	require.EqualValues(t, 86400, resp.Data.TargetTimespan)
	require.Equal(t, "207fffff", resp.Data.PowLimitBits)
	require.EqualValues(t, -1, resp.Data.BIP0034Height)
}

func TestDeployments(t *testing.T) {
	r, _ := newTestEngine(t, chaincfg.MainNetName)

	var all DeploymentsResp
	get(t, r, "/deployments", &all)
	require.Equal(t, 0, all.Code)
	require.Len(t, all.Data, int(chaincfg.DefinedDeployments))

	var one DeploymentResp
	get(t, r, "/deployment/dip0001", &one)
	require.Equal(t, 0, one.Code)
	require.Equal(t, "dip0001", one.Data.Name)
	require.EqualValues(t, 1, one.Data.Bit)
	require.EqualValues(t, 4032, one.Data.Window)
	require.EqualValues(t, 3226, one.Data.Threshold)

	var csv DeploymentResp
	get(t, r, "/deployment/csv", &csv)
	require.EqualValues(t, 2016, csv.Data.Window)
	require.EqualValues(t, 1916, csv.Data.Threshold)

	var unknown DeploymentResp
	get(t, r, "/deployment/segwit", &unknown)
	require.Equal(t, -1, unknown.Code)
	require.Contains(t, unknown.Msg, "unknown deployment")
	require.Nil(t, unknown.Data)
}

func TestCheckpointsAndSeeds(t *testing.T) {
	r, p := newTestEngine(t, chaincfg.MainNetName)

	var checkpoints CheckpointsResp
	get(t, r, "/checkpoints", &checkpoints)
	require.Len(t, checkpoints.Data.Checkpoints, 1)
	require.EqualValues(t, 0, checkpoints.Data.Checkpoints[0].Height)
	require.Equal(t, p.GenesisHash.String(), checkpoints.Data.Checkpoints[0].Hash)
	require.EqualValues(t, 1517756773, checkpoints.Data.TimeLastCheckpoint)

	var seeds SeedsResp
	get(t, r, "/seeds", &seeds)
	require.Len(t, seeds.Data.DNSSeeds, 1)
	require.Equal(t, "seeds.cryptoseeds.xyz", seeds.Data.DNSSeeds[0].Host)

	rt, _ := newTestEngine(t, chaincfg.RegTestName)
	var regSeeds SeedsResp
	get(t, rt, "/seeds", &regSeeds)
	require.Empty(t, regSeeds.Data.DNSSeeds)
	require.Empty(t, regSeeds.Data.FixedSeeds)
}

func TestStartStop(t *testing.T) {
	p, err := chaincfg.ParamsFor(chaincfg.RegTestName)
	require.NoError(t, err)

	// Grab a free port.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	rpc := NewRpc(p)
	require.NoError(t, rpc.Start(addr, testProxy, ""))

	resp, err := http.Get(fmt.Sprintf("http://%s%s/health", addr, testProxy))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The address is taken now.
	err = NewRpc(p).Start(addr, testProxy, "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "listen on "+addr)

	// Failures other than a busy port carry the same context.
	err = NewRpc(p).Start("127.0.0.1:notaport", testProxy, "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "listen on 127.0.0.1:notaport")
	require.NotContains(t, err.Error(), "in use")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, rpc.Stop(ctx))
}
