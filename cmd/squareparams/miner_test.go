package main

import (
	"context"
	"testing"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/stretchr/testify/require"

	"github.com/squarecore/squared/blockhash"
	"github.com/squarecore/squared/chaincfg"
)

func TestSearchNonce(t *testing.T) {
	p, err := chaincfg.ParamsFor(chaincfg.RegTestName)
	require.NoError(t, err)

	for _, workers := range []int{1, 4} {
		template := genesisTemplate(p, 1700000000, 0x207fffff)
		result, err := searchNonce(context.Background(), template.Header,
			workers)
		require.NoError(t, err)

		require.Equal(t, blockhash.HeaderHash(&result.Header), result.Hash)
		target := blockchain.CompactToBig(0x207fffff)
		require.True(t, blockchain.HashToBig(&result.Hash).Cmp(target) <= 0)
		require.Equal(t, template.Header.MerkleRoot, result.Header.MerkleRoot)
		require.NotZero(t, result.Hashes)
	}
}

func TestSearchNonceLowestFirst(t *testing.T) {
	p, err := chaincfg.ParamsFor(chaincfg.RegTestName)
	require.NoError(t, err)

	// A single worker walks the nonces in order, so it can not pass the
	// compiled-in nonce, which is known to meet the target.
	genesis := p.GenesisBlock.Header
	template := genesisTemplate(p, uint32(genesis.Timestamp.Unix()),
		genesis.Bits)
	result, err := searchNonce(context.Background(), template.Header, 1)
	require.NoError(t, err)
	require.LessOrEqual(t, result.Header.Nonce, genesis.Nonce)

	// Scan in order for the first qualifying nonce.
	target := blockchain.CompactToBig(genesis.Bits)
	header := template.Header
	for header.Nonce = 0; ; header.Nonce++ {
		hash := blockhash.HeaderHash(&header)
		if blockchain.HashToBig(&hash).Cmp(target) <= 0 {
			break
		}
	}
	require.Equal(t, header.Nonce, result.Header.Nonce)
}

func TestSearchNonceCanceled(t *testing.T) {
	p, err := chaincfg.ParamsFor(chaincfg.RegTestName)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A target of one is out of reach.
	template := genesisTemplate(p, 1700000000, 0x03000001)
	_, err = searchNonce(ctx, template.Header, 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSearchNonceBadTarget(t *testing.T) {
	p, err := chaincfg.ParamsFor(chaincfg.RegTestName)
	require.NoError(t, err)

	template := genesisTemplate(p, 1700000000, 0)
	_, err = searchNonce(context.Background(), template.Header, 1)
	require.Error(t, err)
}

func TestMineGenesis(t *testing.T) {
	p, err := chaincfg.ParamsFor(chaincfg.RegTestName)
	require.NoError(t, err)

	block, err := mineGenesis(context.Background(), p, 1700000000,
		0x207fffff, 2)
	require.NoError(t, err)
	require.EqualValues(t, 1700000000, block.Header.Timestamp.Unix())
	require.EqualValues(t, 0x207fffff, block.Header.Bits)

	// The network's own genesis block is left alone.
	require.Equal(t, *p.GenesisHash, blockhash.BlockHash(p.GenesisBlock))
}
