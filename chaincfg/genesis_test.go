// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/squarecore/squared/blockhash"
)

// genesisCoinbaseScriptHex is the signature script of the genesis coinbase
// shared by every network.
const genesisCoinbaseScriptHex = "04ffff001d0104" + "3f" +
	"30342e30322e32303138202d20426974636f696e20696e766573746f72732066" +
	"696e64207461782064656d616e647320617265206e6f74207669727475616c"

// TestGenesisBlock tests the genesis block of each network for validity by
// checking the encoded hashes.
func TestGenesisBlock(t *testing.T) {
	tests := []struct {
		name      string
		build     func() *Params
		wantHash  string
		wantTime  int64
		wantNonce uint32
		wantBits  uint32
	}{
		{
			name:      "main",
			build:     mainNetParams,
			wantHash:  "000009ce3dbc7226f90591453e668d25b37b019b6f1495d37470d43ed793055e",
			wantTime:  1517756773,
			wantNonce: 6219155,
			wantBits:  0x1e0ffff0,
		},
		{
			name:      "test",
			build:     testNetParams,
			wantHash:  "000001f59bc87b58d6aa505b724e84b7df9ddafee7269bde78fe712654e6d2ea",
			wantTime:  1517756706,
			wantNonce: 1388910,
			wantBits:  0x1e0ffff0,
		},
		{
			name:      "regtest",
			build:     regTestParams,
			wantHash:  "51554a115eec116070417085ae9e35f5b13a59b5dc30c3b5628e14ba2279cb78",
			wantTime:  1517756649,
			wantNonce: 16,
			wantBits:  0x207fffff,
		},
	}

	for _, test := range tests {
		params := test.build()
		block := params.GenesisBlock
		header := &block.Header

		if header.Timestamp.Unix() != test.wantTime ||
			header.Nonce != test.wantNonce ||
			header.Bits != test.wantBits || header.Version != 1 {

			t.Errorf("%s: unexpected genesis header: %v", test.name,
				spew.Sdump(header))
			continue
		}

		hash := blockhash.BlockHash(block)
		if hash.String() != test.wantHash {
			t.Errorf("%s: genesis block hash does not appear valid - "+
				"got %v, want %v", test.name, hash, test.wantHash)
		}
		if !params.GenesisHash.IsEqual(&hash) {
			t.Errorf("%s: genesis hash field %v does not match block "+
				"hash %v", test.name, params.GenesisHash, hash)
		}
		if header.MerkleRoot.String() != genesisMerkleRoot.String() {
			t.Errorf("%s: merkle root mismatch - got %v, want %v",
				test.name, header.MerkleRoot, genesisMerkleRoot)
		}
		if !header.PrevBlock.IsEqual(&zeroHash) {
			t.Errorf("%s: previous block hash is %v, want zero",
				test.name, header.PrevBlock)
		}
	}
}

var zeroHash chainhash.Hash

// TestGenesisCoinbase checks the serialized pieces of the genesis coinbase.
func TestGenesisCoinbase(t *testing.T) {
	block := createGenesisBlock(1517756773, 6219155, 0x1e0ffff0, 1,
		genesisReward)
	if len(block.Transactions) != 1 {
		t.Fatalf("genesis has %d transactions, want 1",
			len(block.Transactions))
	}
	coinbase := block.Transactions[0]

	if len(coinbase.TxIn) != 1 || len(coinbase.TxOut) != 1 {
		t.Fatalf("unexpected coinbase shape: %v", spew.Sdump(coinbase))
	}
	in := coinbase.TxIn[0]
	if in.PreviousOutPoint.Index != wire.MaxPrevOutIndex ||
		!in.PreviousOutPoint.Hash.IsEqual(&zeroHash) {

		t.Errorf("coinbase does not spend the null outpoint: %v",
			in.PreviousOutPoint)
	}
	if in.Sequence != wire.MaxTxInSequenceNum {
		t.Errorf("coinbase sequence is %x", in.Sequence)
	}

	gotScript := hex.EncodeToString(in.SignatureScript)
	if gotScript != genesisCoinbaseScriptHex {
		t.Errorf("coinbase signature script mismatch:\ngot  %s\nwant %s",
			gotScript, genesisCoinbaseScriptHex)
	}

	out := coinbase.TxOut[0]
	if out.Value != 1000000000 {
		t.Errorf("coinbase pays %d, want 1000000000", out.Value)
	}
	wantPkScript := "41" + genesisPubKeyHex + "ac"
	if got := hex.EncodeToString(out.PkScript); got != wantPkScript {
		t.Errorf("coinbase output script mismatch:\ngot  %s\nwant %s",
			got, wantPkScript)
	}
	if coinbase.TxHash() != *genesisMerkleRoot {
		t.Errorf("coinbase hash %v, want %v", coinbase.TxHash(),
			genesisMerkleRoot)
	}
}

// TestBuildGenesisBlockDeterministic ensures repeated builds produce byte
// identical blocks and that every header input reaches the hash.
func TestBuildGenesisBlockDeterministic(t *testing.T) {
	serialize := func(block *wire.MsgBlock) []byte {
		var buf bytes.Buffer
		if err := block.Serialize(&buf); err != nil {
			t.Fatalf("Serialize: %v", err)
		}
		return buf.Bytes()
	}

	a := createGenesisBlock(1517756773, 6219155, 0x1e0ffff0, 1, genesisReward)
	b := createGenesisBlock(1517756773, 6219155, 0x1e0ffff0, 1, genesisReward)
	if !bytes.Equal(serialize(a), serialize(b)) {
		t.Fatalf("two builds with the same inputs differ")
	}

	base := blockhash.BlockHash(a)
	perturbed := []*wire.MsgBlock{
		createGenesisBlock(1517756773, 6219156, 0x1e0ffff0, 1, genesisReward),
		createGenesisBlock(1517756774, 6219155, 0x1e0ffff0, 1, genesisReward),
		createGenesisBlock(1517756773, 6219155, 0x1e0fffff, 1, genesisReward),
		createGenesisBlock(1517756773, 6219155, 0x1e0ffff0, 2, genesisReward),
		createGenesisBlock(1517756773, 6219155, 0x1e0ffff0, 1, genesisReward+1),
	}
	for i, block := range perturbed {
		if blockhash.BlockHash(block) == base {
			t.Errorf("perturbed block %d hashes like the original", i)
		}
	}

	// The reward only lives in the coinbase, so it moves the merkle root
	// while header-only changes leave it alone.
	if perturbed[0].Header.MerkleRoot != a.Header.MerkleRoot {
		t.Errorf("nonce change moved the merkle root")
	}
	if perturbed[4].Header.MerkleRoot == a.Header.MerkleRoot {
		t.Errorf("reward change left the merkle root untouched")
	}
}

// TestBuildGenesisBlockCustom builds a block from a different message and
// script and checks the inputs end up where they belong.
func TestBuildGenesisBlockCustom(t *testing.T) {
	script := []byte{0x51}
	block := BuildGenesisBlock("hello", script, 1, 2, 0x207fffff, 3, 5)

	sigScript := block.Transactions[0].TxIn[0].SignatureScript
	want := "04ffff001d0104" + "05" + hex.EncodeToString([]byte("hello"))
	if got := hex.EncodeToString(sigScript); got != want {
		t.Errorf("signature script %s, want %s", got, want)
	}
	if !bytes.Equal(block.Transactions[0].TxOut[0].PkScript, script) {
		t.Errorf("output script not used")
	}

	// The block must not alias the caller's script.
	script[0] = 0x00
	if block.Transactions[0].TxOut[0].PkScript[0] != 0x51 {
		t.Errorf("output script aliases the caller's slice")
	}

	if block.Header.Version != 3 || block.Header.Nonce != 2 ||
		block.Header.Timestamp.Unix() != 1 {

		t.Errorf("unexpected header %v", spew.Sdump(block.Header))
	}
}

// TestGenesisOutputScriptCopy ensures callers cannot modify the shared
// output script.
func TestGenesisOutputScriptCopy(t *testing.T) {
	script := GenesisOutputScript()
	script[0] ^= 0xff
	if bytes.Equal(script, GenesisOutputScript()) {
		t.Fatalf("GenesisOutputScript returned the shared slice")
	}
}

// TestBuildGenesisBlockMessageLength checks the timestamp message is pushed
// with the smallest push opcode for its length and that messages larger than
// a script element are accepted.
func TestBuildGenesisBlockMessageLength(t *testing.T) {
	const markerHex = "04ffff001d0104"

	tests := []struct {
		name    string
		message string
		push    string
	}{
		{"empty", "", "00"},
		{"single byte", "\x05", "01"},
		{"largest direct push", strings.Repeat("a", 75), "4b"},
		{"smallest pushdata1", strings.Repeat("a", 76), "4c4c"},
		{"largest pushdata1", strings.Repeat("a", 255), "4cff"},
		{"smallest pushdata2", strings.Repeat("a", 256), "4d0001"},
		{"over element size", strings.Repeat("a", 521), "4d0902"},
		{"pushdata4", strings.Repeat("a", 70000), "4e70110100"},
	}

	for _, test := range tests {
		var block *wire.MsgBlock
		require.NotPanics(t, func() {
			block = BuildGenesisBlock(test.message, GenesisOutputScript(),
				1, 2, 0x207fffff, 1, genesisReward)
		}, test.name)

		want := markerHex + test.push + hex.EncodeToString([]byte(test.message))
		script := block.Transactions[0].TxIn[0].SignatureScript
		require.Equal(t, want, hex.EncodeToString(script), test.name)
		require.Equal(t, blockhash.MerkleRoot(block.Transactions),
			block.Header.MerkleRoot, test.name)
	}
}
