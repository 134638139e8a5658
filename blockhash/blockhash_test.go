// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockhash

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

func testHeader() wire.BlockHeader {
	return wire.BlockHeader{
		Version:    1,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: chainhash.DoubleHashH([]byte("merkle")),
		Timestamp:  time.Unix(1517756773, 0),
		Bits:       0x1e0ffff0,
		Nonce:      6219155,
	}
}

func testTx(value int64) *wire.MsgTx {
	tx := wire.NewMsgTx(1)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex),
		SignatureScript:  []byte{0x51},
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(value, []byte{0x51}))
	return tx
}

// TestHeaderHash ensures the header hash is deterministic, sensitive to
// every header field and distinct from the double-SHA256 header hash.
func TestHeaderHash(t *testing.T) {
	header := testHeader()
	hash := HeaderHash(&header)
	if again := HeaderHash(&header); again != hash {
		t.Fatalf("HeaderHash not deterministic: got %v, want %v", again, hash)
	}
	if sha := header.BlockHash(); sha == hash {
		t.Fatalf("HeaderHash matches double-SHA256 hash %v", sha)
	}

	tests := []struct {
		name   string
		mutate func(h *wire.BlockHeader)
	}{
		{"version", func(h *wire.BlockHeader) { h.Version = 2 }},
		{"prev block", func(h *wire.BlockHeader) { h.PrevBlock[0] = 1 }},
		{"merkle root", func(h *wire.BlockHeader) { h.MerkleRoot[31] ^= 0xff }},
		{"timestamp", func(h *wire.BlockHeader) { h.Timestamp = h.Timestamp.Add(time.Second) }},
		{"bits", func(h *wire.BlockHeader) { h.Bits = 0x207fffff }},
		{"nonce", func(h *wire.BlockHeader) { h.Nonce++ }},
	}
	for _, test := range tests {
		mutated := testHeader()
		test.mutate(&mutated)
		if got := HeaderHash(&mutated); got == hash {
			t.Errorf("%s: hash unchanged after mutation: %v", test.name, got)
		}
	}
}

// TestBlockHash ensures a block is identified by its header hash alone.
func TestBlockHash(t *testing.T) {
	block := wire.MsgBlock{Header: testHeader()}
	want := HeaderHash(&block.Header)

	if got := BlockHash(&block); got != want {
		t.Fatalf("BlockHash: got %v, want %v", got, want)
	}
	block.Transactions = []*wire.MsgTx{testTx(1)}
	if got := BlockHash(&block); got != want {
		t.Fatalf("BlockHash depends on transactions: got %v, want %v", got, want)
	}
}

// TestMerkleRoot checks the degenerate trees and that order matters.
func TestMerkleRoot(t *testing.T) {
	if got := MerkleRoot(nil); got != (chainhash.Hash{}) {
		t.Errorf("empty list: got %v, want zero hash", got)
	}

	a, b := testTx(1), testTx(2)
	if got, want := MerkleRoot([]*wire.MsgTx{a}), a.TxHash(); got != want {
		t.Errorf("single leaf: got %v, want %v", got, want)
	}

	ab := MerkleRoot([]*wire.MsgTx{a, b})
	ba := MerkleRoot([]*wire.MsgTx{b, a})
	if ab == ba {
		t.Errorf("merkle root ignores order: %v", ab)
	}

	hashA, hashB := a.TxHash(), b.TxHash()
	var buf [chainhash.HashSize * 2]byte
	copy(buf[:chainhash.HashSize], hashA[:])
	copy(buf[chainhash.HashSize:], hashB[:])
	if want := chainhash.DoubleHashH(buf[:]); ab != want {
		t.Errorf("two leaves: got %v, want %v", ab, want)
	}
}
