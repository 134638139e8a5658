// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockhash provides the hash primitives the square networks use to
// identify blocks and commit to their transactions.
//
// Block identifiers are the X11 hash of the 80-byte serialized header, while
// transaction identifiers and the merkle tree built over them keep the
// bitcoin double-SHA256.  Both are returned as chainhash.Hash values so they
// print byte-reversed like every other hash in the btcd ecosystem.
package blockhash

import (
	"bytes"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"gitlab.com/nitya-sattva/go-x11"
)

// X11 returns the X11 digest of b.
func X11(b []byte) chainhash.Hash {
	var hash chainhash.Hash
	// The hasher keeps intermediate state, so each call gets its own.
	x11.New().Hash(b, hash[:])
	return hash
}

// HeaderHash returns the proof-of-work identifier of the header.
func HeaderHash(header *wire.BlockHeader) chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, wire.MaxBlockHeaderPayload))

	// Serializing into a bytes.Buffer never fails.
	_ = header.Serialize(buf)
	return X11(buf.Bytes())
}

// BlockHash returns the identifier of the block, which is the hash of its
// header.
func BlockHash(block *wire.MsgBlock) chainhash.Hash {
	return HeaderHash(&block.Header)
}

// MerkleRoot returns the merkle root committing to txns in order.  A single
// transaction degenerates to that transaction's hash, and an empty list gives
// the zero hash.
func MerkleRoot(txns []*wire.MsgTx) chainhash.Hash {
	if len(txns) == 0 {
		return chainhash.Hash{}
	}

	utilTxns := make([]*btcutil.Tx, 0, len(txns))
	for _, tx := range txns {
		utilTxns = append(utilTxns, btcutil.NewTx(tx))
	}
	return blockchain.CalcMerkleRoot(utilTxns, false)
}
