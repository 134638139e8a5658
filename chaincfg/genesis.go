// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/squarecore/squared/blockhash"
)

const (
	// genesisTimestamp is the headline embedded in the coinbase of every
	// square genesis block.
	genesisTimestamp = "04.02.2018 - Bitcoin investors find tax demands are not virtual"

	// genesisPubKeyHex is the uncompressed public key the genesis coinbase
	// pays to.
	genesisPubKeyHex = "04dbf05d8d9b3ab05aab794df8fab204b254fa917ad0189ca8ed357cbef5aacb6c9878558b4f6e485484e3b9f5ac47116944e19945037779e26a5cc16ef88fb8d3"

	// genesisScriptMarker is pushed first in the genesis coinbase script.
	// It is the bits field of the bitcoin genesis block, 0x1d00ffff.
	genesisScriptMarker = 486604799

	// genesisExtraNonce is pushed second in the genesis coinbase script.
	genesisExtraNonce = 4

	// genesisReward is the value of the genesis coinbase output.
	genesisReward = btcutil.Amount(10 * btcutil.SatoshiPerBitcoin)
)

// genesisOutputScript is the script of the genesis coinbase output:
// <genesisPubKey> OP_CHECKSIG.
var genesisOutputScript = mustScript(txscript.NewScriptBuilder().
	AddData(mustDecodeHex(genesisPubKeyHex)).
	AddOp(txscript.OP_CHECKSIG))

// genesisMerkleRoot is the hash of the genesis coinbase transaction.  The
// coinbase is identical on every network, so all of them share it.
//
// Coinbase signature script:
// 04ffff001d01043f30342e30322e32303138202d20426974636f696e20696e766573746f
// 72732066696e64207461782064656d616e647320617265206e6f74207669727475616c
var genesisMerkleRoot = newHashFromStr("6340383f63a22962bc62325640d75b3b634c7bfdde046093cde93201dbd1fae8")

// mainNetGenesisHash is the hash of the first block in the block chain for
// the main network (genesis block).
//
// ver=1 time=1517756773 bits=1e0ffff0 nonce=6219155
var mainNetGenesisHash = newHashFromStr("000009ce3dbc7226f90591453e668d25b37b019b6f1495d37470d43ed793055e")

// testNetGenesisHash is the hash of the first block in the block chain for
// the test network.
//
// ver=1 time=1517756706 bits=1e0ffff0 nonce=1388910
var testNetGenesisHash = newHashFromStr("000001f59bc87b58d6aa505b724e84b7df9ddafee7269bde78fe712654e6d2ea")

// regTestGenesisHash is the hash of the first block in the block chain for
// the regression test network.
//
// ver=1 time=1517756649 bits=207fffff nonce=16
var regTestGenesisHash = newHashFromStr("51554a115eec116070417085ae9e35f5b13a59b5dc30c3b5628e14ba2279cb78")

// BuildGenesisBlock assembles a genesis block from its scalar inputs.
//
// The block holds a single coinbase transaction.  Its signature script
// pushes the script number 486604799, a one byte data push of 4 and the raw
// timestamp message, and its only output pays reward to outputScript.  The
// header has a zero previous block hash and commits to the coinbase hash as
// its merkle root.
//
// The coinbase spends the null outpoint, and its output never enters the
// UTXO set since the genesis block is not connected like ordinary blocks.
//
// The function is pure and accepts messages of any length.  The message is
// pushed with OP_PUSHDATA1, OP_PUSHDATA2 or OP_PUSHDATA4 as its size
// requires.
func BuildGenesisBlock(timestamp string, outputScript []byte, blockTime,
	nonce, bits uint32, version int32, reward btcutil.Amount) *wire.MsgBlock {

	coinbase := wire.NewMsgTx(1)
	coinbase.AddTxIn(&wire.TxIn{
		// Coinbase transactions have no inputs, so previous outpoint is
		// zero hash and max index.
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{},
			wire.MaxPrevOutIndex),
		SignatureScript: genesisSignatureScript(timestamp),
		Sequence:        wire.MaxTxInSequenceNum,
	})
	coinbase.AddTxOut(&wire.TxOut{
		Value:    int64(reward),
		PkScript: append([]byte(nil), outputScript...),
	})

	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:   version,
			PrevBlock: chainhash.Hash{},
			Timestamp: time.Unix(int64(blockTime), 0),
			Bits:      bits,
			Nonce:     nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
	block.Header.MerkleRoot = blockhash.MerkleRoot(block.Transactions)
	return block
}

// createGenesisBlock builds a genesis block with the square timestamp
// message and output script.  Only the header fields and the reward differ
// between networks.
func createGenesisBlock(blockTime, nonce, bits uint32, version int32,
	reward btcutil.Amount) *wire.MsgBlock {

	return BuildGenesisBlock(genesisTimestamp, genesisOutputScript,
		blockTime, nonce, bits, version, reward)
}

// GenesisOutputScript returns a copy of the script the genesis coinbase of
// every square network pays to.
func GenesisOutputScript() []byte {
	return append([]byte(nil), genesisOutputScript...)
}

// genesisSignatureScript returns the coinbase signature script for the
// given timestamp message.
func genesisSignatureScript(timestamp string) []byte {
	// The extra nonce is pushed as one byte of data rather than OP_4, so it
	// cannot go through AddInt64.
	prefix := mustScript(txscript.NewScriptBuilder().
		AddInt64(genesisScriptMarker).
		AddOp(txscript.OP_DATA_1).
		AddOp(genesisExtraNonce))
	return appendPush(prefix, []byte(timestamp))
}

// appendPush appends a push of data to script using the smallest push
// opcode for its length.  Unlike ScriptBuilder.AddData it neither limits the
// element size nor turns short data into small-integer opcodes.
func appendPush(script, data []byte) []byte {
	n := len(data)
	switch {
	case n < txscript.OP_PUSHDATA1:
		script = append(script, byte(n))
	case n <= 0xff:
		script = append(script, txscript.OP_PUSHDATA1, byte(n))
	case n <= 0xffff:
		script = append(script, txscript.OP_PUSHDATA2)
		script = binary.LittleEndian.AppendUint16(script, uint16(n))
	default:
		script = append(script, txscript.OP_PUSHDATA4)
		script = binary.LittleEndian.AppendUint32(script, uint32(n))
	}
	return append(script, data...)
}

// mustScript returns the script assembled by builder and panics if the
// builder recorded an error.
func mustScript(builder *txscript.ScriptBuilder) []byte {
	script, err := builder.Script()
	if err != nil {
		panic("invalid genesis script: " + err.Error())
	}
	return script
}

// mustDecodeHex decodes a hard-coded hex string.
func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
