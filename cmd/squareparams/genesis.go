package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/squarecore/squared/blockhash"
	"github.com/squarecore/squared/chaincfg"
)

// showGenesisBlock prints the genesis block of the network.
func showGenesisBlock(w io.Writer, chainParams *chaincfg.Params) error {
	fmt.Fprintf(w, "Network: %s (magic %08x, port %s)\n", chainParams.Name,
		uint32(chainParams.Net), chainParams.DefaultPort)
	return showBlock(w, chainParams.GenesisBlock, chainParams)
}

func showBlock(w io.Writer, block *wire.MsgBlock, chainParams *chaincfg.Params) error {
	hash := blockhash.BlockHash(block)

	// Show Block info
	fmt.Fprintf(w, "-------------------------  Block Header  --------------------------\n")
	fmt.Fprintf(w, "    Block Hash: %s\n", hash.String())
	fmt.Fprintf(w, "    Block Version: %d\n", block.Header.Version)
	fmt.Fprintf(w, "    Prev Block Hash: %s\n", block.Header.PrevBlock.String())
	fmt.Fprintf(w, "    Block MerkleRoot Hash: %s\n", block.Header.MerkleRoot.String())
	fmt.Fprintf(w, "    Block TimeStamp Unix: %d\n", block.Header.Timestamp.Unix())
	fmt.Fprintf(w, "    Block TimeStamp: %s\n", block.Header.Timestamp.UTC().Format(time.DateTime))
	fmt.Fprintf(w, "    Block Bits: %08x\n", block.Header.Bits)
	fmt.Fprintf(w, "    Block Nonce: %d\n", block.Header.Nonce)
	fmt.Fprintf(w, "-------------------------  End  --------------------------\n")

	fmt.Fprintf(w, "-------------------------  Block Transactions  --------------------------\n")
	for _, tx := range block.Transactions {
		if err := showTx(w, tx, chainParams); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "-------------------------  End  --------------------------\n")

	logHash(w, "var genesisMerkleRoot = chainhash.Hash", block.Header.MerkleRoot[:])
	logHash(w, "var genesisHash = chainhash.Hash", hash[:])
	return nil
}

func showTx(w io.Writer, tx *wire.MsgTx, chainParams *chaincfg.Params) error {
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return err
	}

	fmt.Fprintf(w, "    TxID: %s\n", tx.TxHash().String())
	fmt.Fprintf(w, "    Version: %d, LockTime: %d\n", tx.Version, tx.LockTime)
	for i, in := range tx.TxIn {
		fmt.Fprintf(w, "    TxIn[%d]: %s\n", i, in.PreviousOutPoint.String())
		fmt.Fprintf(w, "        SignatureScript: %x\n", in.SignatureScript)
		if disasm, err := txscript.DisasmString(in.SignatureScript); err == nil {
			fmt.Fprintf(w, "        Disasm: %s\n", disasm)
		}
		fmt.Fprintf(w, "        Sequence: %08x\n", in.Sequence)
	}
	for i, out := range tx.TxOut {
		fmt.Fprintf(w, "    TxOut[%d]: %v\n", i, btcutil.Amount(out.Value))
		fmt.Fprintf(w, "        PkScript: %x\n", out.PkScript)
		_, addrs, _, err := txscript.ExtractPkScriptAddrs(out.PkScript,
			chainParams.BtcdParams())
		if err == nil {
			for _, addr := range addrs {
				fmt.Fprintf(w, "        Address: %s\n", addr.EncodeAddress())
			}
		}
	}
	fmt.Fprintf(w, "    Raw: %s\n", hex.EncodeToString(buf.Bytes()))
	return nil
}

func logHash(w io.Writer, title string, data []byte) {
	fmt.Fprintf(w, "%s: {\n        ", title)
	lineCount := 0
	for i := 0; i < len(data); i++ {
		fmt.Fprintf(w, "0x%02x, ", data[i])
		if lineCount == 7 {
			fmt.Fprintf(w, "\n        ")
			lineCount = 0
			continue
		}
		lineCount++
	}
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "}\n")
}
