// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/txscript"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/squarecore/squared/blockhash"
)

// verifyParams checks the compiled-in parameters of a network against
// themselves.  It returns the first inconsistency found, or nil.
func verifyParams(p *Params) *IntegrityError {
	fail := func(field string, want, got interface{}) *IntegrityError {
		return &IntegrityError{
			Network: p.Name,
			Field:   field,
			Want:    fmt.Sprint(want),
			Got:     fmt.Sprint(got),
		}
	}

	genesis := p.GenesisBlock
	if genesis == nil || len(genesis.Transactions) != 1 {
		return fail("genesis transaction count", 1, genesisTxCount(p))
	}
	coinbase := genesis.Transactions[0]
	if coinbase == nil || len(coinbase.TxOut) == 0 {
		return fail("genesis coinbase", "transaction with an output", coinbase)
	}

	merkle := blockhash.MerkleRoot(genesis.Transactions)
	if merkle != genesis.Header.MerkleRoot {
		return fail("genesis header merkle root", merkle, genesis.Header.MerkleRoot)
	}
	if merkle != *genesisMerkleRoot {
		return fail("genesis merkle root", genesisMerkleRoot, merkle)
	}

	hash := blockhash.BlockHash(genesis)
	if p.GenesisHash == nil || hash != *p.GenesisHash {
		return fail("genesis hash", p.GenesisHash, hash)
	}
	if p.Consensus.GenesisHash == nil || *p.Consensus.GenesisHash != hash {
		return fail("consensus genesis hash", hash, p.Consensus.GenesisHash)
	}

	if amount := p.genesisAmount(); amount != genesisReward {
		return fail("genesis reward", genesisReward, amount)
	}

	// The genesis hash must satisfy the target encoded in its own bits, and
	// that target may not be easier than the network limit.
	if p.Consensus.PowLimit == nil {
		return fail("pow limit", "positive limit", nil)
	}
	target := blockchain.CompactToBig(genesis.Header.Bits)
	if target.Sign() <= 0 || target.Cmp(p.Consensus.PowLimit) > 0 {
		return fail("genesis target", fmt.Sprintf("0 < target <= %064x",
			p.Consensus.PowLimit), fmt.Sprintf("%064x", target))
	}
	if blockchain.HashToBig(&hash).Cmp(target) > 0 {
		return fail("genesis proof of work", fmt.Sprintf("hash <= %064x",
			target), hash)
	}

	limitBits := blockchain.BigToCompact(p.Consensus.PowLimit)
	if limitBits != p.Consensus.PowLimitBits {
		return fail("pow limit bits", fmt.Sprintf("%08x", limitBits),
			fmt.Sprintf("%08x", p.Consensus.PowLimitBits))
	}

	checkpoints := p.Checkpoints.Checkpoints
	if len(checkpoints) == 0 {
		return fail("checkpoint count", "at least 1", 0)
	}
	for i, checkpoint := range checkpoints {
		if checkpoint.Hash == nil {
			return fail(fmt.Sprintf("checkpoint %d hash", i), "block hash",
				nil)
		}
	}
	if checkpoints[0].Height != 0 || *checkpoints[0].Hash != hash {
		return fail("checkpoint 0", fmt.Sprintf("0:%v", hash),
			fmt.Sprintf("%d:%v", checkpoints[0].Height, checkpoints[0].Hash))
	}
	for i := 1; i < len(checkpoints); i++ {
		if checkpoints[i].Height <= checkpoints[i-1].Height {
			return fail(fmt.Sprintf("checkpoint %d height", i),
				fmt.Sprintf("> %d", checkpoints[i-1].Height),
				checkpoints[i].Height)
		}
	}

	outputKey, err := genesisOutputKey(coinbase.TxOut[0].PkScript)
	if err != nil {
		return fail("genesis output key", "secp256k1 public key", err)
	}
	keys := []struct {
		field string
		key   []byte
	}{
		{"genesis output key", outputKey},
		{"alert public key", p.AlertPubKey},
		{"spork public key", p.SporkPubKey},
	}
	for _, k := range keys {
		if len(k.key) == 0 {
			continue
		}
		if _, err := secp256k1.ParsePubKey(k.key); err != nil {
			return fail(k.field, "secp256k1 public key",
				hex.EncodeToString(k.key))
		}
	}

	return nil
}

// mustVerify panics with an *IntegrityError when the parameters of the
// network are inconsistent.
func mustVerify(p *Params) {
	if err := verifyParams(p); err != nil {
		log.Errorf("Integrity check failed: %v", err)
		panic(err)
	}
}

// genesisOutputKey extracts the public key from a pay-to-pubkey script.
func genesisOutputKey(pkScript []byte) ([]byte, error) {
	if txscript.GetScriptClass(pkScript) != txscript.PubKeyTy {
		return nil, fmt.Errorf("script %x is not pay-to-pubkey", pkScript)
	}
	pushes, err := txscript.PushedData(pkScript)
	if err != nil {
		return nil, err
	}
	return pushes[0], nil
}

func genesisTxCount(p *Params) int {
	if p.GenesisBlock == nil {
		return 0
	}
	return len(p.GenesisBlock.Transactions)
}
