// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"sync"

	btcdchaincfg "github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

var (
	registerMtx       sync.RWMutex
	registeredNets    = make(map[wire.BitcoinNet]struct{})
	pubKeyHashAddrIDs = make(map[byte]struct{})
	scriptHashAddrIDs = make(map[byte]struct{})
	hdPrivToPubKeyIDs = make(map[[4]byte][]byte)
)

// Register registers the network parameters for a square network.  This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible.  Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) error {
	return registerNet(params.Net, &params.Prefixes)
}

// registerNet records the address magics of a network.  The default networks
// go through it at init time so their genesis blocks are not built before
// they are requested.
func registerNet(net wire.BitcoinNet, prefixes *AddressPrefixes) error {
	registerMtx.Lock()
	defer registerMtx.Unlock()

	if _, ok := registeredNets[net]; ok {
		return ErrDuplicateNet
	}
	registeredNets[net] = struct{}{}
	pubKeyHashAddrIDs[prefixes.PubKeyHashAddrID] = struct{}{}
	scriptHashAddrIDs[prefixes.ScriptHashAddrID] = struct{}{}
	hdPrivToPubKeyIDs[prefixes.HDPrivateKeyID] = append([]byte(nil),
		prefixes.HDPublicKeyID[:]...)
	return nil
}

// mustRegister performs the same function as registerNet except it panics if
// there is an error.  This should only be called from package init functions.
func mustRegister(net wire.BitcoinNet, prefixes *AddressPrefixes) {
	if err := registerNet(net, prefixes); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any default or registered network.  This is
// used when decoding an address string into a specific address type.  It is up
// to the caller to check both this and IsScriptHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func IsPubKeyHashAddrID(id byte) bool {
	registerMtx.RLock()
	defer registerMtx.RUnlock()
	_, ok := pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any default or registered network.  This is
// used when decoding an address string into a specific address type.  It is up
// to the caller to check both this and IsPubKeyHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func IsScriptHashAddrID(id byte) bool {
	registerMtx.RLock()
	defer registerMtx.RUnlock()
	_, ok := scriptHashAddrIDs[id]
	return ok
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the provided
// id is not registered, the ErrUnknownHDKeyID error will be returned.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID
	}

	var key [4]byte
	copy(key[:], id)

	registerMtx.RLock()
	defer registerMtx.RUnlock()
	pubBytes, ok := hdPrivToPubKeyIDs[key]
	if !ok {
		return nil, ErrUnknownHDKeyID
	}
	return append([]byte(nil), pubBytes...), nil
}

// BtcdParams returns the parameters in the form the btcutil address and
// hdkeychain packages consume.  Only the fields those packages read and the
// chain identity are filled in.  Decoding addresses with btcutil additionally
// needs the result registered with the btcd chaincfg package.
func (p *Params) BtcdParams() *btcdchaincfg.Params {
	seeds := make([]btcdchaincfg.DNSSeed, 0, len(p.DNSSeeds))
	for _, seed := range p.DNSSeeds {
		seeds = append(seeds, btcdchaincfg.DNSSeed{Host: seed.Host})
	}
	checkpoints := make([]btcdchaincfg.Checkpoint, 0,
		len(p.Checkpoints.Checkpoints))
	for _, checkpoint := range p.Checkpoints.Checkpoints {
		checkpoints = append(checkpoints, btcdchaincfg.Checkpoint{
			Height: checkpoint.Height,
			Hash:   checkpoint.Hash,
		})
	}

	return &btcdchaincfg.Params{
		Name:                          p.Name,
		Net:                           p.Net,
		DefaultPort:                   p.DefaultPort,
		DNSSeeds:                      seeds,
		GenesisBlock:                  p.GenesisBlock,
		GenesisHash:                   p.GenesisHash,
		PowLimit:                      p.Consensus.PowLimit,
		PowLimitBits:                  p.Consensus.PowLimitBits,
		PoWNoRetargeting:              p.Consensus.NoRetargeting,
		BIP0034Height:                 p.Consensus.BIP0034Height,
		SubsidyReductionInterval:      p.Consensus.SubsidyHalvingInterval,
		TargetTimespan:                p.Consensus.TargetTimespan,
		TargetTimePerBlock:            p.Consensus.TargetTimePerBlock,
		ReduceMinDifficulty:           p.Consensus.AllowMinDifficultyBlocks,
		MinDiffReductionTime:          2 * p.Consensus.TargetTimePerBlock,
		GenerateSupported:             p.MineBlocksOnDemand,
		Checkpoints:                   checkpoints,
		RuleChangeActivationThreshold: p.Consensus.RuleChangeActivationThreshold,
		MinerConfirmationWindow:       p.Consensus.MinerConfirmationWindow,
		RelayNonStdTxs:                !p.RequireStandard,

		PubKeyHashAddrID: p.Prefixes.PubKeyHashAddrID,
		ScriptHashAddrID: p.Prefixes.ScriptHashAddrID,
		PrivateKeyID:     p.Prefixes.PrivateKeyID,
		HDPrivateKeyID:   p.Prefixes.HDPrivateKeyID,
		HDPublicKeyID:    p.Prefixes.HDPublicKeyID,
		HDCoinType:       p.Prefixes.HDCoinType,
	}
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(MainNet, &mainNetPrefixes)
	mustRegister(TestNet, &testNetPrefixes)
	mustRegister(RegTest, &testNetPrefixes)
}
