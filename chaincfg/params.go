// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// These variables are the chain proof-of-work limit parameters for each default
// network.
var (
	// powLimit is the highest proof of work value a square block can have
	// for the main and test networks.  It is the value
	// 0x00000fffff000...000.
	powLimit = newBigFromStr("00000fffff000000000000000000000000000000000000000000000000000000")

	// regressionPowLimit is the highest proof of work value a square block
	// can have for the regression test network.  It is the value
	// 2^255 - 1.
	regressionPowLimit = newBigFromStr("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
)

// Network magics.  They are the message start bytes read as a little-endian
// uint32, so MainNet goes over the wire as ba ec e1 de.
const (
	// MainNet represents the main square network.
	MainNet wire.BitcoinNet = 0xdee1ecba

	// TestNet represents the square test network.
	TestNet wire.BitcoinNet = 0xfebceeec

	// RegTest represents the square regression test network.
	RegTest wire.BitcoinNet = 0xddc8d2fa
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointData holds the checkpoints of a network together with the sync
// progress hints recorded at the last one.
type CheckpointData struct {
	// Checkpoints ordered from oldest to newest.  The first one is always
	// the genesis block.
	Checkpoints []Checkpoint

	// TimeLastCheckpoint is the timestamp of the last checkpoint block.
	TimeLastCheckpoint time.Time

	// TransactionsLastCheckpoint is the total number of transactions
	// between genesis and the last checkpoint.
	TransactionsLastCheckpoint int64

	// TransactionsPerDay is the estimated number of transactions per day
	// after the last checkpoint.  It is only used to estimate sync
	// progress.
	TransactionsPerDay float64
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is a label for the seed operator.
	Name string

	// Host defines the hostname of the seed.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// AddressPrefixes holds the version bytes and key magics that keep
// addresses and keys of one network from being used on another.
type AddressPrefixes struct {
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType uint32
}

// ConsensusParams defines the consensus rules of a network.  The masternode,
// budget and governance values are passed through untouched to the
// consensus engine, which owns their meaning.
type ConsensusParams struct {
	// SubsidyHalvingInterval is the interval of blocks before the subsidy
	// is reduced.
	SubsidyHalvingInterval int32

	MasternodePaymentsStartBlock     int32
	MasternodePaymentsIncreaseBlock  int32
	MasternodePaymentsIncreasePeriod int32
	MasternodeMinimumConfirmations   int32

	// InstantSendKeepLock is the number of blocks an InstantSend lock is
	// kept after the transaction is mined.
	InstantSendKeepLock int32

	BudgetPaymentsStartBlock       int32
	BudgetPaymentsCycleBlocks      int32
	BudgetPaymentsWindowBlocks     int32
	BudgetProposalEstablishingTime time.Duration

	SuperblockStartBlock     int32
	SuperblockCycle          int32
	GovernanceMinQuorum      int32
	GovernanceFilterElements int32

	// Legacy IsSuperMajority block version upgrade parameters.
	MajorityEnforceBlockUpgrade int32
	MajorityRejectBlockOutdated int32
	MajorityWindow              int32

	// BIP0034Height and BIP0034Hash identify the block where BIP0034
	// activated.  A negative height means it is not necessarily active.
	BIP0034Height int32
	BIP0034Hash   *chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// AllowMinDifficultyBlocks defines whether the network should allow
	// blocks at the minimum difficulty once TargetTimePerBlock*2 has
	// passed without a block.
	AllowMinDifficultyBlocks bool

	// NoRetargeting disables difficulty adjustment.
	NoRetargeting bool

	// PowKGWHeight and PowDGWHeight are the heights where the difficulty
	// algorithm switches to Kimoto Gravity Well and Dark Gravity Wave.
	PowKGWHeight int32
	PowDGWHeight int32

	// These fields are related to voting on consensus rule changes as
	// defined by BIP0009.
	//
	// RuleChangeActivationThreshold is the number of blocks in a threshold
	// state retarget window for which a positive vote for a rule change
	// must be cast in order to lock in a rule change. It should typically
	// be 95% for the main network and 75% for test networks.
	//
	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window.
	//
	// Deployments define the specific consensus rule changes to be voted
	// on.
	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32
	Deployments                   [DefinedDeployments]ConsensusDeployment

	// MinimumChainWork is the amount of work the best chain should have
	// at least.
	MinimumChainWork *big.Int

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// DefaultAssumeValid is the block whose ancestors' signatures are
	// assumed valid by default.
	DefaultAssumeValid *chainhash.Hash
}

// Params defines a square network by its parameters.  These parameters may be
// used by square applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
//
// Params values handed out by the registry are shared and must be treated as
// read-only.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// Consensus holds the consensus rules of the network.
	Consensus ConsensusParams

	// AlertPubKey is the legacy alert system key.  It may be empty.
	AlertPubKey []byte

	// SporkPubKey is the key that signs spork messages.  It may be empty.
	SporkPubKey []byte

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// MaxTipAge is the age of the best block beyond which the node
	// considers itself out of sync.
	MaxTipAge time.Duration

	// DelayGetHeadersTime is how old the best header may be before the
	// node stops delaying getheaders requests.
	DelayGetHeadersTime time.Duration

	// PruneAfterHeight is the height below which block files are never
	// pruned.
	PruneAfterHeight uint64

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are peers tried when the DNS seeds do not answer.
	FixedSeeds []SeedSpec6

	// Prefixes holds the address encoding magics.
	Prefixes AddressPrefixes

	// Checkpoints holds the checkpoints and sync hints.
	Checkpoints CheckpointData

	// RequireStandard makes the mempool reject non-standard transactions.
	RequireStandard bool

	// MiningRequiresPeers defines whether mining needs connected peers.
	MiningRequiresPeers bool

	// MineBlocksOnDemand allows blocks to be mined through RPC without
	// waiting for the target spacing.
	MineBlocksOnDemand bool

	// DefaultConsistencyChecks enables expensive internal consistency
	// checks by default.
	DefaultConsistencyChecks bool

	// TestnetToBeDeprecatedFieldRPC makes RPC responses carry the legacy
	// "testnet" field.
	TestnetToBeDeprecatedFieldRPC bool

	// PoolMaxTransactions is the maximum number of transactions in one
	// PrivateSend mixing pool.
	PoolMaxTransactions int

	// FulfilledRequestExpireTime is how long a fulfilled network request
	// is remembered.
	FulfilledRequestExpireTime time.Duration
}

// MessageStart returns the four magic bytes that start every message of the
// network, in wire order.
func (p *Params) MessageStart() [4]byte {
	var start [4]byte
	binary.LittleEndian.PutUint32(start[:], uint32(p.Net))
	return start
}

// LatestCheckpoint returns the most recent checkpoint, or nil when there are
// none.
func (p *Params) LatestCheckpoint() *Checkpoint {
	checkpoints := p.Checkpoints.Checkpoints
	if len(checkpoints) == 0 {
		return nil
	}
	return &checkpoints[len(checkpoints)-1]
}

// CheckpointHash returns the checkpointed hash at height and whether the
// height is checkpointed at all.
func (p *Params) CheckpointHash(height int32) (*chainhash.Hash, bool) {
	for _, checkpoint := range p.Checkpoints.Checkpoints {
		if checkpoint.Height == height {
			return checkpoint.Hash, true
		}
		if checkpoint.Height > height {
			break
		}
	}
	return nil, false
}

var (
	// mainNetPrefixes holds the address magics of the main network.
	mainNetPrefixes = AddressPrefixes{
		PubKeyHashAddrID: 76,  // starts with X
		ScriptHashAddrID: 16,  // starts with 7
		PrivateKeyID:     204, // starts with 7 or X

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub

		HDCoinType: 5,
	}

	// testNetPrefixes holds the address magics shared by the test and
	// regression test networks.  Sharing them is deliberate: the two
	// networks accept each other's addresses.
	testNetPrefixes = AddressPrefixes{
		PubKeyHashAddrID: 140, // starts with y
		ScriptHashAddrID: 19,  // starts with 8 or 9
		PrivateKeyID:     239, // starts with 9 or c

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub

		HDCoinType: 1,
	}
)

// mainNetParams returns the network parameters for the main square network.
func mainNetParams() *Params {
	genesis := createGenesisBlock(1517756773, 6219155, 0x1e0ffff0, 1, genesisReward)

	return &Params{
		Name: "main",
		Net:  MainNet,
		Consensus: ConsensusParams{
			// Actual number of blocks per calendar year with DGW v3 is
			// about 200700.
			SubsidyHalvingInterval:           210240,
			MasternodePaymentsStartBlock:     100000,
			MasternodePaymentsIncreaseBlock:  158000,
			MasternodePaymentsIncreasePeriod: 576 * 30,
			MasternodeMinimumConfirmations:   15,
			InstantSendKeepLock:              24,
			BudgetPaymentsStartBlock:         328008,
			BudgetPaymentsCycleBlocks:        16616, // ~(60*24*30)/2.6
			BudgetPaymentsWindowBlocks:       100,
			BudgetProposalEstablishingTime:   24 * time.Hour,
			SuperblockStartBlock:             100,
			SuperblockCycle:                  16616, // ~(60*24*30)/2.6
			GovernanceMinQuorum:              10,
			GovernanceFilterElements:         20000,
			MajorityEnforceBlockUpgrade:      750,
			MajorityRejectBlockOutdated:      950,
			MajorityWindow:                   1000,
			BIP0034Height:                    1,
			BIP0034Hash:                      mainNetGenesisHash,
			PowLimit:                         powLimit,
			PowLimitBits:                     0x1e0fffff,
			TargetTimespan:                   24 * time.Hour,
			TargetTimePerBlock:               150 * time.Second,
			AllowMinDifficultyBlocks:         false,
			NoRetargeting:                    false,
			PowKGWHeight:                     15200,
			PowDGWHeight:                     34140,

			// Consensus rule change deployments.
			//
			// The miner confirmation window is defined as:
			//   target proof of work timespan / target proof of work spacing
			RuleChangeActivationThreshold: 1916, // 95% of MinerConfirmationWindow
			MinerConfirmationWindow:       2016,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {
					BitNumber:  28,
					StartTime:  1199145601, // January 1, 2008 UTC
					ExpireTime: 1230767999, // December 31, 2008 UTC
				},
				DeploymentCSV: {
					BitNumber:  0,
					StartTime:  1518187550, // February 9, 2018 UTC
					ExpireTime: 1549811869, // February 10, 2019 UTC
				},
				DeploymentDIP0001: {
					BitNumber:  1,
					StartTime:  1545708813, // December 25, 2018 UTC
					ExpireTime: 1577244813, // December 25, 2019 UTC
					WindowSize: 4032,
					Threshold:  3226, // 80% of 4032
				},
			},

			MinimumChainWork:   new(big.Int),
			GenesisHash:        mainNetGenesisHash,
			DefaultAssumeValid: mainNetGenesisHash,
		},

		AlertPubKey:         mustDecodeHex("0445aa0ac5e6d9302486f761bdde59f1982e4985d7d35b1958b68ee1744e8bd5f2638aaef803167b86bce80b7ccd5a582b2abb5a52023062554c88eb4af4f46ddb"),
		SporkPubKey:         mustDecodeHex("04e12501b5d787cbf2ffe78758f63a2d3d0bd205d0467d63bda7dae054ccf529001b09767c98a10c29a9ccd679beaa30ce3ec5057d041e772fdd5eacd2195a19a4"),
		DefaultPort:         "6666",
		MaxTipAge:           6 * time.Hour, // ~144 blocks behind, 2 x fork detection time
		DelayGetHeadersTime: 24 * time.Hour,
		PruneAfterHeight:    100000,

		GenesisBlock: genesis,
		GenesisHash:  mainNetGenesisHash,

		DNSSeeds: []DNSSeed{
			{Name: "cryptoseeds.xyz", Host: "seeds.cryptoseeds.xyz"},
		},
		FixedSeeds: mainNetFixedSeeds,

		Prefixes: mainNetPrefixes,

		Checkpoints: CheckpointData{
			Checkpoints: []Checkpoint{
				{0, mainNetGenesisHash},
			},
			TimeLastCheckpoint:         time.Unix(1517756773, 0),
			TransactionsLastCheckpoint: 0,
			TransactionsPerDay:         5000,
		},

		RequireStandard:               true,
		MiningRequiresPeers:           false,
		MineBlocksOnDemand:            false,
		DefaultConsistencyChecks:      false,
		TestnetToBeDeprecatedFieldRPC: false,

		PoolMaxTransactions:        3,
		FulfilledRequestExpireTime: time.Hour,
	}
}

// testNetParams returns the network parameters for the square test network.
func testNetParams() *Params {
	genesis := createGenesisBlock(1517756706, 1388910, 0x1e0ffff0, 1, genesisReward)

	return &Params{
		Name: "test",
		Net:  TestNet,
		Consensus: ConsensusParams{
			SubsidyHalvingInterval:           210240,
			MasternodePaymentsStartBlock:     4010,
			MasternodePaymentsIncreaseBlock:  4030,
			MasternodePaymentsIncreasePeriod: 10,
			MasternodeMinimumConfirmations:   1,
			InstantSendKeepLock:              6,
			BudgetPaymentsStartBlock:         4100,
			BudgetPaymentsCycleBlocks:        50,
			BudgetPaymentsWindowBlocks:       10,
			BudgetProposalEstablishingTime:   20 * time.Minute,
			SuperblockStartBlock:             4200, // must be above BudgetPaymentsStartBlock
			SuperblockCycle:                  24,   // hourly superblocks
			GovernanceMinQuorum:              1,
			GovernanceFilterElements:         500,
			MajorityEnforceBlockUpgrade:      51,
			MajorityRejectBlockOutdated:      75,
			MajorityWindow:                   100,
			BIP0034Height:                    1,
			BIP0034Hash:                      testNetGenesisHash,
			PowLimit:                         powLimit,
			PowLimitBits:                     0x1e0fffff,
			TargetTimespan:                   24 * time.Hour,
			TargetTimePerBlock:               150 * time.Second,
			AllowMinDifficultyBlocks:         false,
			NoRetargeting:                    false,
			PowKGWHeight:                     4001, // not below PowDGWHeight, so no KGW
			PowDGWHeight:                     4001,

			// Consensus rule change deployments.
			//
			// The miner confirmation window is defined as:
			//   target proof of work timespan / target proof of work spacing
			RuleChangeActivationThreshold: 1512, // 75% of MinerConfirmationWindow
			MinerConfirmationWindow:       2016,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {
					BitNumber:  28,
					StartTime:  1199145601, // January 1, 2008 UTC
					ExpireTime: 1230767999, // December 31, 2008 UTC
				},
				DeploymentCSV: {
					BitNumber:  0,
					StartTime:  1518187550, // February 9, 2018 UTC
					ExpireTime: 1549811869, // February 10, 2019 UTC
				},
				DeploymentDIP0001: {
					BitNumber:  1,
					StartTime:  1545708813, // December 25, 2018 UTC
					ExpireTime: 1577244813, // December 25, 2019 UTC
					WindowSize: 100,
					Threshold:  50, // 50% of 100
				},
			},

			MinimumChainWork:   new(big.Int),
			GenesisHash:        testNetGenesisHash,
			DefaultAssumeValid: testNetGenesisHash,
		},

		AlertPubKey:         mustDecodeHex("0436537f340703b9772f2030b29518914fd466685cc18a1ce0344877c4d82086821fafca8c7f8bcf9d5a1c5eb21416a87a3ba3a0f3bcb2e611a710c1a45587f5aa"),
		SporkPubKey:         mustDecodeHex("04d96271653a89958e17beb02d22babc960dfe2eee6a15b9e375095f26627c613a6e056e514ab7b6c40822dc312d537c19ce6aa6883304dea879026a40b8b5ce03"),
		DefaultPort:         "16666",
		MaxTipAge:           0x7fffffff * time.Second, // allow mining on top of old blocks
		DelayGetHeadersTime: 24 * time.Hour,
		PruneAfterHeight:    1000,

		GenesisBlock: genesis,
		GenesisHash:  testNetGenesisHash,

		DNSSeeds: []DNSSeed{
			{Name: "cryptoseeds.xyz", Host: "seeds.cryptoseeds.xyz"},
		},
		FixedSeeds: testNetFixedSeeds,

		Prefixes: testNetPrefixes,

		Checkpoints: CheckpointData{
			Checkpoints: []Checkpoint{
				{0, testNetGenesisHash},
			},
			TimeLastCheckpoint:         time.Unix(1517756706, 0),
			TransactionsLastCheckpoint: 0,
			TransactionsPerDay:         500,
		},

		RequireStandard:               false,
		MiningRequiresPeers:           false,
		MineBlocksOnDemand:            false,
		DefaultConsistencyChecks:      false,
		TestnetToBeDeprecatedFieldRPC: true,

		PoolMaxTransactions:        3,
		FulfilledRequestExpireTime: 5 * time.Minute,
	}
}

// regTestParams returns the network parameters for the regression test
// square network.
func regTestParams() *Params {
	genesis := createGenesisBlock(1517756649, 16, 0x207fffff, 1, genesisReward)

	// Deployments are always available for vote and never expire.
	const (
		alwaysStart = 0
		neverExpire = 999999999999
	)

	return &Params{
		Name: "regtest",
		Net:  RegTest,
		Consensus: ConsensusParams{
			SubsidyHalvingInterval:           150,
			MasternodePaymentsStartBlock:     240,
			MasternodePaymentsIncreaseBlock:  350,
			MasternodePaymentsIncreasePeriod: 10,
			MasternodeMinimumConfirmations:   0,
			InstantSendKeepLock:              6,
			BudgetPaymentsStartBlock:         1000,
			BudgetPaymentsCycleBlocks:        50,
			BudgetPaymentsWindowBlocks:       10,
			BudgetProposalEstablishingTime:   20 * time.Minute,
			SuperblockStartBlock:             1500,
			SuperblockCycle:                  10,
			GovernanceMinQuorum:              1,
			GovernanceFilterElements:         100,
			MajorityEnforceBlockUpgrade:      750,
			MajorityRejectBlockOutdated:      950,
			MajorityWindow:                   1000,
			BIP0034Height:                    -1, // not necessarily active
			BIP0034Hash:                      &chainhash.Hash{},
			PowLimit:                         regressionPowLimit,
			PowLimitBits:                     0x207fffff,
			TargetTimespan:                   24 * time.Hour,
			TargetTimePerBlock:               150 * time.Second,
			AllowMinDifficultyBlocks:         true,
			NoRetargeting:                    true,
			PowKGWHeight:                     15200, // same as main
			PowDGWHeight:                     34140, // same as main

			RuleChangeActivationThreshold: 108, // 75% of MinerConfirmationWindow
			MinerConfirmationWindow:       144,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {
					BitNumber:  28,
					StartTime:  alwaysStart,
					ExpireTime: neverExpire,
				},
				DeploymentCSV: {
					BitNumber:  0,
					StartTime:  alwaysStart,
					ExpireTime: neverExpire,
				},
				DeploymentDIP0001: {
					BitNumber:  1,
					StartTime:  alwaysStart,
					ExpireTime: neverExpire,
				},
			},

			MinimumChainWork:   new(big.Int),
			GenesisHash:        regTestGenesisHash,
			DefaultAssumeValid: &chainhash.Hash{},
		},

		DefaultPort:         "16664",
		MaxTipAge:           6 * time.Hour,
		DelayGetHeadersTime: 0, // never delay getheaders
		PruneAfterHeight:    1000,

		GenesisBlock: genesis,
		GenesisHash:  regTestGenesisHash,

		DNSSeeds:   nil, // NOTE: There must NOT be any seeds.
		FixedSeeds: nil,

		Prefixes: testNetPrefixes,

		Checkpoints: CheckpointData{
			Checkpoints: []Checkpoint{
				{0, regTestGenesisHash},
			},
			TimeLastCheckpoint:         time.Unix(0, 0),
			TransactionsLastCheckpoint: 0,
			TransactionsPerDay:         0,
		},

		RequireStandard:               false,
		MiningRequiresPeers:           false,
		MineBlocksOnDemand:            true,
		DefaultConsistencyChecks:      true,
		TestnetToBeDeprecatedFieldRPC: false,

		FulfilledRequestExpireTime: 5 * time.Minute,
	}
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in
// that it panics on an error since it will only (and must only) be called
// with hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// The only way this can panic is if there is an error in the
		// hard-coded hashes, so it can only ever happen on first use of
		// the package.
		panic(err)
	}
	return hash
}

// newBigFromStr converts a hard-coded big-endian hex string into a big.Int
// and panics if it is malformed.
func newBigFromStr(hexStr string) *big.Int {
	n, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("invalid hard-coded big number " + hexStr)
	}
	return n
}

// genesisAmount returns the value of the genesis coinbase output.
func (p *Params) genesisAmount() btcutil.Amount {
	return btcutil.Amount(p.GenesisBlock.Transactions[0].TxOut[0].Value)
}
