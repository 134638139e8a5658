package paramsrpc

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/squarecore/squared/blockhash"
	"github.com/squarecore/squared/chaincfg"
)

type Model struct {
	params *chaincfg.Params
}

func NewModel(params *chaincfg.Params) *Model {
	return &Model{
		params: params,
	}
}

func (s *Model) getNetwork() *NetworkInfo {
	p := s.params
	start := p.MessageStart()
	return &NetworkInfo{
		Name:                p.Name,
		Magic:               fmt.Sprintf("%08x", uint32(p.Net)),
		MessageStart:        hex.EncodeToString(start[:]),
		DefaultPort:         p.DefaultPort,
		GenesisHash:         p.GenesisHash.String(),
		AlertPubKey:         hex.EncodeToString(p.AlertPubKey),
		SporkPubKey:         hex.EncodeToString(p.SporkPubKey),
		MaxTipAge:           int64(p.MaxTipAge.Seconds()),
		DelayGetHeadersTime: int64(p.DelayGetHeadersTime.Seconds()),
		PruneAfterHeight:    p.PruneAfterHeight,
		Prefixes: PrefixInfo{
			PubKeyHashAddrID: p.Prefixes.PubKeyHashAddrID,
			ScriptHashAddrID: p.Prefixes.ScriptHashAddrID,
			PrivateKeyID:     p.Prefixes.PrivateKeyID,
			HDPrivateKeyID:   hex.EncodeToString(p.Prefixes.HDPrivateKeyID[:]),
			HDPublicKeyID:    hex.EncodeToString(p.Prefixes.HDPublicKeyID[:]),
			HDCoinType:       p.Prefixes.HDCoinType,
		},
		RequireStandard:               p.RequireStandard,
		MiningRequiresPeers:           p.MiningRequiresPeers,
		MineBlocksOnDemand:            p.MineBlocksOnDemand,
		DefaultConsistencyChecks:      p.DefaultConsistencyChecks,
		TestnetToBeDeprecatedFieldRPC: p.TestnetToBeDeprecatedFieldRPC,
		PoolMaxTransactions:           p.PoolMaxTransactions,
		FulfilledRequestExpireTime:    int64(p.FulfilledRequestExpireTime.Seconds()),
	}
}

func (s *Model) getGenesis() (*GenesisInfo, error) {
	block := s.params.GenesisBlock
	header := &block.Header
	coinbase := block.Transactions[0]

	var txBuf bytes.Buffer
	if err := coinbase.Serialize(&txBuf); err != nil {
		return nil, err
	}
	var headerBuf bytes.Buffer
	if err := header.Serialize(&headerBuf); err != nil {
		return nil, err
	}

	hash := blockhash.HeaderHash(header)
	return &GenesisInfo{
		Hash:         hash.String(),
		MerkleRoot:   header.MerkleRoot.String(),
		PrevBlock:    header.PrevBlock.String(),
		Version:      header.Version,
		Time:         header.Timestamp.Unix(),
		Bits:         fmt.Sprintf("%08x", header.Bits),
		Nonce:        header.Nonce,
		Reward:       coinbase.TxOut[0].Value,
		CoinbaseTxID: coinbase.TxHash().String(),
		CoinbaseHex:  hex.EncodeToString(txBuf.Bytes()),
		HeaderHex:    hex.EncodeToString(headerBuf.Bytes()),
		Size:         block.SerializeSize(),
	}, nil
}

func (s *Model) getConsensus() *ConsensusInfo {
	c := &s.params.Consensus
	return &ConsensusInfo{
		SubsidyHalvingInterval:           c.SubsidyHalvingInterval,
		MasternodePaymentsStartBlock:     c.MasternodePaymentsStartBlock,
		MasternodePaymentsIncreaseBlock:  c.MasternodePaymentsIncreaseBlock,
		MasternodePaymentsIncreasePeriod: c.MasternodePaymentsIncreasePeriod,
		MasternodeMinimumConfirmations:   c.MasternodeMinimumConfirmations,
		InstantSendKeepLock:              c.InstantSendKeepLock,
		BudgetPaymentsStartBlock:         c.BudgetPaymentsStartBlock,
		BudgetPaymentsCycleBlocks:        c.BudgetPaymentsCycleBlocks,
		BudgetPaymentsWindowBlocks:       c.BudgetPaymentsWindowBlocks,
		BudgetProposalEstablishingTime:   int64(c.BudgetProposalEstablishingTime.Seconds()),
		SuperblockStartBlock:             c.SuperblockStartBlock,
		SuperblockCycle:                  c.SuperblockCycle,
		GovernanceMinQuorum:              c.GovernanceMinQuorum,
		GovernanceFilterElements:         c.GovernanceFilterElements,
		MajorityEnforceBlockUpgrade:      c.MajorityEnforceBlockUpgrade,
		MajorityRejectBlockOutdated:      c.MajorityRejectBlockOutdated,
		MajorityWindow:                   c.MajorityWindow,
		BIP0034Height:                    c.BIP0034Height,
		BIP0034Hash:                      c.BIP0034Hash.String(),
		PowLimit:                         fmt.Sprintf("%064x", c.PowLimit),
		PowLimitBits:                     fmt.Sprintf("%08x", c.PowLimitBits),
		TargetTimespan:                   int64(c.TargetTimespan.Seconds()),
		TargetTimePerBlock:               int64(c.TargetTimePerBlock.Seconds()),
		AllowMinDifficultyBlocks:         c.AllowMinDifficultyBlocks,
		NoRetargeting:                    c.NoRetargeting,
		PowKGWHeight:                     c.PowKGWHeight,
		PowDGWHeight:                     c.PowDGWHeight,
		RuleChangeActivationThreshold:    c.RuleChangeActivationThreshold,
		MinerConfirmationWindow:          c.MinerConfirmationWindow,
		MinimumChainWork:                 fmt.Sprintf("%064x", c.MinimumChainWork),
		DefaultAssumeValid:               c.DefaultAssumeValid.String(),
	}
}

func (s *Model) getDeployment(id chaincfg.DeploymentID) (*DeploymentInfo, error) {
	c := &s.params.Consensus
	d, err := c.Deployment(id)
	if err != nil {
		return nil, err
	}
	return &DeploymentInfo{
		Name:       id.String(),
		Bit:        d.BitNumber,
		StartTime:  d.StartTime,
		ExpireTime: d.ExpireTime,
		Window:     d.EffectiveWindow(c),
		Threshold:  d.EffectiveThreshold(c),
	}, nil
}

func (s *Model) getDeployments() ([]*DeploymentInfo, error) {
	result := make([]*DeploymentInfo, 0, chaincfg.DefinedDeployments)
	for id := chaincfg.DeploymentID(0); id < chaincfg.DefinedDeployments; id++ {
		info, err := s.getDeployment(id)
		if err != nil {
			return nil, err
		}
		result = append(result, info)
	}
	return result, nil
}

func (s *Model) getCheckpoints() *CheckpointsInfo {
	data := &s.params.Checkpoints
	result := &CheckpointsInfo{
		Checkpoints:                make([]*CheckpointInfo, 0, len(data.Checkpoints)),
		TransactionsLastCheckpoint: data.TransactionsLastCheckpoint,
		TransactionsPerDay:         data.TransactionsPerDay,
	}
	if !data.TimeLastCheckpoint.IsZero() {
		result.TimeLastCheckpoint = data.TimeLastCheckpoint.Unix()
	}
	for _, checkpoint := range data.Checkpoints {
		result.Checkpoints = append(result.Checkpoints, &CheckpointInfo{
			Height: checkpoint.Height,
			Hash:   checkpoint.Hash.String(),
		})
	}
	return result
}

func (s *Model) getSeeds() *SeedsInfo {
	result := &SeedsInfo{
		DNSSeeds:   make([]*DNSSeedInfo, 0, len(s.params.DNSSeeds)),
		FixedSeeds: make([]string, 0, len(s.params.FixedSeeds)),
	}
	for _, seed := range s.params.DNSSeeds {
		result.DNSSeeds = append(result.DNSSeeds, &DNSSeedInfo{
			Name: seed.Name,
			Host: seed.Host,
		})
	}
	for _, seed := range s.params.FixedSeeds {
		result.FixedSeeds = append(result.FixedSeeds, seed.String())
	}
	return result
}
