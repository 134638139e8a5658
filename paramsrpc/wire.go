package paramsrpc

// BaseResp is the envelope every response starts with.  Code is 0 on success
// and -1 on failure, with the reason in Msg.
type BaseResp struct {
	Code int    `json:"code" example:"0"`
	Msg  string `json:"msg" example:"ok"`
}

type HealthStatusResp struct {
	Status      string `json:"status" example:"ok"`
	Network     string `json:"network" example:"main"`
	GenesisHash string `json:"genesis"`
}

type PrefixInfo struct {
	PubKeyHashAddrID byte   `json:"pubKeyHashAddrId"`
	ScriptHashAddrID byte   `json:"scriptHashAddrId"`
	PrivateKeyID     byte   `json:"privateKeyId"`
	HDPrivateKeyID   string `json:"hdPrivateKeyId"`
	HDPublicKeyID    string `json:"hdPublicKeyId"`
	HDCoinType       uint32 `json:"hdCoinType"`
}

type NetworkInfo struct {
	Name                          string     `json:"name"`
	Magic                         string     `json:"magic"`
	MessageStart                  string     `json:"messageStart"`
	DefaultPort                   string     `json:"defaultPort"`
	GenesisHash                   string     `json:"genesisHash"`
	AlertPubKey                   string     `json:"alertPubKey,omitempty"`
	SporkPubKey                   string     `json:"sporkPubKey,omitempty"`
	MaxTipAge                     int64      `json:"maxTipAge"`
	DelayGetHeadersTime           int64      `json:"delayGetHeadersTime"`
	PruneAfterHeight              uint64     `json:"pruneAfterHeight"`
	Prefixes                      PrefixInfo `json:"prefixes"`
	RequireStandard               bool       `json:"requireStandard"`
	MiningRequiresPeers           bool       `json:"miningRequiresPeers"`
	MineBlocksOnDemand            bool       `json:"mineBlocksOnDemand"`
	DefaultConsistencyChecks      bool       `json:"defaultConsistencyChecks"`
	TestnetToBeDeprecatedFieldRPC bool       `json:"testnetToBeDeprecatedFieldRpc"`
	PoolMaxTransactions           int        `json:"poolMaxTransactions"`
	FulfilledRequestExpireTime    int64      `json:"fulfilledRequestExpireTime"`
}

type GenesisInfo struct {
	Hash         string `json:"hash"`
	MerkleRoot   string `json:"merkleRoot"`
	PrevBlock    string `json:"prevBlock"`
	Version      int32  `json:"version"`
	Time         int64  `json:"time"`
	Bits         string `json:"bits"`
	Nonce        uint32 `json:"nonce"`
	Reward       int64  `json:"reward"`
	CoinbaseTxID string `json:"coinbaseTxid"`
	CoinbaseHex  string `json:"coinbaseHex"`
	HeaderHex    string `json:"headerHex"`
	Size         int    `json:"size"`
}

type ConsensusInfo struct {
	SubsidyHalvingInterval           int32  `json:"subsidyHalvingInterval"`
	MasternodePaymentsStartBlock     int32  `json:"masternodePaymentsStartBlock"`
	MasternodePaymentsIncreaseBlock  int32  `json:"masternodePaymentsIncreaseBlock"`
	MasternodePaymentsIncreasePeriod int32  `json:"masternodePaymentsIncreasePeriod"`
	MasternodeMinimumConfirmations   int32  `json:"masternodeMinimumConfirmations"`
	InstantSendKeepLock              int32  `json:"instantSendKeepLock"`
	BudgetPaymentsStartBlock         int32  `json:"budgetPaymentsStartBlock"`
	BudgetPaymentsCycleBlocks        int32  `json:"budgetPaymentsCycleBlocks"`
	BudgetPaymentsWindowBlocks       int32  `json:"budgetPaymentsWindowBlocks"`
	BudgetProposalEstablishingTime   int64  `json:"budgetProposalEstablishingTime"`
	SuperblockStartBlock             int32  `json:"superblockStartBlock"`
	SuperblockCycle                  int32  `json:"superblockCycle"`
	GovernanceMinQuorum              int32  `json:"governanceMinQuorum"`
	GovernanceFilterElements         int32  `json:"governanceFilterElements"`
	MajorityEnforceBlockUpgrade      int32  `json:"majorityEnforceBlockUpgrade"`
	MajorityRejectBlockOutdated      int32  `json:"majorityRejectBlockOutdated"`
	MajorityWindow                   int32  `json:"majorityWindow"`
	BIP0034Height                    int32  `json:"bip34Height"`
	BIP0034Hash                      string `json:"bip34Hash"`
	PowLimit                         string `json:"powLimit"`
	PowLimitBits                     string `json:"powLimitBits"`
	TargetTimespan                   int64  `json:"powTargetTimespan"`
	TargetTimePerBlock               int64  `json:"powTargetSpacing"`
	AllowMinDifficultyBlocks         bool   `json:"powAllowMinDifficultyBlocks"`
	NoRetargeting                    bool   `json:"powNoRetargeting"`
	PowKGWHeight                     int32  `json:"powKGWHeight"`
	PowDGWHeight                     int32  `json:"powDGWHeight"`
	RuleChangeActivationThreshold    uint32 `json:"ruleChangeActivationThreshold"`
	MinerConfirmationWindow          uint32 `json:"minerConfirmationWindow"`
	MinimumChainWork                 string `json:"minimumChainWork"`
	DefaultAssumeValid               string `json:"defaultAssumeValid"`
}

type DeploymentInfo struct {
	Name       string `json:"name"`
	Bit        uint8  `json:"bit"`
	StartTime  uint64 `json:"startTime"`
	ExpireTime uint64 `json:"timeout"`
	Window     uint32 `json:"window"`
	Threshold  uint32 `json:"threshold"`
}

type CheckpointInfo struct {
	Height int32  `json:"height"`
	Hash   string `json:"hash"`
}

type CheckpointsInfo struct {
	Checkpoints                []*CheckpointInfo `json:"checkpoints"`
	TimeLastCheckpoint         int64             `json:"timeLastCheckpoint"`
	TransactionsLastCheckpoint int64             `json:"transactionsLastCheckpoint"`
	TransactionsPerDay         float64           `json:"transactionsPerDay"`
}

type DNSSeedInfo struct {
	Name string `json:"name"`
	Host string `json:"host"`
}

type SeedsInfo struct {
	DNSSeeds   []*DNSSeedInfo `json:"dnsSeeds"`
	FixedSeeds []string       `json:"fixedSeeds"`
}

type NetworkResp struct {
	BaseResp
	Data *NetworkInfo `json:"data"`
}

type GenesisResp struct {
	BaseResp
	Data *GenesisInfo `json:"data"`
}

type ConsensusResp struct {
	BaseResp
	Data *ConsensusInfo `json:"data"`
}

type DeploymentsResp struct {
	BaseResp
	Data []*DeploymentInfo `json:"data"`
}

type DeploymentResp struct {
	BaseResp
	Data *DeploymentInfo `json:"data"`
}

type CheckpointsResp struct {
	BaseResp
	Data *CheckpointsInfo `json:"data"`
}

type SeedsResp struct {
	BaseResp
	Data *SeedsInfo `json:"data"`
}
