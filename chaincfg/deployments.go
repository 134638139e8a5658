// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"

	"github.com/pkg/errors"
)

// DeploymentID identifies a consensus rule change deployment.
type DeploymentID uint8

// Constants that define the deployment offset in the deployments field of the
// parameters for each deployment.  This is useful to be able to get the details
// of a specific deployment by name.
const (
	// DeploymentTestDummy defines the rule change deployment ID for testing
	// purposes.
	DeploymentTestDummy DeploymentID = iota

	// DeploymentCSV defines the rule change deployment ID for the CSV
	// soft-fork package. The CSV package includes the deployment of BIPS
	// 68, 112, and 113.
	DeploymentCSV

	// DeploymentDIP0001 defines the rule change deployment ID for DIP0001,
	// the block size and fee increase.
	DeploymentDIP0001

	// NOTE: DefinedDeployments must always come last since it is used to
	// determine how many defined deployments there currently are.

	// DefinedDeployments is the number of currently defined deployments.
	DefinedDeployments
)

// Map of deployment IDs back to their constant names for pretty printing.
var deploymentStrings = map[DeploymentID]string{
	DeploymentTestDummy: "testdummy",
	DeploymentCSV:       "csv",
	DeploymentDIP0001:   "dip0001",
}

// String returns the DeploymentID in human-readable form.
func (id DeploymentID) String() string {
	if s, ok := deploymentStrings[id]; ok {
		return s
	}
	return fmt.Sprintf("Unknown DeploymentID (%d)", uint8(id))
}

// DeploymentByName returns the deployment id with the given human-readable
// name.
func DeploymentByName(name string) (DeploymentID, error) {
	for id := DeploymentID(0); id < DefinedDeployments; id++ {
		if deploymentStrings[id] == name {
			return id, nil
		}
	}
	return DefinedDeployments, errors.Wrapf(ErrUnknownDeployment, "%q", name)
}

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.  This is part of BIP0009.
//
// No two deployments of one network may use the same bit while their
// [StartTime, ExpireTime] windows overlap.  The versionbits tracker relies on
// that, and nothing here enforces it at runtime.
type ConsensusDeployment struct {
	// BitNumber defines the specific bit number within the block version
	// this particular soft-fork deployment refers to.
	BitNumber uint8

	// StartTime is the median block time after which voting on the
	// deployment starts.
	StartTime uint64

	// ExpireTime is the median block time after which the attempted
	// deployment expires.
	ExpireTime uint64

	// WindowSize is the number of blocks in each signalling window.  Zero
	// means the network's MinerConfirmationWindow.
	WindowSize uint32

	// Threshold is the number of signalling blocks within a window needed
	// to lock the deployment in.  Zero means the network's
	// RuleChangeActivationThreshold.
	Threshold uint32
}

// EffectiveWindow returns the signalling window size for the deployment on
// the network described by params.
func (d *ConsensusDeployment) EffectiveWindow(params *ConsensusParams) uint32 {
	if d.WindowSize != 0 {
		return d.WindowSize
	}
	return params.MinerConfirmationWindow
}

// EffectiveThreshold returns the lock-in threshold for the deployment on the
// network described by params.
func (d *ConsensusDeployment) EffectiveThreshold(params *ConsensusParams) uint32 {
	if d.Threshold != 0 {
		return d.Threshold
	}
	return params.RuleChangeActivationThreshold
}

// Deployment returns the descriptor of the deployment identified by id.
func (p *ConsensusParams) Deployment(id DeploymentID) (*ConsensusDeployment, error) {
	if id >= DefinedDeployments {
		return nil, errors.Wrapf(ErrUnknownDeployment, "id %d", uint8(id))
	}
	return &p.Deployments[id], nil
}

// deploymentOverlaps returns the first pair of deployments that share a bit
// while their voting windows overlap.
func (p *ConsensusParams) deploymentOverlaps() (DeploymentID, DeploymentID, bool) {
	for i := DeploymentID(0); i < DefinedDeployments; i++ {
		a := &p.Deployments[i]
		for j := i + 1; j < DefinedDeployments; j++ {
			b := &p.Deployments[j]
			if a.BitNumber != b.BitNumber {
				continue
			}
			if a.StartTime <= b.ExpireTime && b.StartTime <= a.ExpireTime {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
