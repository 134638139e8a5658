// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownNetwork describes an error where a network name does not
	// identify one of the supported networks.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrNotSelected describes an error where the current network
	// parameters were requested before any network was selected.
	ErrNotSelected = errors.New("no network selected")

	// ErrUnknownDeployment describes an error where a deployment id is
	// outside the set of defined deployments.
	ErrUnknownDeployment = errors.New("unknown deployment")

	// ErrDuplicateNet describes an error where the parameters for a square
	// network could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate square network")

	// ErrUnknownHDKeyID describes an error where the provided id which
	// is intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")
)

// IntegrityError reports compiled-in network parameters that disagree with
// themselves, such as a genesis block that does not hash to the hard-coded
// genesis hash.  It is never returned to callers.  Network construction
// panics with it, since continuing would run the node with an inconsistent
// network identity.
type IntegrityError struct {
	Network string
	Field   string
	Want    string
	Got     string
}

// Error satisfies the error interface.
func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s network parameters corrupted: %s is %s, "+
		"expected %s", e.Network, e.Field, e.Got, e.Want)
}
