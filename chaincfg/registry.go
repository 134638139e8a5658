// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Names of the supported networks.
const (
	MainNetName = "main"
	TestNetName = "test"
	RegTestName = "regtest"
)

// networks lists the supported networks in the order Networks reports them.
var networks = []struct {
	name  string
	build func() *Params
}{
	{MainNetName, mainNetParams},
	{TestNetName, testNetParams},
	{RegTestName, regTestParams},
}

// Registry hands out the parameters of the supported networks and tracks the
// one selected for the running process.
//
// Parameters are built and checked the first time a network is requested and
// shared afterwards.  A network whose compiled-in parameters fail the
// integrity check panics with an *IntegrityError on every request.
//
// All methods are safe for concurrent use.  Select is meant to be called once
// during startup, before any reader calls Current.
type Registry struct {
	profiles map[string]func() *Params
	current  atomic.Pointer[Params]
}

// NewRegistry returns a registry with no network selected.
func NewRegistry() *Registry {
	r := &Registry{
		profiles: make(map[string]func() *Params, len(networks)),
	}
	for _, network := range networks {
		r.add(network.name, network.build)
	}
	return r
}

// add makes the network produced by build available under name.
func (r *Registry) add(name string, build func() *Params) {
	r.profiles[name] = sync.OnceValue(func() *Params {
		p := build()
		mustVerify(p)
		log.Debugf("Built %s network parameters, genesis %v", p.Name,
			p.GenesisHash)
		return p
	})
}

// ParamsFor returns the parameters of the named network.  Repeated calls with
// the same name return the same value.
func (r *Registry) ParamsFor(name string) (*Params, error) {
	profile, ok := r.profiles[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNetwork, "%q", name)
	}
	return profile(), nil
}

// Select makes the named network the current one and returns its parameters.
// Selecting again replaces the previous choice.
func (r *Registry) Select(name string) (*Params, error) {
	p, err := r.ParamsFor(name)
	if err != nil {
		return nil, err
	}
	if prev := r.current.Swap(p); prev != nil && prev != p {
		log.Warnf("Network selection changed from %s to %s", prev.Name,
			p.Name)
	}
	log.Infof("Selected %s network (magic %08x, port %s)", p.Name,
		uint32(p.Net), p.DefaultPort)
	return p, nil
}

// Current returns the parameters of the selected network, or ErrNotSelected
// when Select has not been called yet.
func (r *Registry) Current() (*Params, error) {
	p := r.current.Load()
	if p == nil {
		return nil, ErrNotSelected
	}
	return p, nil
}

// MustCurrent is like Current but panics when no network is selected.
func (r *Registry) MustCurrent() *Params {
	p, err := r.Current()
	if err != nil {
		panic(err)
	}
	return p
}

// Networks returns the names of the supported networks.
func Networks() []string {
	names := make([]string, 0, len(networks))
	for _, network := range networks {
		names = append(names, network.name)
	}
	return names
}

// defaultRegistry backs the package level accessors.
var defaultRegistry = NewRegistry()

// ParamsFor returns the parameters of the named network from the default
// registry.
func ParamsFor(name string) (*Params, error) {
	return defaultRegistry.ParamsFor(name)
}

// Select selects the named network in the default registry.
func Select(name string) (*Params, error) {
	return defaultRegistry.Select(name)
}

// Current returns the network selected in the default registry.
func Current() (*Params, error) {
	return defaultRegistry.Current()
}

// MustCurrent returns the network selected in the default registry and
// panics when there is none.
func MustCurrent() *Params {
	return defaultRegistry.MustCurrent()
}
