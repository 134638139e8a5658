// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"net"
	"strconv"

	"github.com/pkg/errors"
)

// SeedSpec6 is a fixed seed node address.  IPv4 addresses are stored in their
// IPv4-mapped IPv6 form.
type SeedSpec6 struct {
	Addr [16]byte
	Port uint16
}

// NewSeedSpec6 returns the fixed seed for the given IP literal and port.
func NewSeedSpec6(ip string, port uint16) (SeedSpec6, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return SeedSpec6{}, errors.Errorf("invalid seed address %q", ip)
	}
	var seed SeedSpec6
	copy(seed.Addr[:], parsed.To16())
	seed.Port = port
	return seed, nil
}

// IP returns the address of the seed.
func (s SeedSpec6) IP() net.IP {
	ip := make(net.IP, net.IPv6len)
	copy(ip, s.Addr[:])
	if ip4 := ip.To4(); ip4 != nil {
		return ip4
	}
	return ip
}

// TCPAddr returns the address of the seed as a dialable TCP address.
func (s SeedSpec6) TCPAddr() *net.TCPAddr {
	return &net.TCPAddr{IP: s.IP(), Port: int(s.Port)}
}

// String returns the seed in host:port form.
func (s SeedSpec6) String() string {
	return net.JoinHostPort(s.IP().String(), strconv.Itoa(int(s.Port)))
}

// The fixed seed lists are generated from the live network and start out
// empty.  Peers come from the DNS seeds until they are filled in.
var (
	mainNetFixedSeeds []SeedSpec6
	testNetFixedSeeds []SeedSpec6
)
