// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netstamp

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

var (
	// ErrDbTypeRegistered indicates a driver was registered under a
	// database type that already has one.
	ErrDbTypeRegistered = errors.New("database type already registered")

	// ErrDbUnknownType indicates there is no driver registered for the
	// requested database type.
	ErrDbUnknownType = errors.New("unknown database type")
)

// Backend is the key/value storage a stamp is kept in.
type Backend interface {
	// Get returns the value stored under key, or nil when there is none.
	Get(key []byte) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(key, value []byte) error

	// Close releases the storage.
	Close() error
}

// Driver defines a structure for backend drivers to use when they registered
// themselves as a backend which implements the Backend interface.
type Driver struct {
	// DbType is the identifier used to uniquely identify a specific
	// database driver.  There can be only one driver with the same name.
	DbType string

	// Open opens the storage of this type inside the data directory dir,
	// creating it when it does not exist yet.
	Open func(dir string) (Backend, error)
}

// drivers holds all of the registered database backends.
var drivers = make(map[string]*Driver)

// RegisterDriver adds a backend database driver to available interfaces.
// ErrDbTypeRegistered will be returned if the database type for the driver has
// already been registered.
func RegisterDriver(driver Driver) error {
	if _, exists := drivers[driver.DbType]; exists {
		return errors.Wrapf(ErrDbTypeRegistered, "driver %q",
			driver.DbType)
	}

	drivers[driver.DbType] = &driver
	return nil
}

// SupportedDrivers returns a slice of strings that represent the database
// drivers that have been registered and are therefore supported.
func SupportedDrivers() []string {
	supportedDBs := make([]string, 0, len(drivers))
	for _, drv := range drivers {
		supportedDBs = append(supportedDBs, drv.DbType)
	}
	sort.Strings(supportedDBs)
	return supportedDBs
}

// openBackend opens the storage of type dbType in dir.
func openBackend(dbType, dir string) (Backend, error) {
	drv, exists := drivers[dbType]
	if !exists {
		return nil, errors.Wrapf(ErrDbUnknownType, "driver %q is not "+
			"registered (supported: %v)", dbType,
			fmt.Sprint(SupportedDrivers()))
	}
	return drv.Open(dir)
}

func mustRegisterDriver(driver Driver) {
	if err := RegisterDriver(driver); err != nil {
		panic(fmt.Sprintf("Failed to register database driver '%s': %v",
			driver.DbType, err))
	}
}
