package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/squarecore/squared/chaincfg"
	"github.com/squarecore/squared/netstamp"
	"github.com/squarecore/squared/paramsrpc"
)

const (
	defaultDataDirname = "data"
	defaultLogDirname  = "logs"
	defaultLogFilename = "squareparams"
	defaultLogLevel    = "info"
	defaultRPCProxy    = "/square"
)

var (
	defaultHomeDir = btcutil.AppDataDir("squareparams", false)
	defaultDataDir = filepath.Join(defaultHomeDir, defaultDataDirname)
	defaultLogDir  = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for squareparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	TestNet     bool   `long:"testnet" description:"Use the test network"`
	RegTest     bool   `long:"regtest" description:"Use the regression test network"`
	DataDir     string `short:"b" long:"datadir" description:"Directory to store the network stamp"`
	DbType      string `long:"dbtype" description:"Database backend of the network stamp"`
	NoStamp     bool   `long:"nostamp" description:"Do not check or write the network stamp of the data directory"`
	LogDir      string `long:"logdir" description:"Directory to log output"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, fatal} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	ShowGenesis bool   `long:"showgenesis" description:"Print the genesis block of the selected network"`
	RPCListen   string `long:"rpclisten" description:"Serve the network parameters over HTTP on this interface/port"`
	RPCProxy    string `long:"rpcproxy" description:"Path prefix of the HTTP routes"`
	Mine        bool   `long:"mine" description:"Search a genesis nonce for --minetime and --minebits instead of using the compiled-in one"`
	MineTime    uint32 `long:"minetime" description:"Genesis block time to search a nonce for (unix seconds, default now)"`
	MineBits    string `long:"minebits" description:"Compact target to search a nonce for, in hex (default the genesis bits of the network)"`
	MineWorkers int    `long:"mineworkers" description:"Number of nonce search workers (default number of CPUs)"`

	network  string
	mineBits uint32
}

// networkName returns the name of the network selected by the flags.
func (cfg *config) networkName() (string, error) {
	numNets := 0
	name := chaincfg.MainNetName
	if cfg.TestNet {
		numNets++
		name = chaincfg.TestNetName
	}
	if cfg.RegTest {
		numNets++
		name = chaincfg.RegTestName
	}
	if numNets > 1 {
		return "", errors.New("the testnet and regtest params can't be " +
			"used together -- choose one of the two")
	}
	return name, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// parseBits parses a compact target given in hex, with or without 0x.
func parseBits(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	bits, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid compact target %q", s)
	}
	return uint32(bits), nil
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse CLI options and overwrite/add any specified options
//  3. Validate the result and derive the network selection
func loadConfig(args []string) (*config, []string, error) {
	cfg := config{
		DataDir:    defaultDataDir,
		DbType:     netstamp.DefaultDbType,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
		RPCProxy:   defaultRPCProxy,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	funcName := "loadConfig"
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)

	cfg.network, err = cfg.networkName()
	if err != nil {
		err := fmt.Errorf("%s: %v", funcName, err)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	// Append the network type to the data and log directories so they
	// are "namespaced" per network.
	cfg.DataDir = filepath.Join(cleanAndExpandPath(cfg.DataDir), cfg.network)
	cfg.LogDir = filepath.Join(cleanAndExpandPath(cfg.LogDir), cfg.network)

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("%s: %v", funcName, err)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	// Validate the stamp database type.
	if !validDbType(cfg.DbType) {
		str := "%s: the specified database type [%v] is invalid -- " +
			"supported types %v"
		err := fmt.Errorf(str, funcName, cfg.DbType,
			netstamp.SupportedDrivers())
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	if cfg.MineBits != "" {
		cfg.mineBits, err = parseBits(cfg.MineBits)
		if err != nil {
			err := fmt.Errorf("%s: %v", funcName, err)
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, nil, err
		}
	}
	if cfg.MineWorkers < 0 {
		str := "%s: the number of nonce search workers may not be " +
			"negative -- parsed [%d]"
		err := fmt.Errorf(str, funcName, cfg.MineWorkers)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}
	if cfg.MineWorkers == 0 {
		cfg.MineWorkers = runtime.NumCPU()
	}

	if cfg.RPCListen != "" && cfg.RPCListen != "default" {
		if _, _, err := net.SplitHostPort(cfg.RPCListen); err != nil {
			err := fmt.Errorf("%s: invalid --rpclisten: %v", funcName, err)
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, nil, err
		}
	}

	return &cfg, remainingArgs, nil
}

// rpcListenAddr returns the address the HTTP view should bind.
func (cfg *config) rpcListenAddr() string {
	if cfg.RPCListen == "default" {
		return paramsrpc.DefaultListen
	}
	return cfg.RPCListen
}

// validDbType returns whether or not dbType is a supported stamp backend.
func validDbType(dbType string) bool {
	for _, knownType := range netstamp.SupportedDrivers() {
		if dbType == knownType {
			return true
		}
	}
	return false
}
