package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	flags "github.com/jessevdk/go-flags"

	"github.com/squarecore/squared/chaincfg"
	"github.com/squarecore/squared/netstamp"
	"github.com/squarecore/squared/paramsrpc"
)

// shutdownTimeout bounds how long in-flight HTTP requests may take once an
// interrupt arrives.
const shutdownTimeout = 5 * time.Second

// checkStamp makes sure the data directory belongs to the selected network,
// stamping it on first use.
func checkStamp(cfg *config, chainParams *chaincfg.Params) error {
	store, err := netstamp.OpenDriver(cfg.DbType, cfg.DataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Check(chainParams)
}

// squareMain is the real main function for squareparams.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func squareMain() error {
	cfg, _, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	if err := initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename)); err != nil {
		return err
	}

	// Selecting a network builds and self-checks its parameters.  A
	// parameter set that does not hold together panics here, before
	// anything is written.
	chainParams, err := chaincfg.Select(cfg.network)
	if err != nil {
		return err
	}
	mainLog.Infof("Network %s, genesis %v", chainParams.Name,
		chainParams.GenesisHash)

	if !cfg.NoStamp {
		if err := checkStamp(cfg, chainParams); err != nil {
			mainLog.Errorf("Data directory %s: %v", cfg.DataDir, err)
			return err
		}
	}

	if cfg.ShowGenesis {
		if err := showGenesisBlock(os.Stdout, chainParams); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt,
		syscall.SIGTERM)
	defer stop()

	if cfg.Mine {
		blockTime := cfg.MineTime
		if blockTime == 0 {
			blockTime = uint32(time.Now().Unix())
		}
		bits := cfg.mineBits
		if bits == 0 {
			bits = chainParams.GenesisBlock.Header.Bits
		}

		block, err := mineGenesis(ctx, chainParams, blockTime, bits,
			cfg.MineWorkers)
		if err != nil {
			mainLog.Errorf("Nonce search failed: %v", err)
			return err
		}
		if err := showBlock(os.Stdout, block, chainParams); err != nil {
			return err
		}
	}

	if cfg.RPCListen == "" {
		return nil
	}

	rpc := paramsrpc.NewRpc(chainParams)
	if err := rpc.Start(cfg.rpcListenAddr(), cfg.RPCProxy, cfg.LogDir); err != nil {
		return err
	}

	<-ctx.Done()
	mainLog.Infof("Received interrupt signal, shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		shutdownTimeout)
	defer cancel()
	if err := rpc.Stop(shutdownCtx); err != nil {
		mainLog.Warnf("RPC server shutdown: %v", err)
	}
	mainLog.Infof("Shutdown complete")
	return nil
}

func main() {
	if err := squareMain(); err != nil {
		// The flags parser already printed the usage.
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
