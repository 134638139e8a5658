package main

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/pkg/errors"

	"github.com/squarecore/squared/blockhash"
	"github.com/squarecore/squared/chaincfg"
)

// errNonceSpaceExhausted is returned when no 32-bit nonce satisfies the
// target for the given header.
var errNonceSpaceExhausted = errors.New("no nonce satisfies the target")

// cancelCheckInterval is the number of hashes a worker computes between
// checks for cancellation.
const cancelCheckInterval = 1 << 12

// mineResult describes a header whose hash meets its target.
type mineResult struct {
	Header wire.BlockHeader
	Hash   chainhash.Hash
	Hashes uint64
}

// genesisTemplate returns a copy of the genesis block of the network with
// the given time and bits and a zero nonce.  The coinbase does not depend on
// the header, so the merkle root carries over.
func genesisTemplate(chainParams *chaincfg.Params, blockTime, bits uint32) *wire.MsgBlock {
	template := *chainParams.GenesisBlock
	template.Header.Timestamp = time.Unix(int64(blockTime), 0)
	template.Header.Bits = bits
	template.Header.Nonce = 0
	return &template
}

// searchNonce looks for a nonce whose X11 header hash is at or below the
// target encoded in the header bits.  The nonce space is split between
// workers, each striding by the worker count.  The search stops at the first
// hit or when ctx is done.
//
// With one worker the result is the lowest qualifying nonce.  With several,
// it is the lowest of the hits made before the workers stopped, which need
// not be the lowest in the whole nonce space.
func searchNonce(ctx context.Context, header wire.BlockHeader, workers int) (*mineResult, error) {
	if workers < 1 {
		workers = 1
	}
	target := blockchain.CompactToBig(header.Bits)
	if target.Sign() <= 0 {
		return nil, errors.Errorf("compact target %08x is not positive",
			header.Bits)
	}

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg     sync.WaitGroup
		hashes atomic.Uint64
		found  = make(chan wire.BlockHeader, workers)
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start uint64) {
			defer wg.Done()

			candidate := header
			var n uint64
			defer func() { hashes.Add(n) }()

			for nonce := start; nonce <= math.MaxUint32; nonce += uint64(workers) {
				if n%cancelCheckInterval == 0 {
					select {
					case <-searchCtx.Done():
						return
					default:
					}
				}

				candidate.Nonce = uint32(nonce)
				hash := blockhash.HeaderHash(&candidate)
				n++
				if blockchain.HashToBig(&hash).Cmp(target) <= 0 {
					found <- candidate
					cancel()
					return
				}
			}
		}(uint64(w))
	}
	wg.Wait()
	close(found)

	// Several workers may hit before they notice the cancellation.  Report
	// the lowest nonce among them.
	var best *wire.BlockHeader
	for candidate := range found {
		candidate := candidate
		if best == nil || candidate.Nonce < best.Nonce {
			best = &candidate
		}
	}
	if best == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, errNonceSpaceExhausted
	}

	return &mineResult{
		Header: *best,
		Hash:   blockhash.HeaderHash(best),
		Hashes: hashes.Load(),
	}, nil
}

// mineGenesis searches a nonce for the genesis block of the network at the
// given time and bits and logs the outcome.
func mineGenesis(ctx context.Context, chainParams *chaincfg.Params, blockTime,
	bits uint32, workers int) (*wire.MsgBlock, error) {

	block := genesisTemplate(chainParams, blockTime, bits)
	minrLog.Infof("Searching a %s genesis nonce: time %d, bits %08x, "+
		"%d workers", chainParams.Name, blockTime, bits, workers)

	start := time.Now()
	result, err := searchNonce(ctx, block.Header, workers)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	block.Header = result.Header
	rate := float64(result.Hashes) / math.Max(elapsed.Seconds(), 1e-3)
	minrLog.Infof("Found nonce %d after %d hashes in %v (%.0f hashes/s): %v",
		result.Header.Nonce, result.Hashes, elapsed.Round(time.Millisecond),
		rate, result.Hash)
	return block, nil
}
