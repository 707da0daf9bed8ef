package laxder

import (
	"context"
	"runtime"
	"sync"
)

// BatchResult holds the outcome of normalizing one signature from a dump.
type BatchResult struct {
	Index int              // Position of the raw signature in the input slice
	Sig   CompactSignature // Normalized form, valid only when Err is nil
	Err   error            // Parse failure, or the context error after cancellation
}

// DecodeBatch normalizes a dump of raw DER signatures using parallel
// workers. Results are indexed by input position, so the output order is
// deterministic regardless of scheduling. numWorkers <= 0 uses one worker
// per CPU core.
//
// The parser itself is stateless; this is only a driver for large historical
// dumps. After ctx is cancelled, remaining entries are marked with the
// context error instead of being decoded.
func DecodeBatch(ctx context.Context, raws [][]byte, numWorkers int) []BatchResult {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(raws) {
		numWorkers = len(raws)
	}

	results := make([]BatchResult, len(raws))
	workChan := make(chan int, numWorkers)

	go func() {
		defer close(workChan)
		for i := range raws {
			workChan <- i
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range workChan {
				if err := ctx.Err(); err != nil {
					results[i] = BatchResult{Index: i, Err: err}
					continue
				}
				sig, err := ParseSignature(raws[i])
				results[i] = BatchResult{Index: i, Sig: sig, Err: err}
			}
		}()
	}
	wg.Wait()

	return results
}
