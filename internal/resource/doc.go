// Package resource bounds what t1hasum may consume while hashing many
// inputs at once.
//
// A Controller governs three budgets:
//
//   - Memory: bytes held by in-memory inputs (weighted semaphore)
//   - Workers: concurrent hashing jobs (weighted semaphore)
//   - IO: read throughput from files and stdin (token bucket)
//
// A nil *Controller is valid and imposes no limits, so callers never need
// to branch on whether limits were configured.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:   512 << 20,
//	    MaxWorkers:         4,
//	    IOLimitBytesPerSec: 64 << 20,
//	})
//	if err := rc.AcquireMemory(ctx, size); err != nil {
//	    return err
//	}
//	defer rc.ReleaseMemory(size)
//
// Memory acquisition blocks until enough has been released. A request larger
// than the whole budget can never succeed and fails at once with
// ErrMemoryLimitExceeded.
package resource
