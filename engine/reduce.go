package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrBadRank is returned when a partial result names a worker outside the run.
	ErrBadRank = errors.New("worker rank out of range")

	// ErrDuplicateRank is returned when a worker reports more than once.
	ErrDuplicateRank = errors.New("worker already reported")
)

// Partial is one Distributed worker's local result.
type Partial struct {
	Rank        int
	Pairs       uint64
	Blocks      int
	Unique      int
	LedgerBytes int
}

// Reducer accepts one partial result per worker.
type Reducer interface {
	Reduce(ctx context.Context, p Partial) error
}

// Collector is the coordinator side of the sum reduction.  It accepts exactly one
// Partial per rank and releases Wait once every rank has reported.  A worker that
// never reports blocks Wait until the caller's context ends.
type Collector struct {
	mu        sync.Mutex
	partials  []Partial
	reported  []bool
	remaining int
	done      chan struct{}
}

// NewCollector returns a collector expecting the given number of workers.
func NewCollector(workers int) *Collector {
	c := &Collector{
		partials:  make([]Partial, workers),
		reported:  make([]bool, workers),
		remaining: workers,
		done:      make(chan struct{}),
	}
	if workers == 0 {
		close(c.done)
	}
	return c
}

// Reduce records a worker's partial result.
func (c *Collector) Reduce(ctx context.Context, p Partial) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p.Rank < 0 || p.Rank >= len(c.partials) {
		return fmt.Errorf("%w: rank %d, expected [0,%d)", ErrBadRank, p.Rank, len(c.partials))
	}
	if c.reported[p.Rank] {
		return fmt.Errorf("%w: rank %d", ErrDuplicateRank, p.Rank)
	}
	c.partials[p.Rank] = p
	c.reported[p.Rank] = true
	c.remaining--
	if c.remaining == 0 {
		close(c.done)
	}
	return nil
}

// Remaining returns the number of workers that have not reported.
func (c *Collector) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Wait blocks until all workers have reported and returns their partials in rank order.
func (c *Collector) Wait(ctx context.Context) ([]Partial, error) {
	select {
	case <-c.done:
	case <-ctx.Done():
		return nil, fmt.Errorf("reduction abandoned with %d of %d workers outstanding: %w",
			c.Remaining(), len(c.partials), ctx.Err())
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Partial, len(c.partials))
	copy(out, c.partials)
	return out, nil
}

// Sum returns the total pair count of the partials.
func Sum(partials []Partial) uint64 {
	var total uint64
	for _, p := range partials {
		total += p.Pairs
	}
	return total
}
