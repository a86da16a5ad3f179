/*
Package engine counts duplicate block pairs in a volume using one of three
execution strategies over the same fingerprinter and ledger:

	Sequential   one goroutine, one ledger; the reference result.
	Parallel     T goroutines sharing one lock-guarded ledger (or a lock-striped one).
	Distributed  P partitions, each with a private ledger, whose partial counts are
	             summed once by a reducer.  Duplicates whose two blocks fall in
	             different partitions are not counted.

Every run moves through the stages Initialized, Extracting, Counting, Combining and
Done.  There are no retries; any failure aborts the run and no partial result is
returned.
*/
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/janelia-flyem/blockdup/dvid"
	"github.com/janelia-flyem/blockdup/ledger"
	"github.com/janelia-flyem/blockdup/partition"
	"github.com/janelia-flyem/blockdup/volume"
	"golang.org/x/sync/errgroup"
)

// Strategy selects how the counting work is divided.
type Strategy uint8

const (
	Sequential Strategy = iota
	Parallel
	Distributed
)

func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	case Distributed:
		return "distributed"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// ParseStrategy returns the strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sequential", "seq":
		return Sequential, nil
	case "parallel", "threads", "shared":
		return Parallel, nil
	case "distributed", "partitioned":
		return Distributed, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q: use sequential, parallel or distributed", name)
	}
}

// Stage is the state of a run.
type Stage uint8

const (
	Initialized Stage = iota
	Extracting
	Counting
	Combining
	Done
)

func (s Stage) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Extracting:
		return "extracting"
	case Counting:
		return "counting"
	case Combining:
		return "combining"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("stage(%d)", uint8(s))
	}
}

// Config describes one counting run.
type Config struct {
	Strategy Strategy

	// Workers is the number of goroutines for Parallel or partitions for
	// Distributed.  Sequential always uses one.
	Workers int

	// Buckets is the prime number of hash buckets per ledger.
	Buckets int

	// Sharded replaces the single lock of the Parallel strategy with Stripes
	// independently locked ledgers.
	Sharded bool
	Stripes int

	// MaxMemory bounds the estimated bytes of voxels, fingerprints and ledgers.
	// Zero means no bound.
	MaxMemory uint64

	// OnStage, if set, is called on every stage transition.
	OnStage func(Stage)
}

// DefaultConfig returns a sequential run with the default bucket count.
func DefaultConfig() Config {
	return Config{
		Strategy: Sequential,
		Workers:  1,
		Buckets:  ledger.DefaultBuckets,
	}
}

// Validate checks the configuration without running anything.
func (c Config) Validate() error {
	switch c.Strategy {
	case Sequential, Parallel, Distributed:
	default:
		return fmt.Errorf("unknown strategy %s", c.Strategy)
	}
	if c.Strategy != Sequential && c.Workers < 1 {
		return fmt.Errorf("%s strategy needs at least one worker, got %d", c.Strategy, c.Workers)
	}
	if !ledger.IsPrime(c.Buckets) {
		return fmt.Errorf("%w: got %d", ledger.ErrBucketCount, c.Buckets)
	}
	if c.Sharded && c.Stripes < 0 {
		return fmt.Errorf("stripe count must not be negative, got %d", c.Stripes)
	}
	return nil
}

func (c Config) workers() int {
	if c.Strategy == Sequential || c.Workers < 1 {
		return 1
	}
	return c.Workers
}

func (c Config) stripes() int {
	if c.Stripes > 0 {
		return c.Stripes
	}
	return 4 * c.workers()
}

// Result is the outcome of a run.
type Result struct {
	Strategy Strategy
	Workers  int
	Blocks   int

	// Total is the number of unordered block pairs with equal fingerprints
	// that the strategy could see.
	Total uint64

	// Partials holds the pair count of each worker in partition order.
	Partials []uint64

	// Unique is the number of distinct fingerprints held across all ledgers.
	// For Distributed, a fingerprint present in several partitions counts once per partition.
	Unique int

	ExtractTime time.Duration
	CountTime   time.Duration

	// LedgerBytes is the measured memory held by the ledgers at the end of counting.
	LedgerBytes int
}

func (r *Result) String() string {
	return fmt.Sprintf("%s (%d workers): %s duplicate block pairs among %s blocks (%s distinct), counted in %s, ledger %s",
		r.Strategy, r.Workers, humanize.Comma(int64(r.Total)), humanize.Comma(int64(r.Blocks)),
		humanize.Comma(int64(r.Unique)), r.CountTime, humanize.Bytes(uint64(r.LedgerBytes)))
}

type run struct {
	cfg   Config
	stage Stage
}

func (r *run) enter(s Stage) {
	dvid.Debugf("%s run: %s -> %s\n", r.cfg.Strategy, r.stage, s)
	r.stage = s
	if r.cfg.OnStage != nil {
		r.cfg.OnStage(s)
	}
}

// Run fingerprints every block and counts duplicate pairs using the configured strategy.
func Run(ctx context.Context, b *volume.Blocks, cfg Config) (*Result, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: no blocks to count", dvid.ErrInputShape)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &run{cfg: cfg, stage: Initialized}
	if cfg.OnStage != nil {
		cfg.OnStage(Initialized)
	}
	n := b.Count()
	need := Footprint(int64(b.Grid().NumVoxels()), n, cfg)
	if cfg.MaxMemory > 0 && need > cfg.MaxMemory {
		return nil, fmt.Errorf("%w: %s run on %d blocks needs about %s, limit is %s", dvid.ErrAllocation,
			cfg.Strategy, n, humanize.Bytes(need), humanize.Bytes(cfg.MaxMemory))
	}
	workers := cfg.workers()
	ranges, err := partition.Plan(n, workers)
	if err != nil {
		return nil, err
	}
	result := &Result{Strategy: cfg.Strategy, Workers: workers, Blocks: n}

	r.enter(Extracting)
	timedLog := dvid.NewTimeLog()
	fps, err := extract(ctx, b, ranges)
	if err != nil {
		return nil, err
	}
	result.ExtractTime = timedLog.Elapsed()
	timedLog.Debugf("Extracted %d block fingerprints with %d workers", n, workers)

	r.enter(Counting)
	start := time.Now()
	var c counts
	switch cfg.Strategy {
	case Sequential:
		c, err = countSequential(ctx, fps, cfg)
	case Parallel:
		c, err = countParallel(ctx, fps, ranges, cfg)
	case Distributed:
		c, err = countDistributed(ctx, fps, ranges, cfg)
	}
	if err != nil {
		return nil, err
	}

	r.enter(Combining)
	result.Partials = c.partials
	result.Total = Total(c.partials)
	result.Unique = c.unique
	result.LedgerBytes = c.bytes
	result.CountTime = time.Since(start)

	r.enter(Done)
	dvid.Infof("%s\n", result)
	return result, nil
}

// counts is what a strategy hands to the Combining stage.
type counts struct {
	partials []uint64
	unique   int
	bytes    int
}

// Total sums partial pair counts.
func Total(partials []uint64) uint64 {
	var total uint64
	for _, p := range partials {
		total += p
	}
	return total
}

// checkEvery is how many blocks a worker processes between context checks.
const checkEvery = 1 << 14

func extract(ctx context.Context, b *volume.Blocks, ranges []partition.Range) ([]uint64, error) {
	fps := make([]uint64, b.Count())
	g, gctx := errgroup.WithContext(ctx)
	for _, rng := range ranges {
		rng := rng
		g.Go(func() error {
			for start := rng.Start; start < rng.End; start += checkEvery {
				if err := gctx.Err(); err != nil {
					return err
				}
				end := start + checkEvery
				if end > rng.End {
					end = rng.End
				}
				b.Extract(partition.Range{Start: start, End: end}, fps)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fps, nil
}
