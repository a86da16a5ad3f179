package server

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/janelia-flyem/blockdup/dvid"
	"github.com/janelia-flyem/blockdup/engine"
	"github.com/janelia-flyem/blockdup/partition"
	"github.com/janelia-flyem/blockdup/rpc"
	"github.com/janelia-flyem/blockdup/volume"
)

// checkBudget returns ErrAllocation if a run over a volume of the given shape
// would need more than the configured memory budget.
func checkBudget(size dvid.Point3d, cube int32, cfg engine.Config) error {
	if cfg.MaxMemory == 0 {
		return nil
	}
	blocks := int(size.Prod() / int64(cube*cube*cube))
	if need := engine.Footprint(size.Prod(), blocks, cfg); need > cfg.MaxMemory {
		return fmt.Errorf("%w: %s volume needs about %s, limit is %s", dvid.ErrAllocation,
			size, humanize.Bytes(need), humanize.Bytes(cfg.MaxMemory))
	}
	return nil
}

// loadBlocks checks the shape and memory budget before reading the input, then
// returns its blocks.
func loadBlocks(input string, size dvid.Point3d, threshold uint8, cube int32, cfg engine.Config) (*volume.Blocks, error) {
	if err := checkShape(size, cube); err != nil {
		return nil, err
	}
	if input == "" {
		return nil, fmt.Errorf("no input volume given")
	}
	if err := checkBudget(size, cube, cfg); err != nil {
		return nil, err
	}
	g, err := volume.Load(input, size, threshold)
	if err != nil {
		return nil, err
	}
	return volume.NewBlocks(g, cube)
}

// Count runs a single-process count of the configured volume.
func Count(ctx context.Context, c *Config) (*engine.Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	cfg, err := c.RunConfig()
	if err != nil {
		return nil, err
	}
	b, err := loadBlocks(c.Volume.Input, c.Volume.Size(), c.Volume.Threshold, c.Volume.Cube, cfg)
	if err != nil {
		return nil, err
	}
	return engine.Run(ctx, b, cfg)
}

// Params returns the parameters a coordinator broadcasts for this configuration.
func (c *Config) Params() (rpc.Params, error) {
	maxMemory, err := c.MaxMemory()
	if err != nil {
		return rpc.Params{}, err
	}
	return rpc.Params{
		Version:   Version,
		Input:     c.Volume.Input,
		Size:      c.Volume.Size(),
		Threshold: c.Volume.Threshold,
		Cube:      c.Volume.Cube,
		Buckets:   c.Engine.Buckets,
		Processes: c.Distributed.Processes,
		MaxMemory: maxMemory,
	}, nil
}

// workerConfig is the engine configuration every worker process of a run counts with.
func workerConfig(p rpc.Params) engine.Config {
	return engine.Config{
		Strategy:  engine.Distributed,
		Workers:   p.Processes,
		Buckets:   p.Buckets,
		MaxMemory: p.MaxMemory,
	}
}

// Summary is the coordinator's view of a finished multi-process run.
type Summary struct {
	RunID    string
	Partials []engine.Partial
	Total    uint64
	Elapsed  time.Duration
}

func (s *Summary) String() string {
	var blocks int
	for _, p := range s.Partials {
		blocks += p.Blocks
	}
	return fmt.Sprintf("run %s: %s duplicate block pairs among %s blocks from %d workers in %s",
		s.RunID, humanize.Comma(int64(s.Total)), humanize.Comma(int64(blocks)), len(s.Partials), s.Elapsed)
}

// Coordinate serves run parameters to the configured number of worker processes and
// returns the sum of their partial counts.  It blocks until every worker reports or
// the context ends; a worker that never reports stalls the run.  If started is not
// nil, it receives the coordinator once it is accepting workers.
func Coordinate(ctx context.Context, c *Config, started chan<- *rpc.Coordinator) (*Summary, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Volume.Input == "" {
		return nil, fmt.Errorf("no input volume given")
	}
	p, err := c.Params()
	if err != nil {
		return nil, err
	}
	if err := checkBudget(c.Volume.Size(), c.Volume.Cube, workerConfig(p)); err != nil {
		return nil, err
	}
	coord, err := rpc.NewCoordinator(c.Distributed.Address, p)
	if err != nil {
		return nil, err
	}
	if err := coord.Start(); err != nil {
		return nil, err
	}
	defer coord.Stop()
	if started != nil {
		started <- coord
	}

	timedLog := dvid.NewTimeLog()
	partials, err := coord.Wait(ctx)
	if err != nil {
		return nil, err
	}
	s := &Summary{
		RunID:    coord.Params().RunID,
		Partials: partials,
		Total:    engine.Sum(partials),
		Elapsed:  timedLog.Elapsed(),
	}
	timedLog.Infof("Reduced %d partial counts", len(partials))
	return s, nil
}

// Work performs one worker's share of a multi-process run: fetch the broadcast
// parameters, load the same input, count the blocks of its partition on a
// private ledger and report the partial count.
func Work(ctx context.Context, address string, rank int) (engine.Partial, error) {
	client, err := rpc.NewClient(address)
	if err != nil {
		return engine.Partial{}, err
	}
	defer client.Close()

	p, err := client.FetchParams(ctx)
	if err != nil {
		return engine.Partial{}, err
	}
	if err := CheckCompatible(p.Version); err != nil {
		return engine.Partial{}, err
	}
	if rank < 0 || rank >= p.Processes {
		return engine.Partial{}, fmt.Errorf("%w: rank %d, run has %d workers", engine.ErrBadRank, rank, p.Processes)
	}
	dvid.Infof("Worker %d of %d joined run %s\n", rank, p.Processes, p.RunID)

	cfg := workerConfig(p)
	if err := cfg.Validate(); err != nil {
		return engine.Partial{}, err
	}
	b, err := loadBlocks(p.Input, dvid.Point3d(p.Size), p.Threshold, p.Cube, cfg)
	if err != nil {
		return engine.Partial{}, err
	}
	ranges, err := partition.Plan(b.Count(), p.Processes)
	if err != nil {
		return engine.Partial{}, err
	}
	rng := ranges[rank]

	timedLog := dvid.NewTimeLog()
	fps := b.ExtractRange(rng)
	partial, err := engine.CountPartition(ctx, fps, rank, rng, p.Buckets)
	if err != nil {
		return engine.Partial{}, err
	}
	timedLog.Infof("Worker %d counted %d pairs in blocks %s", rank, partial.Pairs, rng)

	if err := client.Reduce(ctx, partial); err != nil {
		return engine.Partial{}, err
	}
	return partial, nil
}
