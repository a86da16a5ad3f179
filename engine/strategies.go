package engine

import (
	"context"
	"fmt"

	"github.com/DmitriyVTitov/size"
	"github.com/janelia-flyem/blockdup/dvid"
	"github.com/janelia-flyem/blockdup/ledger"
	"github.com/janelia-flyem/blockdup/partition"
	"golang.org/x/sync/errgroup"
)

func countSequential(ctx context.Context, fps []uint64, cfg Config) (counts, error) {
	pairs, unique, bytes, err := CountFingerprints(ctx, fps, cfg.Buckets)
	if err != nil {
		return counts{}, err
	}
	return counts{partials: []uint64{pairs}, unique: unique, bytes: bytes}, nil
}

// CountFingerprints observes the fingerprints in order on a private ledger and
// returns the accumulated pair count, the number of distinct fingerprints and the
// ledger's memory footprint.  The ledger is released before returning.
func CountFingerprints(ctx context.Context, fps []uint64, buckets int) (pairs uint64, unique, bytes int, err error) {
	l, err := ledger.New(buckets)
	if err != nil {
		return 0, 0, 0, err
	}
	defer l.Close()

	for start := 0; start < len(fps); start += checkEvery {
		if err := ctx.Err(); err != nil {
			return 0, 0, 0, err
		}
		end := start + checkEvery
		if end > len(fps) {
			end = len(fps)
		}
		for _, fp := range fps[start:end] {
			pairs += l.Observe(fp)
		}
	}
	return pairs, l.Len(), size.Of(l), nil
}

// sharedLedger is the ledger shared by Parallel goroutines.
type sharedLedger interface {
	ObserveInto(fp uint64, pairs *uint64)
	Len() int
	Close()
}

func countParallel(ctx context.Context, fps []uint64, ranges []partition.Range, cfg Config) (counts, error) {
	var shared sharedLedger
	var err error
	if cfg.Sharded {
		shared, err = ledger.NewSharded(cfg.stripes(), cfg.Buckets)
	} else {
		shared, err = ledger.NewLocked(cfg.Buckets)
	}
	if err != nil {
		return counts{}, err
	}
	defer shared.Close()

	partials := make([]uint64, len(ranges))
	g, gctx := errgroup.WithContext(ctx)
	for w, rng := range ranges {
		w, rng := w, rng
		g.Go(func() error {
			var pairs uint64
			for start := rng.Start; start < rng.End; start += checkEvery {
				if err := gctx.Err(); err != nil {
					return err
				}
				end := start + checkEvery
				if end > rng.End {
					end = rng.End
				}
				for _, fp := range fps[start:end] {
					shared.ObserveInto(fp, &pairs)
				}
			}
			partials[w] = pairs
			if dvid.Verbose {
				dvid.Infof("Worker %d counted %d pairs in blocks %s\n", w, pairs, rng)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return counts{}, err
	}
	return counts{partials: partials, unique: shared.Len(), bytes: size.Of(shared)}, nil
}

func countDistributed(ctx context.Context, fps []uint64, ranges []partition.Range, cfg Config) (counts, error) {
	collector := NewCollector(len(ranges))
	g, gctx := errgroup.WithContext(ctx)
	for w, rng := range ranges {
		w, rng := w, rng
		g.Go(func() error {
			p, err := CountPartition(gctx, fps[rng.Start:rng.End], w, rng, cfg.Buckets)
			if err != nil {
				return err
			}
			if dvid.Verbose {
				dvid.Infof("Partition %d counted %d pairs among %d distinct fingerprints in blocks %s\n",
					w, p.Pairs, p.Unique, rng)
			}
			return collector.Reduce(gctx, p)
		})
	}
	partials, waitErr := collector.Wait(gctx)
	if err := g.Wait(); err != nil {
		return counts{}, err
	}
	if waitErr != nil {
		return counts{}, waitErr
	}
	c := counts{partials: make([]uint64, len(partials))}
	for i, p := range partials {
		c.partials[i] = p.Pairs
		c.unique += p.Unique
		c.bytes += p.LedgerBytes
	}
	return c, nil
}

// CountPartition is the work of one Distributed worker: count the pairs among the
// fingerprints of its range using a ledger that lives only for this partition.
// fps holds only the range's fingerprints, block rng.Start first.
func CountPartition(ctx context.Context, fps []uint64, rank int, rng partition.Range, buckets int) (Partial, error) {
	if len(fps) != rng.Len() {
		return Partial{}, fmt.Errorf("partition %s has %d blocks, got %d fingerprints", rng, rng.Len(), len(fps))
	}
	pairs, unique, bytes, err := CountFingerprints(ctx, fps, buckets)
	if err != nil {
		return Partial{}, err
	}
	return Partial{
		Rank:        rank,
		Pairs:       pairs,
		Blocks:      rng.Len(),
		Unique:      unique,
		LedgerBytes: bytes,
	}, nil
}
