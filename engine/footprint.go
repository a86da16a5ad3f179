package engine

const (
	fingerprintBytes = 8
	bucketHeadBytes  = 8

	// ledger entry: fingerprint, count and chain index
	entryBytes = 24
)

// Footprint estimates the peak bytes a run needs: the voxels, one fingerprint per
// block, and ledgers large enough for every block to be distinct.
func Footprint(voxels int64, blocks int, cfg Config) uint64 {
	need := uint64(voxels)
	need += uint64(blocks) * fingerprintBytes
	need += uint64(blocks) * entryBytes

	ledgers := 1
	switch {
	case cfg.Strategy == Parallel && cfg.Sharded:
		ledgers = cfg.stripes()
	case cfg.Strategy == Distributed:
		ledgers = cfg.workers()
	}
	need += uint64(ledgers) * uint64(cfg.Buckets) * bucketHeadBytes
	return need
}
