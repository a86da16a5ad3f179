//go:generate msgp

package rpc

// --- MessagePack payloads exchanged between coordinator and workers

// Params are the common run parameters broadcast by the coordinator.
type Params struct {
	RunID     string
	Version   string
	Input     string
	Size      [3]int32
	Threshold uint8
	Cube      int32
	Buckets   int
	Processes int

	// MaxMemory is the per-process budget in bytes, zero if unbounded.
	MaxMemory uint64
}

// Report carries one worker's partial result to the coordinator.
type Report struct {
	RunID       string
	Rank        int
	Pairs       uint64
	Blocks      int
	Unique      int
	LedgerBytes int
}
