/*
blockdup counts pairs of identical fixed-size blocks in a large binarized 3D
volume, as a measure of how much redundancy the volume holds.

Each voxel above an intensity threshold is set.  The volume is cut into cubes of
edge S (at most 4, so a cube fits a 64-bit fingerprint), and every pair of cubes
with equal fingerprints counts once: a fingerprint seen k times contributes
k(k-1)/2 pairs.

In the following documentation, the type of brackets designate
<required parameter> and [optional parameter].

	blockdup about

Prints the version of this executable.

	blockdup [-config=<toml>] count [input=...] [size=WxHxD] [strategy=...] [workers=N]

Counts in one process.  The sequential strategy uses one goroutine and one hash
ledger.  The parallel strategy divides the blocks among N goroutines sharing one
lock-guarded ledger, or with sharded=true a ledger split into independently locked
stripes.  Both always give the same total.  The distributed strategy gives each of
N partitions a private ledger and sums their counts, so a duplicate whose two blocks
fall in different partitions is not counted.

	blockdup [-config=<toml>] coordinate [processes=P] [rpc=host:port]
	blockdup [-config=<toml>] work rank=<r> [rpc=host:port]

Runs the distributed strategy across processes.  The coordinator broadcasts the
input path and volume parameters to P workers, which each load the input, count
the blocks of partition r on a private ledger and report back.  The coordinator
prints the sum once every rank has reported.  A worker that never reports stalls
the coordinator until it is interrupted.

Input volumes are raw bytes, x fastest then y then z.  Files ending in .gz, .zst
or .sz are gzip, zstd or framed snappy compressed.
*/
package main
