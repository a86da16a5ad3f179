package volume

import (
	"fmt"

	"github.com/janelia-flyem/blockdup/dvid"
	"github.com/janelia-flyem/blockdup/partition"
)

// Fingerprint packs the block at origin into 64 bits.  Voxels are visited with
// z outermost and x innermost; bit i is set iff the i-th visited voxel is non-zero.
// The origin must be cube-aligned and the block must lie within the grid.
func (b *Blocks) Fingerprint(origin dvid.Point3d) uint64 {
	edge := b.edge
	if origin.ModScalar(edge) != (dvid.Point3d{}) ||
		!b.grid.Size.Contains(origin) ||
		!b.grid.Size.Contains(origin.Add(dvid.Point3d{edge - 1, edge - 1, edge - 1})) {
		panic(fmt.Sprintf("block origin %s not aligned to %d within volume %s", origin, edge, b.grid.Size))
	}
	data := b.grid.Data
	w := int(b.grid.Size[0])
	plane := w * int(b.grid.Size[1])
	n := int(edge)
	start := b.grid.Offset(origin)

	var fp uint64
	var bit uint
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			row := data[start+y*w+z*plane : start+y*w+z*plane+n]
			for _, v := range row {
				if v != 0 {
					fp |= 1 << bit
				}
				bit++
			}
		}
	}
	return fp
}

// FingerprintAt returns the fingerprint of block index i.
func (b *Blocks) FingerprintAt(i int) uint64 {
	return b.Fingerprint(b.Origin(i))
}

// Extract fingerprints every block in the range, storing block i at dst[i].
// dst must have at least r.End elements.
func (b *Blocks) Extract(r partition.Range, dst []uint64) {
	for i := r.Start; i < r.End; i++ {
		dst[i] = b.Fingerprint(b.Origin(i))
	}
}

// ExtractRange returns the fingerprints of just the blocks in the range, with
// block r.Start at index 0.
func (b *Blocks) ExtractRange(r partition.Range) []uint64 {
	fps := make([]uint64, r.Len())
	for i := range fps {
		fps[i] = b.Fingerprint(b.Origin(r.Start + i))
	}
	return fps
}
