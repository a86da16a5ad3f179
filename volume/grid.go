/*
Package volume holds a binarized voxel grid and the block fingerprinter that maps
each cube-aligned block of the grid to a 64-bit fingerprint.
*/
package volume

import (
	"fmt"
	"math"

	"github.com/janelia-flyem/blockdup/dvid"
)

// MaxCubeEdge is the largest cube edge whose voxels fit in a 64-bit fingerprint.
const MaxCubeEdge = 4

// Grid is an immutable W x H x D voxel volume stored with x varying fastest,
// then y, then z.  Any non-zero voxel is considered set.
type Grid struct {
	Size dvid.Point3d
	Data []byte
}

// NewGrid wraps voxel data of the given extent.
func NewGrid(size dvid.Point3d, data []byte) (*Grid, error) {
	if size[0] <= 0 || size[1] <= 0 || size[2] <= 0 {
		return nil, fmt.Errorf("%w: volume size %s must be positive", dvid.ErrInputShape, size)
	}
	n := size.Prod()
	if n > math.MaxInt {
		return nil, fmt.Errorf("%w: volume size %s overflows addressable memory", dvid.ErrAllocation, size)
	}
	if int64(len(data)) != n {
		return nil, fmt.Errorf("%w: volume size %s needs %d voxels, got %d", dvid.ErrInputShape, size, n, len(data))
	}
	return &Grid{Size: size, Data: data}, nil
}

// NumVoxels returns W*H*D.
func (g *Grid) NumVoxels() int {
	return len(g.Data)
}

// Offset returns the index within Data of the voxel at (x, y, z).
func (g *Grid) Offset(p dvid.Point3d) int {
	w, h := int(g.Size[0]), int(g.Size[1])
	return int(p[0]) + int(p[1])*w + int(p[2])*w*h
}

// Voxel returns the voxel value at p.  Panics if p is outside the grid.
func (g *Grid) Voxel(p dvid.Point3d) byte {
	if !g.Size.Contains(p) {
		panic(fmt.Sprintf("voxel %s outside volume %s", p, g.Size))
	}
	return g.Data[g.Offset(p)]
}

// Blocks is a view of a Grid as cubic blocks of a fixed edge length.  Blocks are
// enumerated with z outermost and x varying fastest, giving each block a stable
// linear index in [0, Count()).
type Blocks struct {
	grid *Grid
	edge int32
	dims dvid.Point3d
}

// NewBlocks checks that every grid dimension is divisible by the cube edge and
// that a block fits in a 64-bit fingerprint.
func NewBlocks(g *Grid, edge int32) (*Blocks, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: no volume given", dvid.ErrInputShape)
	}
	if edge < 1 || edge > MaxCubeEdge {
		return nil, fmt.Errorf("%w: cube edge %d must be in [1,%d] so edge^3 <= 64", dvid.ErrInputShape, edge, MaxCubeEdge)
	}
	if rem := g.Size.ModScalar(edge); rem != (dvid.Point3d{}) {
		return nil, fmt.Errorf("%w: volume size %s not divisible by cube edge %d", dvid.ErrInputShape, g.Size, edge)
	}
	return &Blocks{
		grid: g,
		edge: edge,
		dims: g.Size.DivScalar(edge),
	}, nil
}

// Grid returns the underlying voxel grid.
func (b *Blocks) Grid() *Grid {
	return b.grid
}

// Edge returns the cube edge length in voxels.
func (b *Blocks) Edge() int32 {
	return b.edge
}

// Dims returns the number of blocks along each axis.
func (b *Blocks) Dims() dvid.Point3d {
	return b.dims
}

// Count returns the total number of blocks.
func (b *Blocks) Count() int {
	return int(b.dims.Prod())
}

// Origin returns the voxel coordinate of the first voxel of block i.
func (b *Blocks) Origin(i int) dvid.Point3d {
	nx, ny := int(b.dims[0]), int(b.dims[1])
	c := dvid.ChunkPoint3d{int32(i % nx), int32((i / nx) % ny), int32(i / (nx * ny))}
	return c.MinPoint(b.edge)
}

// Index returns the linear index of the block with the given origin.
func (b *Blocks) Index(origin dvid.Point3d) int {
	c := origin.Chunk(b.edge)
	nx, ny := int(b.dims[0]), int(b.dims[1])
	return int(c[0]) + int(c[1])*nx + int(c[2])*nx*ny
}
