/*
	This file holds the 3d coordinate types used for voxels and blocks.
*/

package dvid

import "fmt"

// Notes:
//   Voxel coordinates and block coordinates have different units, so they get
//   separate types.  A Point3d is measured in voxels; a ChunkPoint3d is measured
//   in blocks of some cube edge length.

// Point3d is an ordered (X,Y,Z) voxel coordinate or a voxel extent.
type Point3d [3]int32

// Prod returns the product of the point elements, e.g., the voxel count of an extent.
func (p Point3d) Prod() int64 {
	return int64(p[0]) * int64(p[1]) * int64(p[2])
}

func (p Point3d) Add(x Point3d) Point3d {
	return Point3d{p[0] + x[0], p[1] + x[1], p[2] + x[2]}
}

func (p Point3d) Sub(x Point3d) Point3d {
	return Point3d{p[0] - x[0], p[1] - x[1], p[2] - x[2]}
}

// DivScalar divides each element by the given value.
func (p Point3d) DivScalar(value int32) Point3d {
	return Point3d{p[0] / value, p[1] / value, p[2] / value}
}

// ModScalar returns the remainder of each element divided by the given value.
func (p Point3d) ModScalar(value int32) Point3d {
	return Point3d{p[0] % value, p[1] % value, p[2] % value}
}

// Contains returns true if the given point is inside the box [0, p).
func (p Point3d) Contains(x Point3d) bool {
	return x[0] >= 0 && x[1] >= 0 && x[2] >= 0 && x[0] < p[0] && x[1] < p[1] && x[2] < p[2]
}

func (p Point3d) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p[0], p[1], p[2])
}

// Chunk returns the coordinate of the cubic chunk of edge length 'size' that
// contains this point.  Only non-negative points are supported.
func (p Point3d) Chunk(size int32) ChunkPoint3d {
	return ChunkPoint3d{p[0] / size, p[1] / size, p[2] / size}
}

// ChunkPoint3d is the (X,Y,Z) coordinate of a block in block units.
type ChunkPoint3d [3]int32

func (c ChunkPoint3d) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c[0], c[1], c[2])
}

// MinPoint returns the smallest voxel coordinate of the cubic chunk.
func (c ChunkPoint3d) MinPoint(size int32) Point3d {
	return Point3d{c[0] * size, c[1] * size, c[2] * size}
}

// MaxPoint returns the largest voxel coordinate of the cubic chunk.
func (c ChunkPoint3d) MaxPoint(size int32) Point3d {
	return Point3d{
		(c[0]+1)*size - 1,
		(c[1]+1)*size - 1,
		(c[2]+1)*size - 1,
	}
}
