/*
	This file builds volumes from known block fingerprints and writes raw volume files.
*/

package volume

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/golang/snappy"
	"github.com/janelia-flyem/blockdup/dvid"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// FromFingerprints returns blocks of a new binarized grid in which block i has
// fingerprint fps[i].  len(fps) must equal the number of blocks of the volume.
func FromFingerprints(size dvid.Point3d, edge int32, fps []uint64) (*Blocks, error) {
	data := make([]byte, size.Prod())
	g, err := NewGrid(size, data)
	if err != nil {
		return nil, err
	}
	b, err := NewBlocks(g, edge)
	if err != nil {
		return nil, err
	}
	if len(fps) != b.Count() {
		return nil, fmt.Errorf("%w: %d fingerprints given for %d blocks", dvid.ErrInputShape, len(fps), b.Count())
	}
	w := int(size[0])
	plane := w * int(size[1])
	n := int(edge)
	for i, fp := range fps {
		start := g.Offset(b.Origin(i))
		var bit uint
		for z := 0; z < n; z++ {
			for y := 0; y < n; y++ {
				for x := 0; x < n; x++ {
					if fp&(1<<bit) != 0 {
						data[start+x+y*w+z*plane] = 1
					}
					bit++
				}
			}
		}
	}
	return b, nil
}

// RandomFingerprints returns count fingerprints drawn from a palette of the given
// number of distinct random patterns, so the expected duplication rises as the
// palette shrinks.  A palette of 0 draws every fingerprint independently.
func RandomFingerprints(count, palette int, edge int32, seed int64) []uint64 {
	rng := rand.New(rand.NewSource(seed))
	bits := uint(edge * edge * edge)
	mask := ^uint64(0)
	if bits < 64 {
		mask = (uint64(1) << bits) - 1
	}
	var patterns []uint64
	if palette > 0 {
		patterns = make([]uint64, palette)
		for i := range patterns {
			patterns[i] = rng.Uint64() & mask
		}
	}
	fps := make([]uint64, count)
	for i := range fps {
		if palette > 0 {
			fps[i] = patterns[rng.Intn(palette)]
		} else {
			fps[i] = rng.Uint64() & mask
		}
	}
	return fps
}

// WriteRawTo writes raw voxels to w, compressed as requested.
func WriteRawTo(w io.Writer, data []byte, c Compression) error {
	var wc io.WriteCloser
	switch c {
	case Uncompressed:
		_, err := w.Write(data)
		return err
	case Gzip:
		wc = gzip.NewWriter(w)
	case Zstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		wc = enc
	case Snappy:
		wc = snappy.NewBufferedWriter(w)
	default:
		return fmt.Errorf("unknown compression %d", c)
	}
	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return err
	}
	return wc.Close()
}

// WriteRaw writes raw voxels to a file, compressing according to its extension.
func WriteRaw(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteRawTo(f, data, CompressionFromPath(path)); err != nil {
		f.Close()
		return fmt.Errorf("could not write volume file %s: %v", path, err)
	}
	return f.Close()
}
