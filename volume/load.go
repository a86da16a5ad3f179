/*
	This file handles reading raw voxel volumes and binarizing them.
*/

package volume

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/janelia-flyem/blockdup/dvid"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// DefaultThreshold is the intensity a voxel must exceed to be set.
const DefaultThreshold = 25

// Compression is the on-disk encoding of a raw volume file.
type Compression uint8

const (
	Uncompressed Compression = iota
	Gzip
	Zstd
	Snappy
)

func (c Compression) String() string {
	switch c {
	case Uncompressed:
		return "uncompressed"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case Snappy:
		return "snappy"
	default:
		return "unknown compression"
	}
}

// CompressionFromPath selects the compression by file extension: ".gz", ".zst",
// ".sz" (snappy framing format), otherwise uncompressed.
func CompressionFromPath(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".sz", ".snappy":
		return Snappy
	default:
		return Uncompressed
	}
}

// Binarize returns a new buffer with 1 where raw exceeds threshold and 0 elsewhere.
func Binarize(raw []byte, threshold uint8) []byte {
	out := make([]byte, len(raw))
	for i, v := range raw {
		if v > threshold {
			out[i] = 1
		}
	}
	return out
}

// BinarizeInPlace is Binarize without allocating a second buffer.
func BinarizeInPlace(raw []byte, threshold uint8) {
	for i, v := range raw {
		if v > threshold {
			raw[i] = 1
		} else {
			raw[i] = 0
		}
	}
}

// ReadRawFrom reads exactly size.Prod() one-byte voxels from r.  A short stream is
// an error; the data is never padded or truncated.
func ReadRawFrom(r io.Reader, size dvid.Point3d) ([]byte, error) {
	if size[0] <= 0 || size[1] <= 0 || size[2] <= 0 {
		return nil, fmt.Errorf("%w: volume size %s must be positive", dvid.ErrInputShape, size)
	}
	n := size.Prod()
	if n > math.MaxInt {
		return nil, fmt.Errorf("%w: volume size %s overflows addressable memory", dvid.ErrAllocation, size)
	}
	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("%w: could not read %d voxels for volume %s: %v", dvid.ErrInputShape, n, size, err)
	}
	return data, nil
}

// ReadRaw reads a raw volume file, decompressing according to its extension.
func ReadRaw(path string, size dvid.Point3d) ([]byte, error) {
	rc, err := openRaw(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := ReadRawFrom(rc, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// Load reads a raw volume file, binarizes it with the threshold, and returns the grid.
func Load(path string, size dvid.Point3d, threshold uint8) (*Grid, error) {
	timedLog := dvid.NewTimeLog()
	data, err := ReadRaw(path, size)
	if err != nil {
		return nil, err
	}
	BinarizeInPlace(data, threshold)
	timedLog.Debugf("Loaded %s volume %s from %s with threshold %d", CompressionFromPath(path), size, path, threshold)
	return NewGrid(size, data)
}

type readCloser struct {
	io.Reader
	closers []func() error
}

func (rc *readCloser) Close() error {
	var first error
	for _, c := range rc.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func openRaw(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open volume file: %v", err)
	}
	switch CompressionFromPath(path) {
	case Gzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("bad gzip volume file %s: %v", path, err)
		}
		return &readCloser{zr, []func() error{zr.Close, f.Close}}, nil
	case Zstd:
		d, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("bad zstd volume file %s: %v", path, err)
		}
		return &readCloser{d, []func() error{func() error { d.Close(); return nil }, f.Close}}, nil
	case Snappy:
		return &readCloser{snappy.NewReader(f), []func() error{f.Close}}, nil
	default:
		return f, nil
	}
}
