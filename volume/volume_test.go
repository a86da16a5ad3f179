package volume

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/janelia-flyem/blockdup/dvid"
	"github.com/janelia-flyem/blockdup/partition"
)

func TestBlockShapes(t *testing.T) {
	tests := []struct {
		size dvid.Point3d
		edge int32
		err  error
	}{
		{dvid.Point3d{8, 8, 8}, 4, nil},
		{dvid.Point3d{12, 8, 4}, 4, nil},
		{dvid.Point3d{6, 6, 6}, 3, nil},
		{dvid.Point3d{5, 3, 7}, 1, nil},
		{dvid.Point3d{10, 8, 8}, 4, dvid.ErrInputShape},
		{dvid.Point3d{8, 8, 8}, 5, dvid.ErrInputShape},
		{dvid.Point3d{8, 8, 8}, 0, dvid.ErrInputShape},
		{dvid.Point3d{10, 10, 10}, 5, dvid.ErrInputShape}, // 125 bits won't fit
	}
	for _, tc := range tests {
		g, err := NewGrid(tc.size, make([]byte, tc.size.Prod()))
		if err != nil {
			t.Fatalf("grid %s: %v", tc.size, err)
		}
		b, err := NewBlocks(g, tc.edge)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("size %s edge %d: expected %v, got %v", tc.size, tc.edge, tc.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("size %s edge %d: %v", tc.size, tc.edge, err)
			continue
		}
		if want := int(tc.size.Prod()) / int(tc.edge*tc.edge*tc.edge); b.Count() != want {
			t.Errorf("size %s edge %d: expected %d blocks, got %d", tc.size, tc.edge, want, b.Count())
		}
	}

	if _, err := NewGrid(dvid.Point3d{4, 4, 4}, make([]byte, 63)); !errors.Is(err, dvid.ErrInputShape) {
		t.Errorf("expected shape error on short data, got %v", err)
	}
	if _, err := NewGrid(dvid.Point3d{0, 4, 4}, nil); !errors.Is(err, dvid.ErrInputShape) {
		t.Errorf("expected shape error on empty extent, got %v", err)
	}
	if _, err := NewBlocks(nil, 4); !errors.Is(err, dvid.ErrInputShape) {
		t.Errorf("expected shape error on nil grid, got %v", err)
	}
}

func TestOriginIndex(t *testing.T) {
	g, err := NewGrid(dvid.Point3d{16, 8, 12}, make([]byte, 16*8*12))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewBlocks(g, 4)
	if err != nil {
		t.Fatal(err)
	}
	if b.Dims() != (dvid.Point3d{4, 2, 3}) || b.Count() != 24 {
		t.Fatalf("bad block dims %s, count %d", b.Dims(), b.Count())
	}
	// x varies fastest, then y, then z.
	expected := map[int]dvid.Point3d{
		0:  {0, 0, 0},
		1:  {4, 0, 0},
		3:  {12, 0, 0},
		4:  {0, 4, 0},
		8:  {0, 0, 4},
		23: {12, 4, 8},
	}
	for i, origin := range expected {
		if got := b.Origin(i); got != origin {
			t.Errorf("block %d: expected origin %s, got %s", i, origin, got)
		}
	}
	for i := 0; i < b.Count(); i++ {
		if got := b.Index(b.Origin(i)); got != i {
			t.Errorf("index of origin of block %d is %d", i, got)
		}
	}
}

func TestFingerprintTraversal(t *testing.T) {
	size := dvid.Point3d{8, 8, 8}
	data := make([]byte, size.Prod())
	g, err := NewGrid(size, data)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewBlocks(g, 4)
	if err != nil {
		t.Fatal(err)
	}
	origin := dvid.Point3d{4, 0, 4} // block 5

	// Set voxel (x=1,y=2,z=3) within the block: bit 1 + 2*4 + 3*16 = 57.
	data[g.Offset(origin.Add(dvid.Point3d{1, 2, 3}))] = 200
	// Set the first voxel of the block: bit 0.
	data[g.Offset(origin)] = 1
	// Set the last voxel of the block: bit 63.
	data[g.Offset(origin.Add(dvid.Point3d{3, 3, 3}))] = 1

	want := uint64(1)<<57 | 1 | uint64(1)<<63
	if fp := b.Fingerprint(origin); fp != want {
		t.Errorf("expected fingerprint %x, got %x", want, fp)
	}
	if fp := b.FingerprintAt(5); fp != want {
		t.Errorf("expected fingerprint %x at index 5, got %x", want, fp)
	}
	for i := 0; i < b.Count(); i++ {
		if i != 5 && b.FingerprintAt(i) != 0 {
			t.Errorf("block %d should be empty, got %x", i, b.FingerprintAt(i))
		}
	}
	if g.Voxel(dvid.Point3d{5, 2, 7}) != 200 {
		t.Errorf("bad voxel access")
	}
}

func TestFingerprintDeterminism(t *testing.T) {
	size := dvid.Point3d{16, 16, 16}
	fps := RandomFingerprints(64, 10, 4, 99)
	b, err := FromFingerprints(size, 4, fps)
	if err != nil {
		t.Fatal(err)
	}
	all := make([]uint64, b.Count())
	b.Extract(partition.Range{Start: 0, End: b.Count()}, all)
	for i := range fps {
		if all[i] != fps[i] {
			t.Errorf("block %d: built with %x, extracted %x", i, fps[i], all[i])
		}
		for rep := 0; rep < 3; rep++ {
			if b.FingerprintAt(i) != fps[i] {
				t.Fatalf("block %d fingerprint not stable", i)
			}
		}
	}

	const untouched = 0xDEADBEEFDEADBEEF
	partial := make([]uint64, b.Count())
	for i := range partial {
		partial[i] = untouched
	}
	r := partition.Range{Start: 10, End: 20}
	b.Extract(r, partial)
	for i := range partial {
		if r.Contains(i) && partial[i] != fps[i] {
			t.Errorf("extract of %s: block %d expected %x, got %x", r, i, fps[i], partial[i])
		}
		if !r.Contains(i) && partial[i] != untouched {
			t.Errorf("extract of %s wrote block %d", r, i)
		}
	}

	local := b.ExtractRange(r)
	if len(local) != r.Len() {
		t.Fatalf("expected %d fingerprints for %s, got %d", r.Len(), r, len(local))
	}
	for i, fp := range local {
		if fp != fps[r.Start+i] {
			t.Errorf("range extract of %s: offset %d expected %x, got %x", r, i, fps[r.Start+i], fp)
		}
	}
}

func TestFingerprintSmallEdges(t *testing.T) {
	size := dvid.Point3d{6, 6, 6}
	fps := RandomFingerprints(8, 0, 3, 5)
	for _, fp := range fps {
		if fp>>27 != 0 {
			t.Fatalf("edge 3 fingerprint %x uses more than 27 bits", fp)
		}
	}
	b, err := FromFingerprints(size, 3, fps)
	if err != nil {
		t.Fatal(err)
	}
	for i := range fps {
		if b.FingerprintAt(i) != fps[i] {
			t.Errorf("block %d: expected %x, got %x", i, fps[i], b.FingerprintAt(i))
		}
	}
	if _, err := FromFingerprints(size, 3, fps[:7]); !errors.Is(err, dvid.ErrInputShape) {
		t.Errorf("expected shape error on missing fingerprints, got %v", err)
	}
}

func TestFingerprintBadOrigin(t *testing.T) {
	g, _ := NewGrid(dvid.Point3d{8, 8, 8}, make([]byte, 512))
	b, _ := NewBlocks(g, 4)
	for _, origin := range []dvid.Point3d{{2, 0, 0}, {8, 0, 0}, {0, 0, -4}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for origin %s", origin)
				}
			}()
			b.Fingerprint(origin)
		}()
	}
}

func TestBinarize(t *testing.T) {
	raw := []byte{0, 25, 26, 255, 24, 100}
	want := []byte{0, 0, 1, 1, 0, 1}
	if got := Binarize(raw, DefaultThreshold); !bytes.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if raw[3] != 255 {
		t.Errorf("Binarize modified its input")
	}
	BinarizeInPlace(raw, DefaultThreshold)
	if !bytes.Equal(raw, want) {
		t.Errorf("in place: expected %v, got %v", want, raw)
	}
}

func TestReadWriteRaw(t *testing.T) {
	size := dvid.Point3d{8, 4, 4}
	raw := make([]byte, size.Prod())
	for i := range raw {
		raw[i] = byte(i * 7)
	}
	dir := t.TempDir()
	for _, name := range []string{"c8.raw", "c8.raw.gz", "c8.raw.zst", "c8.raw.sz"} {
		path := filepath.Join(dir, name)
		if err := WriteRaw(path, raw); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		got, err := ReadRaw(path, size)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !bytes.Equal(got, raw) {
			t.Errorf("%s: round trip changed data", name)
		}
		g, err := Load(path, size, DefaultThreshold)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !bytes.Equal(g.Data, Binarize(raw, DefaultThreshold)) {
			t.Errorf("%s: loaded grid not binarized", name)
		}

		bigger := dvid.Point3d{8, 4, 5}
		if _, err := ReadRaw(path, bigger); !errors.Is(err, dvid.ErrInputShape) {
			t.Errorf("%s: expected shape error on short file, got %v", name, err)
		}
	}
	if _, err := ReadRaw(filepath.Join(dir, "missing.raw"), size); err == nil {
		t.Errorf("expected error on missing file")
	}
}

func TestCompressionFromPath(t *testing.T) {
	tests := map[string]Compression{
		"a.raw":      Uncompressed,
		"a.raw.GZ":   Gzip,
		"a.zst":      Zstd,
		"a.raw.sz":   Snappy,
		"a.snappy":   Snappy,
		"noext":      Uncompressed,
		"dir.gz/a":   Uncompressed,
		"a.raw.zstd": Zstd,
	}
	for path, want := range tests {
		if got := CompressionFromPath(path); got != want {
			t.Errorf("%s: expected %s, got %s", path, want, got)
		}
	}
}
