package dvid

import "testing"

func TestPoint3d(t *testing.T) {
	a := Point3d{10, 21, 837821}
	b := Point3d{78312, -200, 40123}

	if result := a.Add(b); result != (Point3d{78322, -179, 877944}) {
		t.Errorf("bad add: %s", result)
	}
	if result := a.Sub(b); result != (Point3d{-78302, 221, 797698}) {
		t.Errorf("bad sub: %s", result)
	}
	if a.String() != "(10,21,837821)" {
		t.Errorf("bad string: %s", a)
	}

	size := Point3d{64, 32, 16}
	if size.Prod() != 32768 {
		t.Errorf("expected prod 32768, got %d", size.Prod())
	}
	if size.DivScalar(4) != (Point3d{16, 8, 4}) {
		t.Errorf("bad div: %s", size.DivScalar(4))
	}
	if size.ModScalar(5) != (Point3d{4, 2, 1}) {
		t.Errorf("bad mod: %s", size.ModScalar(5))
	}
	if !size.Contains(Point3d{63, 31, 15}) {
		t.Errorf("expected %s to contain max voxel", size)
	}
	if size.Contains(Point3d{63, 32, 15}) || size.Contains(Point3d{-1, 0, 0}) {
		t.Errorf("expected out-of-range points to be rejected")
	}

	big := Point3d{2048, 2048, 1024}
	if big.Prod() != 2048*2048*1024 {
		t.Errorf("prod overflowed: %d", big.Prod())
	}
}

func TestChunkPoint3d(t *testing.T) {
	p := Point3d{13, 4, 27}
	c := p.Chunk(4)
	if c != (ChunkPoint3d{3, 1, 6}) {
		t.Fatalf("bad chunk for %s: %s", p, c)
	}
	if c.MinPoint(4) != (Point3d{12, 4, 24}) {
		t.Errorf("bad min point: %s", c.MinPoint(4))
	}
	if c.MaxPoint(4) != (Point3d{15, 7, 27}) {
		t.Errorf("bad max point: %s", c.MaxPoint(4))
	}
	if c.String() != "(3,1,6)" {
		t.Errorf("bad string: %s", c)
	}
}
