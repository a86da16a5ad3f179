package partition

import "testing"

func TestPlanCoverage(t *testing.T) {
	for _, blockCount := range []int{0, 1, 7, 8, 64, 1000, 4097, 65536} {
		for _, workers := range []int{1, 2, 3, 4, 7, 8, 16} {
			ranges, err := Plan(blockCount, workers)
			if err != nil {
				t.Fatalf("plan(%d, %d): %v", blockCount, workers, err)
			}
			if len(ranges) != workers {
				t.Fatalf("plan(%d, %d) gave %d ranges", blockCount, workers, len(ranges))
			}
			next := 0
			total := 0
			for i, r := range ranges {
				if r.Start != next {
					t.Fatalf("plan(%d, %d) range %d starts at %d, expected %d", blockCount, workers, i, r.Start, next)
				}
				if r.Len() < 0 {
					t.Fatalf("plan(%d, %d) range %d is inverted: %s", blockCount, workers, i, r)
				}
				next = r.End
				total += r.Len()
			}
			if next != blockCount || total != blockCount {
				t.Errorf("plan(%d, %d) covers up to %d with %d indices", blockCount, workers, next, total)
			}
		}
	}
}

func TestPlanRemainder(t *testing.T) {
	ranges, err := Plan(10, 4)
	if err != nil {
		t.Fatal(err)
	}
	expected := []Range{{0, 2}, {2, 4}, {4, 6}, {6, 10}}
	for i := range expected {
		if ranges[i] != expected[i] {
			t.Errorf("range %d: expected %s, got %s", i, expected[i], ranges[i])
		}
	}

	ranges, err = Plan(100, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(ranges) != 1 || ranges[0] != (Range{0, 100}) {
		t.Errorf("single worker should get everything: %v", ranges)
	}

	ranges, err = Plan(3, 5)
	if err != nil {
		t.Fatal(err)
	}
	if ranges[4] != (Range{0, 3}) {
		t.Errorf("last range should absorb all blocks when workers > blocks: %v", ranges)
	}
}

func TestPlanErrors(t *testing.T) {
	if _, err := Plan(10, 0); err == nil {
		t.Errorf("expected error for zero workers")
	}
	if _, err := Plan(-1, 2); err == nil {
		t.Errorf("expected error for negative block count")
	}
}

func TestOwner(t *testing.T) {
	ranges, err := Plan(10, 4)
	if err != nil {
		t.Fatal(err)
	}
	expected := []int{0, 0, 1, 1, 2, 2, 3, 3, 3, 3}
	for i, want := range expected {
		if got := Owner(ranges, i); got != want {
			t.Errorf("index %d: expected owner %d, got %d", i, want, got)
		}
	}
	if Owner(ranges, 10) != -1 || Owner(ranges, -1) != -1 {
		t.Errorf("expected no owner outside the index space")
	}

	ranges, _ = Plan(3, 5)
	for i := 0; i < 3; i++ {
		if got := Owner(ranges, i); got != 4 {
			t.Errorf("index %d: expected last range to own it, got %d", i, got)
		}
	}
}

func TestRange(t *testing.T) {
	r := Range{4, 9}
	if r.Len() != 5 || !r.Contains(4) || r.Contains(9) || r.String() != "[4,9)" {
		t.Errorf("bad range behavior for %s", r)
	}
}
