package ledger

import (
	"errors"
	"math/rand"
	"sync"
	"testing"
)

func TestObservePriorCounts(t *testing.T) {
	l, err := New(DefaultBuckets)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	fps := []uint64{7, 7, 42, 7, 0, 42, 0, 0, 0}
	expected := []uint64{0, 1, 0, 2, 0, 1, 1, 2, 3}
	var pairs uint64
	for i, fp := range fps {
		prior := l.Observe(fp)
		if prior != expected[i] {
			t.Errorf("observation %d of %d: expected prior %d, got %d", i, fp, expected[i], prior)
		}
		pairs += prior
	}
	// 7 seen 3 times, 42 twice, 0 four times: 3 + 1 + 6
	if pairs != 10 {
		t.Errorf("expected 10 pairs, got %d", pairs)
	}
	if l.Pairs() != pairs {
		t.Errorf("ledger pairs %d differ from accumulated %d", l.Pairs(), pairs)
	}
	if l.Len() != 3 {
		t.Errorf("expected 3 distinct fingerprints, got %d", l.Len())
	}
	if l.Observations() != uint64(len(fps)) {
		t.Errorf("expected %d observations, got %d", len(fps), l.Observations())
	}
	if l.Count(0) != 4 || l.Count(7) != 3 || l.Count(42) != 2 || l.Count(99) != 0 {
		t.Errorf("bad counts: 0->%d 7->%d 42->%d 99->%d", l.Count(0), l.Count(7), l.Count(42), l.Count(99))
	}
}

func TestChainCollisions(t *testing.T) {
	// Tiny bucket count forces long chains.
	l, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	var pairs uint64
	for round := 0; round < 4; round++ {
		for fp := uint64(0); fp < 30; fp++ {
			pairs += l.Observe(fp * 3) // all land in bucket 0
		}
	}
	if l.Len() != 30 {
		t.Errorf("expected 30 entries, got %d", l.Len())
	}
	if l.MaxChain() != 30 {
		t.Errorf("expected a single chain of 30, got %d", l.MaxChain())
	}
	if pairs != 30*6 {
		t.Errorf("expected %d pairs, got %d", 30*6, pairs)
	}
	seen := 0
	l.Each(func(fp, count uint64) {
		if count != 4 || fp%3 != 0 {
			t.Errorf("bad entry %d -> %d", fp, count)
		}
		seen++
	})
	if seen != 30 {
		t.Errorf("Each visited %d entries", seen)
	}
}

func TestPairFormula(t *testing.T) {
	l, err := New(DefaultBuckets)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(17))
	counts := make(map[uint64]uint64)
	var pairs uint64
	for i := 0; i < 20000; i++ {
		fp := rng.Uint64() % 500
		counts[fp]++
		pairs += l.Observe(fp)
	}
	var expected uint64
	for _, n := range counts {
		expected += n * (n - 1) / 2
	}
	if pairs != expected {
		t.Errorf("expected %d pairs, got %d", expected, pairs)
	}
}

func TestBucketCount(t *testing.T) {
	for _, n := range []int{-7, 0, 1, 4, 10000, 10005} {
		if _, err := New(n); !errors.Is(err, ErrBucketCount) {
			t.Errorf("bucket count %d: expected ErrBucketCount, got %v", n, err)
		}
	}
	for _, n := range []int{2, 3, 97, 10007} {
		l, err := New(n)
		if err != nil {
			t.Errorf("bucket count %d: %v", n, err)
			continue
		}
		if l.Buckets() != n {
			t.Errorf("expected %d buckets, got %d", n, l.Buckets())
		}
	}
}

func TestClose(t *testing.T) {
	l, err := New(5)
	if err != nil {
		t.Fatal(err)
	}
	l.Observe(1)
	l.Close()
	if l.Len() != 0 || l.Count(1) != 0 {
		t.Errorf("expected closed ledger to hold nothing")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on Observe after Close")
		}
	}()
	l.Observe(1)
}

func concurrentObserve(t *testing.T, obs interface {
	ObserveInto(uint64, *uint64)
}, goroutines int, fps []uint64) uint64 {
	t.Helper()
	partials := make([]uint64, goroutines)
	var wg sync.WaitGroup
	per := len(fps) / goroutines
	for g := 0; g < goroutines; g++ {
		start, end := g*per, (g+1)*per
		if g == goroutines-1 {
			end = len(fps)
		}
		wg.Add(1)
		go func(g, start, end int) {
			defer wg.Done()
			for _, fp := range fps[start:end] {
				obs.ObserveInto(fp, &partials[g])
			}
		}(g, start, end)
	}
	wg.Wait()
	var total uint64
	for _, p := range partials {
		total += p
	}
	return total
}

func TestConcurrentLedgers(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	fps := make([]uint64, 50000)
	for i := range fps {
		fps[i] = rng.Uint64() % 2000
	}
	seq, err := New(DefaultBuckets)
	if err != nil {
		t.Fatal(err)
	}
	var expected uint64
	for _, fp := range fps {
		expected += seq.Observe(fp)
	}

	for _, goroutines := range []int{1, 2, 4, 8} {
		locked, err := NewLocked(DefaultBuckets)
		if err != nil {
			t.Fatal(err)
		}
		if got := concurrentObserve(t, locked, goroutines, fps); got != expected {
			t.Errorf("locked ledger with %d goroutines: expected %d pairs, got %d", goroutines, expected, got)
		}
		if locked.Pairs() != expected || locked.Len() != seq.Len() {
			t.Errorf("locked ledger state differs: pairs %d, len %d", locked.Pairs(), locked.Len())
		}
		locked.Close()

		sharded, err := NewSharded(goroutines*2, 97)
		if err != nil {
			t.Fatal(err)
		}
		if got := concurrentObserve(t, sharded, goroutines, fps); got != expected {
			t.Errorf("sharded ledger with %d goroutines: expected %d pairs, got %d", goroutines, expected, got)
		}
		if sharded.Pairs() != expected || sharded.Len() != seq.Len() {
			t.Errorf("sharded ledger state differs: pairs %d, len %d", sharded.Pairs(), sharded.Len())
		}
		sharded.Close()
	}

	if _, err := NewSharded(0, 97); err == nil {
		t.Errorf("expected error for zero stripes")
	}
	if _, err := NewSharded(2, 100); !errors.Is(err, ErrBucketCount) {
		t.Errorf("expected ErrBucketCount, got %v", err)
	}
}

func TestIsPrime(t *testing.T) {
	primes := map[int]bool{2: true, 3: true, 5: true, 7: true, 11: true, 13: true}
	for n := -2; n < 15; n++ {
		if IsPrime(n) != primes[n] {
			t.Errorf("IsPrime(%d) = %t", n, IsPrime(n))
		}
	}
	if !IsPrime(10007) || IsPrime(10001) {
		t.Errorf("bad primality around the default bucket count")
	}
}

func BenchmarkObserve(b *testing.B) {
	l, err := New(DefaultBuckets)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	fps := make([]uint64, 1<<16)
	for i := range fps {
		fps[i] = rng.Uint64() % 100000
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Observe(fps[i&(len(fps)-1)])
	}
}
