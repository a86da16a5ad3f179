package ledger

import (
	"fmt"
	"sync"
)

// Locked shares one Ledger between goroutines behind a single mutex.  Every
// observation, including the lookup, insert, increment, and the caller's pair
// accumulation, happens inside one critical section, so all ledger access is
// serialized regardless of the number of goroutines.
type Locked struct {
	mu sync.Mutex
	l  *Ledger
}

// NewLocked returns a mutex-guarded ledger.
func NewLocked(buckets int) (*Locked, error) {
	l, err := New(buckets)
	if err != nil {
		return nil, err
	}
	return &Locked{l: l}, nil
}

// Observe records the fingerprint and returns its prior count.
func (lk *Locked) Observe(fp uint64) uint64 {
	lk.mu.Lock()
	prior := lk.l.Observe(fp)
	lk.mu.Unlock()
	return prior
}

// ObserveInto records the fingerprint and adds its prior count to *pairs while
// still holding the lock.
func (lk *Locked) ObserveInto(fp uint64, pairs *uint64) {
	lk.mu.Lock()
	*pairs += lk.l.Observe(fp)
	lk.mu.Unlock()
}

// Len returns the number of distinct fingerprints.
func (lk *Locked) Len() int {
	lk.mu.Lock()
	defer lk.mu.Unlock()
	return lk.l.Len()
}

// Pairs returns the pair count over all observed fingerprints.
func (lk *Locked) Pairs() uint64 {
	lk.mu.Lock()
	defer lk.mu.Unlock()
	return lk.l.Pairs()
}

// Close releases the underlying ledger.
func (lk *Locked) Close() {
	lk.mu.Lock()
	lk.l.Close()
	lk.mu.Unlock()
}

// Sharded stripes fingerprints across independent ledgers, each with its own
// mutex.  A fingerprint always maps to the same stripe so Observe stays atomic
// per fingerprint while unrelated fingerprints proceed in parallel.
type Sharded struct {
	stripes []stripe
}

type stripe struct {
	mu sync.Mutex
	l  *Ledger
	_  [40]byte // keeps neighboring mutexes off the same cache line
}

// NewSharded returns a ledger striped n ways, each stripe with the given prime
// number of buckets.
func NewSharded(n, buckets int) (*Sharded, error) {
	if n < 1 {
		return nil, fmt.Errorf("sharded ledger needs at least one stripe, got %d", n)
	}
	s := &Sharded{stripes: make([]stripe, n)}
	for i := range s.stripes {
		l, err := New(buckets)
		if err != nil {
			return nil, err
		}
		s.stripes[i].l = l
	}
	return s, nil
}

func (s *Sharded) stripeFor(fp uint64) *stripe {
	// Mix the fingerprint so stripe choice is independent of bucket choice.
	h := fp * 0x9E3779B97F4A7C15
	return &s.stripes[(h>>32)%uint64(len(s.stripes))]
}

// Observe records the fingerprint and returns its prior count.
func (s *Sharded) Observe(fp uint64) uint64 {
	st := s.stripeFor(fp)
	st.mu.Lock()
	prior := st.l.Observe(fp)
	st.mu.Unlock()
	return prior
}

// ObserveInto records the fingerprint and adds its prior count to *pairs
// while holding the stripe's lock.
func (s *Sharded) ObserveInto(fp uint64, pairs *uint64) {
	st := s.stripeFor(fp)
	st.mu.Lock()
	*pairs += st.l.Observe(fp)
	st.mu.Unlock()
}

// Len returns the number of distinct fingerprints across all stripes.
func (s *Sharded) Len() int {
	var n int
	for i := range s.stripes {
		st := &s.stripes[i]
		st.mu.Lock()
		n += st.l.Len()
		st.mu.Unlock()
	}
	return n
}

// Pairs returns the pair count over all stripes.
func (s *Sharded) Pairs() uint64 {
	var pairs uint64
	for i := range s.stripes {
		st := &s.stripes[i]
		st.mu.Lock()
		pairs += st.l.Pairs()
		st.mu.Unlock()
	}
	return pairs
}

// Close releases every stripe.
func (s *Sharded) Close() {
	for i := range s.stripes {
		st := &s.stripes[i]
		st.mu.Lock()
		st.l.Close()
		st.mu.Unlock()
	}
}
