/*
Package ledger implements the duplicate ledger: a chained hash table keyed by
block fingerprint that counts occurrences.

Observing fingerprints one at a time and summing the values returned by Observe
yields, for a fingerprint seen n times, 0+1+...+(n-1) = n(n-1)/2, i.e., the number
of unordered block pairs sharing the fingerprint.
*/
package ledger

import (
	"errors"
	"fmt"
)

// DefaultBuckets is the default, prime, number of hash buckets.
const DefaultBuckets = 10007

// ErrBucketCount is returned when the requested number of buckets is not a prime.
var ErrBucketCount = errors.New("ledger bucket count must be a prime")

// Observer is satisfied by anything that can record a fingerprint and return
// the number of times it was observed before.
type Observer interface {
	Observe(fp uint64) uint64
}

const noEntry = -1

// entry is a chain node.  Chains link entries by index into Ledger.entries.
type entry struct {
	fp    uint64
	count uint64
	next  int
}

// Ledger is a fixed number of buckets with per-bucket chaining.  Entries live in
// one growable arena and reference each other by index.  A Ledger is not safe for
// concurrent use; see Locked and Sharded.
type Ledger struct {
	buckets uint64
	heads   []int
	entries []entry

	observations uint64
	closed       bool
}

// New returns an empty ledger with the given prime number of buckets.
func New(buckets int) (*Ledger, error) {
	if !IsPrime(buckets) {
		return nil, fmt.Errorf("%w: got %d", ErrBucketCount, buckets)
	}
	heads := make([]int, buckets)
	for i := range heads {
		heads[i] = noEntry
	}
	return &Ledger{
		buckets: uint64(buckets),
		heads:   heads,
	}, nil
}

// Observe records one occurrence of the fingerprint and returns the count prior
// to this observation: 0 for a new fingerprint.
func (l *Ledger) Observe(fp uint64) uint64 {
	if l.closed {
		panic("ledger: Observe called after Close")
	}
	l.observations++
	b := fp % l.buckets
	for i := l.heads[b]; i != noEntry; i = l.entries[i].next {
		e := &l.entries[i]
		if e.fp == fp {
			prior := e.count
			e.count++
			return prior
		}
	}
	l.entries = append(l.entries, entry{fp: fp, count: 1, next: l.heads[b]})
	l.heads[b] = len(l.entries) - 1
	return 0
}

// Count returns the number of observations of the fingerprint so far.
func (l *Ledger) Count(fp uint64) uint64 {
	if l.closed {
		return 0
	}
	for i := l.heads[fp%l.buckets]; i != noEntry; i = l.entries[i].next {
		if l.entries[i].fp == fp {
			return l.entries[i].count
		}
	}
	return 0
}

// Len returns the number of distinct fingerprints.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Buckets returns the number of hash buckets.
func (l *Ledger) Buckets() int {
	return int(l.buckets)
}

// Observations returns the total number of Observe calls.
func (l *Ledger) Observations() uint64 {
	return l.observations
}

// Pairs returns the number of unordered pairs of observations sharing a
// fingerprint, i.e., the sum of n(n-1)/2 over all entries.  It equals the sum
// of all values returned by Observe.
func (l *Ledger) Pairs() uint64 {
	var pairs uint64
	for _, e := range l.entries {
		pairs += e.count * (e.count - 1) / 2
	}
	return pairs
}

// MaxChain returns the length of the longest bucket chain.
func (l *Ledger) MaxChain() int {
	var longest int
	for _, head := range l.heads {
		n := 0
		for i := head; i != noEntry; i = l.entries[i].next {
			n++
		}
		if n > longest {
			longest = n
		}
	}
	return longest
}

// Each calls f for every fingerprint and its count in arena order.
func (l *Ledger) Each(f func(fp, count uint64)) {
	for _, e := range l.entries {
		f(e.fp, e.count)
	}
}

// Close releases all entries.  The ledger cannot be used afterwards.
func (l *Ledger) Close() {
	l.heads = nil
	l.entries = nil
	l.closed = true
}

// IsPrime returns true if n is a prime number.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
