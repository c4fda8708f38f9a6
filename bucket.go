package countnet

import "sync/atomic"

// Bucket is a counting network output cell: an integer, cache-line padded
// to keep independent buckets from false-sharing, that starts at some
// value and is advanced by FetchThenAdd on every token that reaches it.
type Bucket struct {
	v atomic.Int64
	_ [cacheLineSize - 8]byte
}

// FetchThenAdd atomically adds delta to the bucket and returns the value
// observed immediately before the add.
//
// This is the one place the design requires strong ordering: Go's atomic
// package gives every operation on atomic.Int64 sequentially consistent
// semantics, which is exactly what prevents two goroutines reaching the
// same bucket through different paths from ever observing the same prior
// value.
func (b *Bucket) FetchThenAdd(delta int64) int64 {
	return b.v.Add(delta) - delta
}

// Value returns the bucket's current value. It is provided for inspection
// and testing; it is not part of the hot Next path.
func (b *Bucket) Value() int64 {
	return b.v.Load()
}
