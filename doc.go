// Package countnet implements a lock-free shared counter built atop a
// bitonic counting network: a concurrent data structure that distributes
// contending goroutines across many lightly contended single-bit balancer
// nodes, in place of a single sequential bottleneck.
//
// The core type is Network[O], a fixed-width DAG of balancer nodes feeding
// a sequence of output cells of caller-chosen type O. CountingNetwork wraps
// a Network of integer buckets and exposes Next, a counter whose
// consecutive calls return every non-negative integer exactly once,
// regardless of how many goroutines call it concurrently.
//
// Networks are not resizable and widths must be a power of two; see
// ErrWidthNotPowerOfTwo.
package countnet
