package countnet

import "sync/atomic"

// cacheLineSize is the target cache line width used to pad hot atomic
// fields apart, avoiding false sharing between balancers (and buckets)
// hammered concurrently by different cores.
const cacheLineSize = 64

// segRef is an index into a Network's arena. The high bit distinguishes a
// reference into the balancer slice from a reference into the output
// slice, so successors can be stored as a single 4-byte value rather than
// a tagged struct or an interface.
type segRef uint32

const segRefOutputFlag segRef = 1 << 31

func balancerRef(i int) segRef { return segRef(i) }

func outputRef(i int) segRef { return segRefOutputFlag | segRef(i) }

func (r segRef) isOutput() bool { return r&segRefOutputFlag != 0 }

func (r segRef) index() int { return int(r &^ segRefOutputFlag) }

// balancer is a single-bit toggle with two successor slots. Each call to
// step atomically advances the toggle and returns the successor selected
// by the pre-advance value: callers alternate between succ0 and succ1.
//
// The toggle is implemented as a monotonically increasing counter rather
// than a fetch-xor, per the design note that a fetch-add modulo two is an
// equally valid (and, in Go, more directly available) realization of the
// same single-bit flip. Parity of the counter before this call's increment
// selects the successor: even selects succ0, odd selects succ1.
//
// Go's atomic package does not expose a relaxed memory order weaker than
// sequential consistency, so this toggle runs stronger than the minimum
// the step property requires. That is harmless: the step property depends
// only on the count of tokens that have crossed the balancer, never on its
// ordering relative to other memory.
type balancer struct {
	n     atomic.Uint32
	succ0 segRef
	succ1 segRef
	_     [cacheLineSize - 3*4]byte
}

// step flips the balancer's toggle and returns the successor chosen by the
// value observed immediately before the flip.
func (b *balancer) step() segRef {
	n := b.n.Add(1)
	if (n-1)&1 == 0 {
		return b.succ0
	}
	return b.succ1
}
