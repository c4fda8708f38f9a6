package countnet

import "fmt"

// networkConfig holds the unexported construction-time knobs threaded in by
// CountingNetwork (the public New constructor always uses the
// defaults, matching the external interface in spec form: Network::new
// takes only the output sequence).
type networkConfig struct {
	invertInitial bool
}

// Network is a fixed-width bitonic balancer network over an output type O.
// It owns, in one contiguous arena, every balancer and every output cell;
// all successor links are indices into that arena. A Network is safe for
// concurrent use by any number of goroutines once constructed: Traverse
// never mutates anything but the atomic fields of the balancers and the
// output cells it passes through.
type Network[O any] struct {
	width     int
	balancers []balancer
	outputs   []O
	entry     []segRef // entry[k] is the first segment wire k reaches
}

// New constructs a bitonic counting network over outputs, whose length
// must be a power of two. The Network takes ownership of outputs: callers
// must not retain a mutable reference to the slice's backing array (reads
// via Network.Outputs, and pointers returned by Traverse, remain valid for
// the Network's lifetime).
func New[O any](outputs []O) (*Network[O], error) {
	return newNetwork(outputs, networkConfig{})
}

func newNetwork[O any](outputs []O, cfg networkConfig) (*Network[O], error) {
	w := len(outputs)
	if w == 0 {
		return nil, ErrWidthZero
	}
	if !isPowerOfTwo(w) {
		return nil, fmt.Errorf("%w: got %d", ErrWidthNotPowerOfTwo, w)
	}

	pairs := schedule(w)
	n := &Network[O]{
		width:     w,
		balancers: make([]balancer, len(pairs)),
		outputs:   outputs,
	}

	latest := make([]segRef, w)
	for k := range latest {
		latest[k] = outputRef(k)
	}

	var initial uint32
	if cfg.invertInitial {
		initial = 1
	}

	// Walk the schedule deepest-first: a wire's last-emitted balancer is the
	// one nearest the outputs, so it must be wired before the ones above it.
	for bi := len(pairs) - 1; bi >= 0; bi-- {
		p := pairs[bi]
		b := &n.balancers[bi]
		b.n.Store(initial)
		b.succ0 = latest[p.i]
		b.succ1 = latest[p.j]

		ref := balancerRef(bi)
		latest[p.i] = ref
		latest[p.j] = ref
	}

	n.entry = latest
	return n, nil
}

// Width returns the network's width, a power of two fixed at construction.
func (n *Network[O]) Width() int { return n.width }

// Outputs returns the network's output cells, in construction order. The
// returned slice aliases the Network's own storage and must be treated as
// read-only by callers; mutating output values outside of the type O's own
// concurrency-safe methods is a race.
func (n *Network[O]) Outputs() []O { return n.outputs }

// Traverse routes the calling goroutine through the network and returns a
// pointer to the output cell it arrives at. It is wait-free: exactly
// networkDepth(Width()) balancer steps occur on every call, with no
// blocking and no failure mode. Reading the calling goroutine's id uses a
// pooled scratch buffer, which is allocated when the pool is empty and
// grown when the goroutine's stack trace does not fit in it.
func (n *Network[O]) Traverse() *O {
	wire := entryWire(goroutineID(), n.width)
	cur := n.entry[wire]
	for !cur.isOutput() {
		cur = n.balancers[cur.index()].step()
	}
	return &n.outputs[cur.index()]
}
