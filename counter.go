package countnet

// CountingNetwork is a lock-free shared counter: Next returns a distinct
// non-negative integer on every call, and across T calls (from any number
// of goroutines, in any interleaving) the returned multiset is exactly
// {0, 1, ..., T-1}.
//
// It is a thin facade over a Network of Buckets, each seeded with its
// output index (in reverse order under WithInitialBit(true)) and advanced by the network's width on every token it
// receives (see Network.Traverse and Bucket.FetchThenAdd).
type CountingNetwork struct {
	net *Network[Bucket]
}

// NewCountingNetwork constructs a counting network of the given width,
// which must be a power of two. See Option for construction-time knobs.
func NewCountingNetwork(width int, opts ...Option) (*CountingNetwork, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if width <= 0 {
		return nil, ErrWidthZero
	}

	buckets := make([]Bucket, width)
	for k := range buckets {
		// With the inverted initial bit the outputs fill from the last one
		// down, so the seeds run in reverse to keep the sequence contiguous.
		seed := k
		if cfg.invertInitial {
			seed = width - 1 - k
		}
		buckets[k].v.Store(int64(seed))
	}

	net, err := newNetwork(buckets, networkConfig{invertInitial: cfg.invertInitial})
	if err != nil {
		return nil, err
	}

	if cfg.logger != nil {
		cfg.logger.Debug("countnet: constructed counting network",
			"width", width,
			"balancers", len(net.balancers),
			"depth", networkDepth(width),
		)
	}

	return &CountingNetwork{net: net}, nil
}

// MustNewCountingNetwork is like NewCountingNetwork but panics instead of
// returning an error. Width misconfiguration is a programmer error, not a
// runtime condition the caller is expected to recover from, so most
// callers should prefer this constructor (mirroring catrate.NewLimiter's
// panic-on-invalid-input convention).
func MustNewCountingNetwork(width int, opts ...Option) *CountingNetwork {
	c, err := NewCountingNetwork(width, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Width returns the counter's width.
func (c *CountingNetwork) Width() int { return c.net.Width() }

// Next returns the next value in the counter's sequence. It never blocks
// and never fails; see Network.Traverse for when it allocates.
func (c *CountingNetwork) Next() int64 {
	b := c.net.Traverse()
	return b.FetchThenAdd(int64(c.net.Width()))
}
