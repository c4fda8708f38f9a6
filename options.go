package countnet

import "log/slog"

// config holds the construction-time options for a CountingNetwork. There
// is no runtime configuration surface: Next and Traverse never consult
// config after construction.
type config struct {
	logger        *slog.Logger
	invertInitial bool
}

// Option configures a CountingNetwork at construction time, in the style
// of catrate's plain validated-parameter constructors rather than a config
// struct or file: there is nothing here a running process would ever want
// to change after New returns.
type Option func(*config)

// WithLogger attaches a structured logger that receives a single Debug
// record describing the constructed network (width, balancer count,
// depth). It is never consulted again: Traverse and Next do not log.
// A nil logger (the default) makes construction logging a no-op.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithInitialBit selects which successor (up=false or up=true) the first
// token to reach any newly constructed balancer takes. Both conventions
// produce a valid counting network; they differ only in which output wire
// 0 is first routed to. The default (false) routes the first token on any
// balancer to its up=false successor. With true, the outputs fill from the
// last one down, and NewCountingNetwork seeds its buckets in reverse order
// to match.
func WithInitialBit(invertInitial bool) Option {
	return func(c *config) { c.invertInitial = invertInitial }
}
