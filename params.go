package subiso

import "sync/atomic"

// maxK is the ceiling on the number of supplemental-graph bands.
const maxK = 5

// AbortFlag is the shared, externally-settable cancellation flag: read-only
// from the solver's point of view, atomically settable by the caller. The
// zero value is a usable, unset flag.
type AbortFlag struct {
	flag atomic.Bool
}

// Abort requests that any in-progress Solve unwind as soon as it next polls
// the flag. Safe to call from any goroutine, at any time, any number of
// times.
func (a *AbortFlag) Abort() { a.flag.Store(true) }

// Aborted reports whether Abort has been called.
func (a *AbortFlag) Aborted() bool { return a.flag.Load() }

// Params holds the tuning knobs for Solve. Build one with NewParams and the
// With... options below, following the functional-options idiom this
// package's ancestor uses for its search configuration
// (soniakeys/graph/search.DepthFirst's options ...func(*config)).
type Params struct {
	k     int
	l     int
	abort *AbortFlag
}

// Option configures a Params.
type Option func(*Params)

// WithAbortFlag installs the shared cancellation flag the search polls at
// every node. Without this option Solve runs to completion or exhaustion.
func WithAbortFlag(a *AbortFlag) Option {
	return func(p *Params) { p.abort = a }
}

// WithBands sets the number of supplemental-graph bands k. k is clamped to
// [0, 5]. The reference implementation this package is adapted from used
// k=4.
func WithBands(k int) Option {
	return func(p *Params) {
		switch {
		case k < 0:
			p.k = 0
		case k > maxK:
			p.k = maxK
		default:
			p.k = k
		}
	}
}

// WithWalkLength sets l, the supplemental-graph walk length. Only l <= 2 is
// implemented; longer walks have no defined semantics here, so values above
// 2 are clamped to 2, and values below 1 are clamped to 1.
func WithWalkLength(l int) Option {
	return func(p *Params) {
		switch {
		case l < 1:
			p.l = 1
		case l > 2:
			p.l = 2
		default:
			p.l = l
		}
	}
}

// NewParams builds a Params from the given options, defaulting to the
// reference implementation's own k=4, l=2 and no abort flag.
func NewParams(options ...Option) Params {
	p := Params{k: 4, l: 2}
	for _, o := range options {
		o(&p)
	}
	return p
}

// maxGraphs returns 1 + (l-1)*k, the number of supplemental-graph layers:
// layer 0 plus k bands for each of l-1 additional walk passes.
func (p Params) maxGraphs() int {
	return 1 + (p.l-1)*p.k
}

func (p Params) aborted() bool {
	return p.abort != nil && p.abort.Aborted()
}
