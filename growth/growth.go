// Package growth implements the growth engine: it drives
// S(1) -> S(2) -> ... -> S(n), pulling the prior generation, expanding
// every shape, folding duplicates via the Canonicalizer, and optionally
// persisting each generation through a cache.Cache.
//
// The options pattern (Option, Options, WithX constructors) mirrors the
// teacher's dfs.DFSOptions (dfs/types.go): a small options struct with
// functional-option constructors, a context.Context field for coarse
// cancellation, and an optional progress hook.
package growth

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/polycube/cache"
	"github.com/katalvlaran/polycube/canon"
	"github.com/katalvlaran/polycube/expand"
	"github.com/katalvlaran/polycube/pack"
	"github.com/katalvlaran/polycube/voxel"
)

// unpackID decodes a fingerprint set's string key (a packed byte string
// stored via Go's content-hashed string map key) back into a voxel.Grid.
func unpackID(id string) (voxel.Grid, error) {
	return pack.Unpack([]byte(id))
}

// ErrInvalidSize indicates n < 1 was requested. No state is mutated.
var ErrInvalidSize = errors.New("growth: n must be >= 1")

// Logger receives progress updates. It is satisfied by *log.Logger from
// charmbracelet/log (see cmd/polycubes) or left nil for silence.
type Logger interface {
	Infof(format string, args ...interface{})
}

// Stats reports cumulative counters for one Generate call, surfaced for
// progress reporting separately from the cardinality result itself:
// progress is driven by counting parent shapes processed.
type Stats struct {
	ParentsProcessed int
	CandidatesSeen   int
	DuplicatesFolded int
}

// Options configures a Generate call.
type Options struct {
	Ctx    context.Context
	Cache  cache.Cache
	Logger Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with a background context, no cache
// (NullCache), and no logger.
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		Cache: cache.NullCache{},
	}
}

// WithContext sets the cancellation context. Mid-generation cancellation
// discards work; only the current generation's computation aborts —
// earlier completed generations already returned are unaffected.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCache sets the cache.Cache to consult and persist into.
func WithCache(c cache.Cache) Option {
	return func(o *Options) {
		if c != nil {
			o.Cache = c
		}
	}
}

// WithLogger installs a progress logger.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func baseCase1() voxel.Grid {
	g, _ := voxel.NewGrid(1, 1, 1)
	return g.WithCell(0, 0, 0, true)
}

func baseCase2() voxel.Grid {
	g, _ := voxel.NewGrid(2, 1, 1)
	g = g.WithCell(0, 0, 0, true)
	g = g.WithCell(1, 0, 0, true)

	return g
}

// Generate computes S(n), the set of distinct polycubes of size n up to
// rotation.
//
//   - n < 1: returns ErrInvalidSize, no state mutation.
//   - n == 1: the single 1x1x1 shape.
//   - n == 2: the single 2x1x1 domino.
//   - otherwise: recursively obtains S(n-1) (via cache if opts.Cache
//     reports Exists, else by recursing), expands every shape, folds
//     duplicates via canon.CanonicalID, and persists the result.
//
// A cache load failure is non-fatal: Generate logs it (if a Logger is
// set) and recomputes. A cache store failure is surfaced to the caller
// via Logger alongside the otherwise-valid result, not as a fatal error.
func Generate(n int, opts ...Option) ([]voxel.Grid, Stats, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return generate(o, n)
}

func generate(o Options, n int) ([]voxel.Grid, Stats, error) {
	if n < 1 {
		return nil, Stats{}, ErrInvalidSize
	}
	if n == 1 {
		return []voxel.Grid{baseCase1()}, Stats{}, nil
	}
	if n == 2 {
		return []voxel.Grid{baseCase2()}, Stats{}, nil
	}

	select {
	case <-o.Ctx.Done():
		return nil, Stats{}, o.Ctx.Err()
	default:
	}

	if o.Cache.Exists(n) {
		shapes, err := o.Cache.Load(n)
		if err == nil {
			if o.Logger != nil {
				o.Logger.Infof("loaded %d shapes for n=%d from cache", len(shapes), n)
			}

			return shapes, Stats{}, nil
		}
		if o.Logger != nil {
			o.Logger.Infof("cache load for n=%d failed, recomputing: %v", n, err)
		}
	}

	parents, _, err := generate(o, n-1)
	if err != nil {
		return nil, Stats{}, err
	}

	known := canon.NewFingerprintSet(0)
	var stats Stats
	for _, parent := range parents {
		select {
		case <-o.Ctx.Done():
			return nil, stats, o.Ctx.Err()
		default:
		}

		cands, err := expand.Candidates(parent)
		if err != nil {
			return nil, stats, fmt.Errorf("growth: expanding parent: %w", err)
		}
		for _, cand := range cands {
			if cand.Count() != n {
				panic(fmt.Sprintf("growth: invariant violation: expander emitted size %d, want %d", cand.Count(), n))
			}
			stats.CandidatesSeen++
			before := known.Len()
			id, err := canon.CanonicalID(cand, known)
			if err != nil {
				return nil, stats, fmt.Errorf("growth: canonicalizing candidate: %w", err)
			}
			known.Add(id)
			if known.Len() == before {
				stats.DuplicatesFolded++
			}
		}
		stats.ParentsProcessed++
		if o.Logger != nil && (stats.ParentsProcessed%100 == 0 || stats.ParentsProcessed == len(parents)) {
			o.Logger.Infof("n=%d: processed %d/%d parents (%.2f%%)",
				n, stats.ParentsProcessed, len(parents),
				100*float64(stats.ParentsProcessed)/float64(len(parents)))
		}
	}

	results := make([]voxel.Grid, 0, known.Len())
	for id := range known {
		g, err := unpackID(id)
		if err != nil {
			panic("growth: invariant violation: failed to unpack a stored canonical id: " + err.Error())
		}
		if g.Count() != n {
			panic(fmt.Sprintf("growth: invariant violation: unpacked size %d, want %d", g.Count(), n))
		}
		results = append(results, g)
	}

	if o.Cache.Store(n, results) != nil && o.Logger != nil {
		o.Logger.Infof("n=%d: cache store failed, result still returned", n)
	}

	return results, stats, nil
}
