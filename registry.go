package teststat

import (
	"sync"
	"sync/atomic"
)

// Registry is a concurrency-safe in-memory metrics registry intended for
// tests and lightweight apps. It owns four stores keyed by Name: counters,
// gauges, sampled series ("stats"), and verbosity metadata. Entries are
// created eagerly on handle construction and reused for the same name.
//
// Each store serializes its own writers with a store-wide mutex; single-entry
// reads are lock-free best-effort map lookups. Cross-store operations
// (Render, HistogramDetails, Clear) take independent snapshots per store and
// are not linearizable with respect to concurrent writers.
type Registry struct {
	cfg    *registryConfig
	logger logger

	countersMu  sync.Mutex
	counters    sync.Map // map[string]counterEntry, keyed by Name.key
	gaugesMu    sync.Mutex
	gauges      sync.Map // map[string]gaugeEntry
	statsMu     sync.Mutex
	stats       sync.Map // map[string]statEntry
	verbosityMu sync.Mutex
	verbosity   sync.Map // map[string]Level

	// invariantReports counts reported violations to cap log noise.
	invariantReports atomic.Int32
}

type counterEntry struct {
	name Name
	val  int64
}

type gaugeEntry struct {
	name Name
	fn   GaugeFunc
}

type statEntry struct {
	name Name
	vals []float32
}

// New constructs a Registry.
// Accepts optional functional options to customize behavior.
func New(opts ...Option) *Registry {
	cfg := &registryConfig{}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	l := cfg.logger
	if l == nil {
		l = newNoopLogger()
	}
	return &Registry{cfg: cfg, logger: l}
}

// register applies per-registration options. Verbosity is overwritten on
// every registration that carries it, independent of the value stores.
func (r *Registry) register(name Name, opts []RegOption) {
	cfg := applyRegOptions(opts)
	if !cfg.hasVerbosity {
		return
	}
	r.verbosityMu.Lock()
	r.verbosity.Store(name.key, cfg.verbosity)
	r.verbosityMu.Unlock()
}

// Verbosity returns the verbosity level registered for name, if any.
// Levels survive Clear.
func (r *Registry) Verbosity(name Name) (Level, bool) {
	v, ok := r.verbosity.Load(name.key)
	if !ok {
		return 0, false
	}
	lvl, ok2 := v.(Level)
	if !ok2 {
		r.reportInvariantViolation("verbosity_type", name)
		return 0, false
	}
	return lvl, true
}

// Clear empties the counters, stats, and gauges stores. Verbosity metadata is
// untouched. The three stores are cleared one after another, each under its
// own writer mutex: the operation is not atomic across stores, and a name
// registered concurrently may or may not survive.
func (r *Registry) Clear() {
	r.countersMu.Lock()
	r.counters.Range(func(k, _ interface{}) bool {
		r.counters.Delete(k)
		return true
	})
	r.countersMu.Unlock()

	r.statsMu.Lock()
	r.stats.Range(func(k, _ interface{}) bool {
		r.stats.Delete(k)
		return true
	})
	r.statsMu.Unlock()

	r.gaugesMu.Lock()
	r.gauges.Range(func(k, _ interface{}) bool {
		r.gauges.Delete(k)
		return true
	})
	r.gaugesMu.Unlock()
}

// reportInvariantViolation reports unexpected internal states such as a
// wrong-typed entry in a store. In release builds it logs up to 10 times per
// registry; in debug builds (or under the race detector) it panics to catch
// bugs early.
func (r *Registry) reportInvariantViolation(kind string, name Name) {
	const maxReports = 10

	msg := "[teststat] invariant violation: " + kind + " for " + name.Display()

	if isDebugBuild() {
		panic(msg)
	}

	if r.invariantReports.Add(1) > maxReports {
		return
	}
	r.logger.Warnf(msg)
}

// isDebugBuild reports whether we're in a "debug" or "race" build.
// This uses Go's built-in race detector flag or a debug build tag.
func isDebugBuild() bool {
	return raceBuild || debugBuild
}
