/*
Package teststat provides a small, concurrency-safe in-memory metrics
registry for Go, aimed at testing instrumentation: register counters, gauges,
and sampled-value series under hierarchical names, mutate them, and read back
exact values for assertions or human-readable dumps.

# Overview

The central type is Registry. It owns four stores keyed by Name — counters,
gauges, sampled series ("stats"), and verbosity metadata — and offers three
read surfaces on top: a sorted textual dump, an integer-bucket histogram
summary, and direct by-name lookups for assertions.

A Name is an ordered sequence of path segments. Equality is element-wise:
NewName("a", "b") and NewName("a/b") are distinct entries in every store,
even though both display as "a/b". The "/"-joined display form is used only
for sorting and output.

Handles are obtained from the registry and bound to a name:

	r := teststat.New(teststat.WithMaxStats(100))

	c := r.Counter(teststat.NewName("http", "requests"))
	c.Inc(1)

	s := r.Stat(teststat.NewName("http", "latency_ms"))
	s.Add(12.5)

	g := r.AddGauge(teststat.NewName("queue", "depth"), func() float32 {
	    return float32(queue.Len())
	})
	defer g.Remove()

Handle construction eagerly creates the entry (0 for counters, an empty
window for stats), and repeated registration of the same name keeps the
existing value. Gauges store the callback itself; every read invokes it, so
the value reflects the latest external state and is never memoized.

# Consistency model

Each store serializes its own writers with a store-wide mutex, so
read-modify-write sequences (increment, sliding-window append) are race-free.
Single-entry reads are lock-free best-effort map lookups that may race
benignly with a writer, observing the old or the new value but never a
corrupted one. Cross-store operations (Print, HistogramDetails, Clear) take
independent per-store snapshots and are not linearizable; callers that need a
point-in-time view across stores must quiesce other activity themselves.

Clear empties the counters, stats, and gauges stores but never verbosity
metadata, so a level registered for a name remains retrievable after a reset.

# Defaults instead of errors

Absent names resolve to defined defaults rather than failing: 0 for counters,
an empty sequence for stats, and a negative-zero sentinel for a removed or
never-registered gauge. The only failure surfaced to callers is a panic
propagated from a user-supplied gauge callback, which the registry neither
catches nor wraps.

# Build and test

- Run unit tests:

	go test ./...

- Run with the race detector (enables stricter invariant behavior):

	go test -race ./...

- Enable debug build tag (debug invariants enabled):

	go test -tags=debug ./...
*/
package teststat
