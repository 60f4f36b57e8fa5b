package teststat

import (
	"math"
	"sort"

	"github.com/samber/lo"
)

// Bucket counts the samples that fell into the half-open integer interval
// [Lower, Upper), with Upper = Lower + 1.
type Bucket struct {
	Lower int64
	Upper int64
	Count int
}

// HistogramDetails summarizes every sampled series into integer buckets,
// keyed by display key. Each retained raw sample lands in the bucket
// floor(value) clamped to [0, MaxInt32-1]: negative samples count toward
// bucket 0 and samples at or above MaxInt32 toward bucket MaxInt32-1. Only
// populated buckets are emitted, sorted ascending by lower bound; a series
// with no samples yields an empty bucket list. Distinct names sharing a
// display key are merged into one histogram.
//
// The summary is recomputed from a snapshot of the stats store on every call;
// nothing is maintained incrementally.
func (r *Registry) HistogramDetails() map[string][]Bucket {
	counts := make(map[string]map[int64]int)
	r.stats.Range(func(_, v interface{}) bool {
		e, ok := v.(statEntry)
		if !ok {
			r.reportInvariantViolation("stat_type", Name{})
			return true
		}
		key := e.name.Display()
		byLower, ok := counts[key]
		if !ok {
			byLower = make(map[int64]int)
			counts[key] = byLower
		}
		for _, sample := range e.vals {
			byLower[bucketFor(sample)]++
		}
		return true
	})

	out := make(map[string][]Bucket, len(counts))
	for key, byLower := range counts {
		buckets := lo.MapToSlice(byLower, func(lower int64, count int) Bucket {
			return Bucket{Lower: lower, Upper: lower + 1, Count: count}
		})
		sort.Slice(buckets, func(i, j int) bool { return buckets[i].Lower < buckets[j].Lower })
		out[key] = buckets
	}
	return out
}

// bucketFor maps a raw sample to its bucket's lower bound:
// clamp(floor(v), 0, MaxInt32-1).
func bucketFor(v float32) int64 {
	f := math.Floor(float64(v))
	switch {
	case f < 0:
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32 - 1
	default:
		return int64(f)
	}
}
