package teststat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistogramDetails_Bucketing(t *testing.T) {
	r := New()
	s := r.Stat(NewName("latency"))
	for _, v := range []float32{0.2, 1.9, 1.1, -3.0, 2147483650.0} {
		s.Add(v)
	}

	details := r.HistogramDetails()
	require.Len(t, details, 1)

	// -3.0 clamps up into bucket 0 next to 0.2; 1.9 and 1.1 share bucket 1;
	// the huge sample clamps into the top bucket
	buckets := details["latency"]
	require.Equal(t, []Bucket{
		{Lower: 0, Upper: 1, Count: 2},
		{Lower: 1, Upper: 2, Count: 2},
		{Lower: math.MaxInt32 - 1, Upper: math.MaxInt32, Count: 1},
	}, buckets)
}

func TestHistogramDetails_OnlyPopulatedBuckets(t *testing.T) {
	r := New()
	s := r.Stat(NewName("sparse"))
	s.Add(0.5)
	s.Add(100.5)

	buckets := r.HistogramDetails()["sparse"]
	require.Equal(t, []Bucket{
		{Lower: 0, Upper: 1, Count: 1},
		{Lower: 100, Upper: 101, Count: 1},
	}, buckets)
}

func TestHistogramDetails_EmptySeries(t *testing.T) {
	r := New()
	r.Stat(NewName("empty"))

	details := r.HistogramDetails()
	require.Contains(t, details, "empty")
	require.Empty(t, details["empty"])
}

func TestHistogramDetails_RecomputedPerCall(t *testing.T) {
	r := New()
	s := r.Stat(NewName("grow"))
	s.Add(1)

	require.Equal(t, []Bucket{{Lower: 1, Upper: 2, Count: 1}}, r.HistogramDetails()["grow"])

	s.Add(1.5)
	require.Equal(t, []Bucket{{Lower: 1, Upper: 2, Count: 2}}, r.HistogramDetails()["grow"])
}

func TestHistogramDetails_MergesSharedDisplayKey(t *testing.T) {
	r := New()
	r.Stat(NewName("a", "b")).Add(0.5)
	r.Stat(NewName("a/b")).Add(0.7)

	details := r.HistogramDetails()
	require.Len(t, details, 1)
	require.Equal(t, []Bucket{{Lower: 0, Upper: 1, Count: 2}}, details["a/b"])
}

func TestBucketFor_Clamping(t *testing.T) {
	require.EqualValues(t, 0, bucketFor(-3.0))
	require.EqualValues(t, 0, bucketFor(0))
	require.EqualValues(t, 0, bucketFor(0.999))
	require.EqualValues(t, 7, bucketFor(7.2))
	require.EqualValues(t, math.MaxInt32-1, bucketFor(math.MaxInt32))
	require.EqualValues(t, math.MaxInt32-1, bucketFor(2147483650.0))
	require.EqualValues(t, math.MaxInt32-1, bucketFor(float32(math.Inf(1))))
	require.EqualValues(t, 0, bucketFor(float32(math.Inf(-1))))
}
