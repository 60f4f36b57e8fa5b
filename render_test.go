package teststat

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func populatedRegistry(t *testing.T) *Registry {
	t.Helper()
	r := New()

	r.Counter(NewName("requests", "total")).Inc(5)
	r.Counter(NewName("errors"))
	r.AddGauge(NewName("queue", "depth"), func() float32 { return 2.5 })

	s := r.Stat(NewName("latency"))
	for i := 1; i <= 5; i++ {
		s.Add(float32(i))
	}
	return r
}

func TestRender_WithHeaders(t *testing.T) {
	r := populatedRegistry(t)

	want := "Counters\n" +
		"--------\n" +
		"errors 0\n" +
		"requests/total 5\n" +
		"\n" +
		"Gauges\n" +
		"------\n" +
		"queue/depth 2.5\n" +
		"\n" +
		"Stats\n" +
		"-----\n" +
		"latency 3 [1,2,3... (omitted 2 value(s))]\n"

	require.Equal(t, want, r.Render(true))
}

func TestRender_WithoutHeaders(t *testing.T) {
	r := populatedRegistry(t)

	want := "errors 0\n" +
		"requests/total 5\n" +
		"queue/depth 2.5\n" +
		"latency 3 [1,2,3... (omitted 2 value(s))]\n"

	require.Equal(t, want, r.Render(false))
}

func TestRender_EmptySectionsSkipped(t *testing.T) {
	r := New()
	require.Equal(t, "", r.Render(true))

	r.Counter(NewName("only")).Inc(1)
	require.Equal(t, "Counters\n--------\nonly 1\n", r.Render(true))

	// a stat with no samples does not produce a Stats section
	r.Stat(NewName("empty"))
	require.Equal(t, "Counters\n--------\nonly 1\n", r.Render(true))
}

func TestRender_MeanUsesFullWindow(t *testing.T) {
	r := New()
	s := r.Stat(NewName("m"))
	for _, v := range []float32{2, 4} {
		s.Add(v)
	}
	require.Equal(t, "m 3 [2,4]\n", r.Render(false))
}

func TestRender_SameDisplayKeyForDistinctNames(t *testing.T) {
	r := New()
	r.Counter(NewName("a", "b")).Inc(1)
	r.Counter(NewName("a/b")).Inc(2)

	out := r.Render(false)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2, "distinct names must render as distinct lines")
	require.Contains(t, lines, "a/b 1")
	require.Contains(t, lines, "a/b 2")
}

func TestRender_RemovedGaugeNotRendered(t *testing.T) {
	r := New()
	g := r.AddGauge(NewName("gone"), func() float32 { return 1 })
	g.Remove()

	require.Equal(t, "", r.Render(false))
}

func TestRender_FractionalValues(t *testing.T) {
	r := New()
	s := r.Stat(NewName("f"))
	s.Add(0.5)
	s.Add(1.5)
	s.Add(2.5)
	s.Add(3.5)

	require.Equal(t, "f 2 [0.5,1.5,2.5... (omitted 1 value(s))]\n", r.Render(false))
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestPrint_WriterErrorPropagates(t *testing.T) {
	r := New()
	r.Counter(NewName("c")).Inc(1)

	require.Error(t, r.Print(errWriter{}, false))
}
