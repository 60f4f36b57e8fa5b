package teststat

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// maxDisplayedSamples caps how many raw samples a rendered sample list shows
// before switching to the omission marker.
const maxDisplayedSamples = 3

type renderLine struct {
	key  string
	text string
}

// Render returns the textual dump produced by Print.
func (r *Registry) Render(includeHeaders bool) string {
	var b strings.Builder
	_ = r.Print(&b, includeHeaders) // strings.Builder writes cannot fail
	return b.String()
}

// Print writes a sorted textual dump of the registry to w: the Counters,
// Gauges, and Stats sections in that order, each entry keyed by the
// "/"-joined display form of its name and sorted lexicographically. Distinct
// names may render to the same display key. When includeHeaders is true every
// non-empty section is preceded by a header line and an underline, with one
// blank line between sections; empty sections are skipped.
//
// Each section is an independent snapshot: Print is not linearizable with
// respect to concurrent writers.
func (r *Registry) Print(w io.Writer, includeHeaders bool) error {
	sections := []struct {
		header string
		lines  []renderLine
	}{
		{"Counters", r.counterLines()},
		{"Gauges", r.gaugeLines()},
		{"Stats", r.statLines()},
	}

	wrote := false
	for _, s := range sections {
		if len(s.lines) == 0 {
			continue
		}
		sort.SliceStable(s.lines, func(i, j int) bool { return s.lines[i].key < s.lines[j].key })

		if includeHeaders {
			if wrote {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			underline := strings.Repeat("-", len(s.header))
			if _, err := fmt.Fprintf(w, "%s\n%s\n", s.header, underline); err != nil {
				return err
			}
		}
		for _, ln := range s.lines {
			if _, err := io.WriteString(w, ln.text+"\n"); err != nil {
				return err
			}
		}
		wrote = true
	}
	return nil
}

func (r *Registry) counterLines() []renderLine {
	var entries []counterEntry
	r.counters.Range(func(_, v interface{}) bool {
		e, ok := v.(counterEntry)
		if !ok {
			r.reportInvariantViolation("counter_type", Name{})
			return true
		}
		entries = append(entries, e)
		return true
	})
	return lo.Map(entries, func(e counterEntry, _ int) renderLine {
		key := e.name.Display()
		return renderLine{key: key, text: key + " " + strconv.FormatInt(e.val, 10)}
	})
}

func (r *Registry) gaugeLines() []renderLine {
	var entries []gaugeEntry
	r.gauges.Range(func(_, v interface{}) bool {
		e, ok := v.(gaugeEntry)
		if !ok {
			r.reportInvariantViolation("gauge_type", Name{})
			return true
		}
		entries = append(entries, e)
		return true
	})
	// callbacks are evaluated here, on the rendering goroutine
	return lo.Map(entries, func(e gaugeEntry, _ int) renderLine {
		key := e.name.Display()
		return renderLine{key: key, text: key + " " + formatFloat(e.fn())}
	})
}

func (r *Registry) statLines() []renderLine {
	var entries []statEntry
	r.stats.Range(func(_, v interface{}) bool {
		e, ok := v.(statEntry)
		if !ok {
			r.reportInvariantViolation("stat_type", Name{})
			return true
		}
		if len(e.vals) == 0 {
			// series with no samples are not rendered
			return true
		}
		entries = append(entries, e)
		return true
	})
	return lo.Map(entries, func(e statEntry, _ int) renderLine {
		var sum float32
		for _, v := range e.vals {
			sum += v
		}
		mean := sum / float32(len(e.vals))
		key := e.name.Display()
		return renderLine{
			key:  key,
			text: key + " " + formatFloat(mean) + " " + formatSamples(e.vals),
		}
	})
}

// formatSamples renders a sample sequence as a bracketed list of up to
// maxDisplayedSamples values; longer sequences end with an omission marker
// carrying the count of values not shown.
func formatSamples(vals []float32) string {
	var b strings.Builder
	b.WriteByte('[')
	shown := vals
	if len(shown) > maxDisplayedSamples {
		shown = shown[:maxDisplayedSamples]
	}
	for i, v := range shown {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatFloat(v))
	}
	if omitted := len(vals) - maxDisplayedSamples; omitted > 0 {
		fmt.Fprintf(&b, "... (omitted %d value(s))", omitted)
	}
	b.WriteByte(']')
	return b.String()
}

// formatFloat renders v at float32 precision with no trailing zeros.
func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
