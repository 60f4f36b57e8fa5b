package teststat

import (
	"strconv"
	"strings"
)

// Name identifies a metric within one store. It is an ordered, immutable
// sequence of path segments. Two names are equal iff their segment sequences
// are equal element-wise; segments are never split or joined implicitly, so
// NewName("a", "b") and NewName("a/b") address distinct entries even though
// both display as "a/b".
type Name struct {
	segs []string
	// key is a length-prefixed encoding of the segments. Unlike the display
	// form it preserves segment boundaries, so it is safe as a store key.
	key string
}

// NewName constructs a Name from the given path segments.
// The segments are copied; later mutation of the argument slice has no effect.
func NewName(segments ...string) Name {
	segs := make([]string, len(segments))
	copy(segs, segments)

	var b strings.Builder
	for _, s := range segs {
		b.WriteString(strconv.Itoa(len(s)))
		b.WriteByte(':')
		b.WriteString(s)
	}
	return Name{segs: segs, key: b.String()}
}

// Segments returns a copy of the name's path segments.
func (n Name) Segments() []string {
	out := make([]string, len(n.segs))
	copy(out, n.segs)
	return out
}

// Display returns the segments joined with "/". The display form is used only
// for sorting and textual output; it is not identity-affecting.
func (n Name) Display() string {
	return strings.Join(n.segs, "/")
}

func (n Name) String() string { return n.Display() }
