package identity

import (
	"iter"
)

// Languages is a single-pass cursor over declared language values. Elements
// that are not strings are skipped. It is not safe for concurrent use.
type Languages struct {
	values []any
	next   int
}

// NewLanguages creates a cursor over values. The slice is not copied.
func NewLanguages(values []any) *Languages {
	return &Languages{values: values}
}

// Next returns the next string value, or false once the values are exhausted.
func (l *Languages) Next() (string, bool) {
	for l.next < len(l.values) {
		v := l.values[l.next]
		l.next++
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}

// All returns a sequence draining the remaining values. A drained cursor
// yields nothing, so iterating twice does not restart it.
func (l *Languages) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			s, ok := l.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Collect drains the cursor into a slice.
func (l *Languages) Collect() []string {
	var out []string
	for s := range l.All() {
		out = append(out, s)
	}
	return out
}
