// SPDX-License-Identifier: MIT

package spy

import (
	"gonum.org/v1/plot/vg"
)

// DefaultGlyphRadius is the half-size of one entry marker.
const DefaultGlyphRadius = vg.Length(2)

const panicGlyphRadius = "spy: WithGlyphRadius: radius must be > 0"

// Option customises a plot.
type Option func(*options)

type options struct {
	title  string    // empty means "<rows>x<cols>, <n> entries"
	radius vg.Length // glyph half-size
}

func gatherOptions(opts ...Option) options {
	o := options{radius: DefaultGlyphRadius}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithTitle replaces the generated title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithGlyphRadius sets the marker half-size. Panics if r <= 0.
func WithGlyphRadius(r vg.Length) Option {
	if r <= 0 {
		panic(panicGlyphRadius)
	}

	return func(o *options) { o.radius = r }
}
