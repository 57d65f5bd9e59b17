// SPDX-License-Identifier: MIT

package spy

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/katalvlaran/sparsedata/sparse"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Supported output formats for Render.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatPDF = "pdf"
)

const (
	opPlot   = "Plot"
	opRender = "Render"

	titleFormat = "%dx%d, %d entries"
	cellMargin  = 0.5
)

var (
	// ErrUnsupportedFormat is returned by Render for a format outside png/svg/pdf.
	ErrUnsupportedFormat = errors.New("spy: unsupported format")

	// ErrInvalidSize is returned by Render for a non-positive canvas size.
	ErrInvalidSize = errors.New("spy: invalid size")
)

func spyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Points returns the glyph positions of m's entries in insertion order.
// X is the column; Y is rows-1-row so that row 0 is drawn at the top.
func Points[T sparse.Number](m *sparse.Matrix[T]) plotter.XYs {
	xys := make(plotter.XYs, 0, m.Len())
	top := float64(m.Rows() - 1)
	m.Do(func(e sparse.Entry[T]) bool {
		xys = append(xys, plotter.XY{X: float64(e.Col()), Y: top - float64(e.Row())})
		return true
	})

	return xys
}

// Plot builds the spy plot of m. Axis ranges always cover the whole matrix,
// including an empty one.
func Plot[T sparse.Number](m *sparse.Matrix[T], opts ...Option) (*plot.Plot, error) {
	if err := sparse.ValidateNotNil(m); err != nil {
		return nil, spyErrorf(opPlot, err)
	}
	o := gatherOptions(opts...)

	p := plot.New()
	p.Title.Text = o.title
	if p.Title.Text == "" {
		p.Title.Text = fmt.Sprintf(titleFormat, m.Rows(), m.Cols(), m.Len())
	}
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.Add(plotter.NewGrid())

	if m.Len() > 0 {
		s, err := plotter.NewScatter(Points(m))
		if err != nil {
			return nil, spyErrorf(opPlot, err)
		}
		s.GlyphStyle.Shape = draw.BoxGlyph{}
		s.GlyphStyle.Color = color.Black
		s.GlyphStyle.Radius = o.radius
		p.Add(s)
	}

	p.X.Min, p.X.Max = -cellMargin, float64(m.Cols())-cellMargin
	p.Y.Min, p.Y.Max = -cellMargin, float64(m.Rows())-cellMargin

	return p, nil
}

// Render writes the spy plot of m to w as a size×size image in the given format.
func Render[T sparse.Number](w io.Writer, m *sparse.Matrix[T], format string, size vg.Length, opts ...Option) error {
	switch format {
	case FormatPNG, FormatSVG, FormatPDF:
	default:
		return spyErrorf(opRender, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format))
	}
	if size <= 0 {
		return spyErrorf(opRender, ErrInvalidSize)
	}

	p, err := Plot(m, opts...)
	if err != nil {
		return spyErrorf(opRender, err)
	}

	wt, err := p.WriterTo(size, size, format)
	if err != nil {
		return spyErrorf(opRender, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return spyErrorf(opRender, err)
	}

	return nil
}
