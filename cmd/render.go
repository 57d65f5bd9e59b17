// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/sparsedata/sparse"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Result formats accepted by --format.
const (
	formatSparse = "sparse"
	formatDense  = "dense"
	formatTable  = "table"
)

var errUnknownFormat = errors.New("unknown format")

// printer writes listings and section headings to one output.
type printer struct {
	out     io.Writer
	format  string
	numbers *message.Printer
	heading lipgloss.Style
}

func newPrinter(out io.Writer, format, locale string) (*printer, error) {
	switch format {
	case formatSparse, formatDense, formatTable:
	default:
		return nil, fmt.Errorf("%w %q (want %s, %s or %s)", errUnknownFormat, format, formatSparse, formatDense, formatTable)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", locale, err)
	}

	return &printer{
		out:     out,
		format:  format,
		numbers: message.NewPrinter(tag),
		heading: lipgloss.NewStyle().Bold(true),
	}, nil
}

func (p *printer) title(s string) {
	fmt.Fprintln(p.out, p.heading.Render(s))
}

func (p *printer) line(s string) {
	fmt.Fprintln(p.out, s)
}

// matrix writes m in the printer's format.
func (p *printer) matrix(m *sparse.Matrix[int]) error {
	switch p.format {
	case formatDense:
		return m.WriteDense(p.out)
	case formatTable:
		p.table(m)
		return nil
	default:
		return m.WriteSparse(p.out)
	}
}

// table renders the dense form with row and column indices, numbers
// formatted for the configured locale.
func (p *printer) table(m *sparse.Matrix[int]) {
	d := m.Materialize()

	header := make([]string, 0, d.Cols()+1)
	header = append(header, "")
	for j := 0; j < d.Cols(); j++ {
		header = append(header, strconv.Itoa(j))
	}

	table := tablewriter.NewWriter(p.out)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for i, row := range d.ToRows() {
		record := make([]string, 0, len(row)+1)
		record = append(record, strconv.Itoa(i))
		for _, v := range row {
			record = append(record, p.numbers.Sprintf("%d", v))
		}
		table.Append(record)
	}

	table.Render()
}
