package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/coregx/seeq"
)

const (
	boldRed   = "\033[1;31m"
	boldGreen = "\033[1;32m"
	reset     = "\033[0m"
)

// printer formats one input line at a time.
type printer struct {
	w        *bufio.Writer
	opts     *options
	color    bool
	selected int
}

func newPrinter(w io.Writer, opts *options, color bool) *printer {
	return &printer{w: bufio.NewWriter(w), opts: opts, color: color}
}

// line handles input line n (1-based). ok tells whether it matched.
func (p *printer) line(n int, text []byte, m seeq.Match, ok bool) error {
	o := p.opts
	if ok == o.invert {
		return nil
	}
	p.selected++

	switch {
	case o.count:
		return nil
	case o.invert:
		return p.nonMatching(n, text)
	case o.compact:
		_, err := fmt.Fprintf(p.w, "%d:%d-%d:%d\n", n, m.Start, m.End-1, m.Distance)
		return err
	}

	if o.lines {
		fmt.Fprintf(p.w, "%d ", n)
	}
	if o.positions {
		fmt.Fprintf(p.w, "%d-%d ", m.Start, m.End-1)
	}
	if o.printDist {
		fmt.Fprintf(p.w, "%d ", m.Distance)
	}
	switch {
	case o.matchOnly:
		p.w.Write(m.Bytes(text))
	case o.end:
		p.w.Write(text[m.End:])
	case o.prefix:
		p.w.Write(text[:m.Start])
	case o.printLine():
		p.highlight(text, m)
	}
	return p.w.WriteByte('\n')
}

// nonMatching prints a line selected by --invert: its number and text,
// nothing about a match.
func (p *printer) nonMatching(n int, text []byte) error {
	if p.opts.lines {
		fmt.Fprintf(p.w, "%d ", n)
	}
	if !p.opts.noPrintLine {
		p.w.Write(text)
	}
	return p.w.WriteByte('\n')
}

// highlight writes text with the match in bold green when exact, bold red
// otherwise.
func (p *printer) highlight(text []byte, m seeq.Match) {
	if !p.color {
		p.w.Write(text)
		return
	}
	c := boldRed
	if m.Distance == 0 {
		c = boldGreen
	}
	p.w.Write(text[:m.Start])
	p.w.WriteString(c)
	p.w.Write(m.Bytes(text))
	p.w.WriteString(reset)
	p.w.Write(text[m.End:])
}

// finish writes the count, if requested, and flushes.
func (p *printer) finish() error {
	if p.opts.count {
		fmt.Fprintf(p.w, "%d\n", p.selected)
	}
	return p.w.Flush()
}
