package cmd

import (
	"io"
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/coregx/seeq"
	"github.com/coregx/seeq/internal/input"
	"github.com/coregx/seeq/pattern"
)

func runSeeq(c *cobra.Command, opts *options, args []string) error {
	if err := opts.validate(); err != nil {
		return err
	}

	logger := log.New(io.Discard, "seeq: ", 0)
	if opts.verbose {
		logger.SetOutput(c.ErrOrStderr())
	}

	logger.Printf("parsing pattern %q", args[0])
	m, err := seeq.CompileWithConfig(args[0], opts.distance, opts.config())
	if err != nil {
		return errors.Wrap(err, "invalid pattern")
	}

	src, err := openInput(c, args)
	if err != nil {
		return err
	}
	defer src.Close()
	logger.Printf("processing %s (memory-mapped: %v)", src.Name(), src.Mapped())

	out := c.OutOrStdout()
	p := newPrinter(out, opts, resolveColor(opts.color, out))

	var lines, skipped int
	for src.Next() {
		lines++
		line := src.Line()
		if opts.skip && !isDNA(line) {
			skipped++
			continue
		}

		var match seeq.Match
		var ok bool
		if opts.best {
			match, ok = m.Find(line)
		} else {
			match, ok = m.FindFirst(line)
		}
		if err := p.line(lines, line, match, ok); err != nil {
			return errors.Wrap(err, "cannot write output")
		}
	}
	if err := src.Err(); err != nil {
		return err
	}
	if err := p.finish(); err != nil {
		return errors.Wrap(err, "cannot write output")
	}

	st := m.Stats()
	logger.Printf("%d lines, %d skipped, %d matching", lines, skipped, st.Matches)
	if st.PrefilterActive || st.PrefilterRejects > 0 {
		logger.Printf("prefilter rejected %d of %d lines", st.PrefilterRejects, st.Searches)
	}
	return nil
}

func openInput(c *cobra.Command, args []string) (*input.Source, error) {
	if len(args) < 2 || args[1] == "-" {
		return input.FromReader("stdin", c.InOrStdin()), nil
	}
	return input.Open(args[1])
}

// isDNA reports whether line holds nucleotide letters only.
func isDNA(line []byte) bool {
	for _, c := range line {
		if !pattern.IsBase(c) {
			return false
		}
	}
	return true
}
