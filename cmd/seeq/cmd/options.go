package cmd

import (
	"github.com/pkg/errors"

	"github.com/coregx/seeq"
)

type options struct {
	distance    int
	count       bool
	invert      bool
	matchOnly   bool
	noPrintLine bool
	lines       bool
	positions   bool
	printDist   bool
	compact     bool
	end         bool
	prefix      bool
	best        bool
	skip        bool
	verbose     bool
	dna         bool
	color       string
}

// printLine reports whether whole matching lines are printed. Any of the
// partial-line outputs replaces the line.
func (o *options) printLine() bool {
	return !o.noPrintLine && !o.matchOnly && !o.end && !o.prefix
}

func (o *options) validate() error {
	if o.distance < 0 {
		return errors.Errorf("distance must be a non-negative integer, got %d", o.distance)
	}
	switch o.color {
	case "auto", "always", "never":
	default:
		return errors.Errorf("invalid --color %q (want auto, always or never)", o.color)
	}
	if !o.printDist && !o.positions && !o.printLine() && !o.matchOnly && !o.lines &&
		!o.count && !o.compact && !o.prefix && !o.end {
		return errors.New("invalid options: no output will be generated")
	}
	return nil
}

func (o *options) config() seeq.Config {
	config := seeq.DefaultConfig()
	if o.dna {
		config.Syntax = seeq.DNA
	}
	return config
}
