package cmd

import (
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X".
var version = "dev"

// newRootCmd builds the command with its own option set, so tests can run
// it repeatedly.
func newRootCmd() *cobra.Command {
	opts := &options{}

	c := &cobra.Command{
		Use:   "seeq [flags] <pattern> [input]",
		Short: "seeq: approximate DNA pattern search",
		Long: "Prints the lines of input (stdin when omitted) holding a substring within\n" +
			"the given Levenshtein distance of pattern. Patterns use IUPAC codes and\n" +
			"bracketed base sets, e.g. GGN[AT]CC.",
		Version:       version,
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(c *cobra.Command, args []string) error {
			return runSeeq(c, opts, args)
		},
	}

	f := c.Flags()
	f.IntVarP(&opts.distance, "distance", "d", 0, "Maximum Levenshtein distance")
	f.BoolVarP(&opts.count, "count", "c", false, "Print only the count of matching lines")
	f.BoolVarP(&opts.invert, "invert", "i", false, "Print only the non-matching lines")
	f.BoolVarP(&opts.matchOnly, "match-only", "m", false, "Print only the matched part of the line")
	f.BoolVarP(&opts.noPrintLine, "no-printline", "n", false, "Do not print the matching line")
	f.BoolVarP(&opts.lines, "lines", "l", false, "Print the line number of the match")
	f.BoolVarP(&opts.positions, "positions", "p", false, "Print the position of the match in the line")
	f.BoolVarP(&opts.printDist, "print-dist", "k", false, "Print the distance of the match")
	f.BoolVarP(&opts.compact, "compact", "f", false, "Print matches as line:start-end:distance")
	f.BoolVarP(&opts.end, "end", "e", false, "Print only the line after the match")
	f.BoolVarP(&opts.prefix, "prefix", "r", false, "Print only the line before the match")
	f.BoolVarP(&opts.best, "best", "b", false, "Report the best match in the line instead of the first one")
	f.BoolVarP(&opts.skip, "skip", "s", false, "Skip lines containing non-DNA characters")
	f.BoolVarP(&opts.verbose, "verbose", "z", false, "Report progress on stderr")
	f.BoolVar(&opts.dna, "dna", true, "Parse the pattern as IUPAC nucleotides (false: raw bytes)")
	f.StringVar(&opts.color, "color", "auto", "Highlight matches: auto, always, never")

	return c
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
