package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// resolveColor determines whether to highlight matches. colorFlag is the
// --color value: "auto", "always", or "never".
func resolveColor(colorFlag string, w io.Writer) bool {
	switch colorFlag {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		f, ok := w.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}
}
