// seeq prints the lines of a file that approximately match a DNA pattern.
package main

import (
	"fmt"
	"os"

	"github.com/coregx/seeq/cmd/seeq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
