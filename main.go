// nbquality profiles notebook corpora and visualizes document structure.
package main

import (
	"fmt"
	"os"

	"github.com/phobologic/nbquality/cmd"
)

// version is overridden at release time via
// -ldflags "-X main.version=vX.Y.Z".
var version = "dev"

func main() {
	if err := cmd.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
