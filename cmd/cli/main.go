// fileutil - head, tail and copy for line-oriented files
//
// fileutil prints the first or last lines of a file, or copies them into a
// new file in a destination directory.
package main

import (
	"os"

	"github.com/ccollicutt/fileutil/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
