// Plugview runs the demo gain editor against a simulated plugin host and
// reports the metrics of the driver.
package main

import (
	"os"

	"src.plugview.dev/pkg/buildinfo"
	"src.plugview.dev/pkg/demo"
	"src.plugview.dev/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, demo.Program)))
}
