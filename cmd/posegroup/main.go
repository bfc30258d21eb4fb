// Command posegroup runs the multi-person 2D pose-grouping engine over a
// single JSON-encoded frame, using a YAML skeleton definition to build the
// posegroupcfg.Config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
