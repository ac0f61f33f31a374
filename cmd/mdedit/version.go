package main

import (
	"fmt"

	"pkt.systems/version"
)

// runVersion prints the ldflags version, or the module version recorded
// in the build info for development builds.
func runVersion(env *Environment) {
	v := Version
	if v == "dev" {
		if current := version.Current(); current != "" {
			v = current
		}
	}
	fmt.Fprintf(env.Stdout, "mdedit %s (%s)\n", v, version.Module())
}
