package main

import (
	"os"

	"selector-grader/cmd/grader/cmd"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	cmd.SetVersion(Version)
	os.Exit(cmd.Execute())
}
