package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"selector-grader/config"
)

var errUsage = errors.New("usage")

var version = "dev"

func SetVersion(v string) {
	version = v
}

func Execute() int {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.NewConfig(config.NewViper())
	if err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		return 1
	}

	root := newRootCmd(cfg)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			// A bare errUsage means help was already printed.
			if err != errUsage {
				fmt.Fprintln(stderr, "ERROR:", err)
			}
			return 2
		}
		fmt.Fprintln(stderr, "ERROR:", err)
		return 1
	}
	return 0
}
