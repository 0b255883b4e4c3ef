// Package main provides lectern, a metadata toolkit for flat-file
// lecture notes.
package main

import (
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"lectern/internal/cli"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	exitCode := cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args, env)

	os.Exit(exitCode)
}
