// Command clockicond animates clock launcher icons from a theme pack and
// exports their hand levels over HTTP.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
