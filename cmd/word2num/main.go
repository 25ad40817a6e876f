// Command word2num converts number phrases read from arguments, files
// or stdin.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
