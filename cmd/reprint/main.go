// Command reprint renders YAML or JSON documents with a reprint style.
//
//	reprint --style pretty config.yaml
//	kubectl get pod web -o json | reprint --max-depth 2
package main

import (
	"fmt"
	"os"
)

const exitError = 1

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "reprint:", err)
		os.Exit(exitError)
	}
}
