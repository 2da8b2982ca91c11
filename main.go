// Package main is the entry point for the erratic error-decision engine.
package main

import (
	"fmt"
	"os"

	"firestige.xyz/erratic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
