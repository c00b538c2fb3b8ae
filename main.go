// Package main is the entry point for the basics command.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/zorak1103/basics/cmd"
)

func main() {
	// Unhandled panics print the stack and exit with status 1.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nPANIC: %v\n", r)
			fmt.Fprintf(os.Stderr, "\nStack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cmd.Execute()
}
