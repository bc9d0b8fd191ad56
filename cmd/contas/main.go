// Package main is the entry point for the contas account management tool.
package main

import (
	"fmt"
	"os"

	"contas/cmd/contas/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
