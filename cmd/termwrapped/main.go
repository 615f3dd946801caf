// Package main provides the entry point for the termwrapped CLI.
package main

import (
	"fmt"
	"os"

	"github.com/Sumatoshi-tech/termwrapped/cmd/termwrapped/commands"
	"github.com/Sumatoshi-tech/termwrapped/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	rootCmd := commands.NewWrappedCommand()
	rootCmd.AddCommand(commands.NewVersionCommand())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
