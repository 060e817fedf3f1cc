// Package main provides the CLI entry point for schemaxform: given two
// JSON or YAML schema files, it searches for a transformation between them
// and prints generated source implementing it.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cfg := newRunConfig()

	rootCmd := &cobra.Command{
		Use:   "schemaxform [flags] <source-schema> <target-schema>",
		Short: "Synthesize a data transformation between two JSON Schemas",
		Long: `schemaxform searches for a sequence of rewriting steps that converts values
matching a source JSON Schema into values matching a target JSON Schema, and
emits source code (JavaScript, TypeScript, or Go) that performs the
conversion.`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(cfg, args[0], args[1], os.Stdout, os.Stderr)
		},
	}

	cfg.registerFlags(rootCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

func exitCodeFor(err error) int {
	var xerr *exitError
	if errors.As(err, &xerr) {
		return xerr.code
	}
	return 1
}
