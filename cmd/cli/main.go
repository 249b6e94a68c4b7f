package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:     "shadowgen",
		Short:   "shadowgen - Mixin shadow stub generation from Java source",
		Long:    `shadowgen scans Java source for declarations and synthesizes @Shadow member stubs for mixin classes.`,
		Version: version,
	}

	// Add subcommands
	rootCmd.AddCommand(operationCmd("shadows", "Generate @Shadow stubs for the filtered class"))
	rootCmd.AddCommand(operationCmd("list-fields", "List detected field names"))
	rootCmd.AddCommand(operationCmd("list-methods", "List detected method names"))
	rootCmd.AddCommand(tokensCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
