// Package cli implements the policyparse command line interface using Cobra.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdutoit/policyparse/internal/common"
	"github.com/jdutoit/policyparse/internal/corpus"
	"github.com/jdutoit/policyparse/internal/dispatch"
	"github.com/jdutoit/policyparse/internal/registry"
)

var rootCmd = &cobra.Command{
	Use:   "policyparse",
	Short: "Extract structured records from policy schedule PDFs",
	Long: `policyparse turns insurance policy schedule PDFs into structured JSON
records. Document types are detected automatically unless one is named
with --type.

Usage:
  policyparse parse <pdf> [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// engine wires the parsing stack once per invocation. The CLI logs at
// warn level so machine-readable output stays clean on stdout.
type engine struct {
	reg        *registry.Registry
	dispatcher *dispatch.Dispatcher
	provider   *corpus.Provider
}

func newEngine() *engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	cfg := common.LoadConfig()
	reg := registry.New(logger)
	return &engine{
		reg:        reg,
		dispatcher: dispatch.New(reg, logger),
		provider:   corpus.NewProvider(cfg.Provider, logger),
	}
}
