package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdutoit/policyparse/internal/common"
	"github.com/jdutoit/policyparse/internal/export"
)

var (
	flagExportType string
	flagExportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export <pdf>",
	Short: "Parse a policy schedule PDF and export the record as an XLSX workbook",
	Long: `Export runs the same extraction as parse, then writes the record to an
Excel workbook with one sheet per section group.

Examples:
  policyparse export schedule.pdf -o schedule.xlsx
  policyparse export schedule.pdf -o schedule.xlsx --type h0ll-pr1v-p0rt-v001`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&flagExportType, "type", "", "Document type ID (default: auto-detect)")
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Output .xlsx path (required)")
	_ = exportCmd.MarkFlagRequired("output")
}

func runExport(cmd *cobra.Command, args []string) error {
	eng := newEngine()

	c, err := eng.provider.FromPDF(context.Background(), args[0])
	if err != nil {
		return common.WrapError(err, "reading "+args[0])
	}

	env, err := eng.dispatcher.Parse(c, flagExportType)
	if err != nil {
		return err
	}

	svc := export.NewService(slog.Default())
	data, err := svc.ScheduleXLSX(env)
	if err != nil {
		return fmt.Errorf("building workbook: %w", err)
	}

	if err := os.WriteFile(flagExportOut, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", flagExportOut, err)
	}
	fmt.Fprintf(os.Stdout, "written: %s\n", flagExportOut)
	return nil
}
