package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdutoit/policyparse/internal/common"
)

var (
	flagDocType string
	flagPretty  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <pdf>",
	Short: "Parse a policy schedule PDF into a structured JSON record",
	Long: `Parse extracts page text from the PDF, detects the document type (unless
--type names one explicitly), runs the matching extractor, and prints the
resulting record as JSON on stdout.

Examples:
  policyparse parse schedule.pdf
  policyparse parse schedule.pdf --pretty
  policyparse parse schedule.pdf --type d1s0-p0l1-sch3-v001`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVar(&flagDocType, "type", "", "Document type ID (default: auto-detect)")
	parseCmd.Flags().BoolVar(&flagPretty, "pretty", false, "Indent the JSON output")
}

func runParse(cmd *cobra.Command, args []string) error {
	eng := newEngine()

	c, err := eng.provider.FromPDF(context.Background(), args[0])
	if err != nil {
		return common.WrapError(err, "reading "+args[0])
	}

	env, err := eng.dispatcher.Parse(c, flagDocType)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	if flagPretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(env)
}
