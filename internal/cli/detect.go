package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdutoit/policyparse/internal/common"
)

var detectCmd = &cobra.Command{
	Use:   "detect <pdf>",
	Short: "Detect the document type of a PDF without extracting fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	eng := newEngine()

	c, err := eng.provider.FromPDF(context.Background(), args[0])
	if err != nil {
		return common.WrapError(err, "reading "+args[0])
	}

	env, err := eng.dispatcher.Parse(c, "")
	if err != nil {
		return err
	}

	out := map[string]any{
		"documentTypeId": env.DocumentTypeID,
		"documentType":   env.DocumentType,
		"insurer":        env.Insurer,
		"status":         env.Status,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
