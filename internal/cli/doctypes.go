package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var doctypesCmd = &cobra.Command{
	Use:   "doctypes",
	Short: "List the supported document types in detection priority order",
	Args:  cobra.NoArgs,
	RunE:  runDocTypes,
}

func init() {
	rootCmd.AddCommand(doctypesCmd)
}

func runDocTypes(cmd *cobra.Command, args []string) error {
	eng := newEngine()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tINSURER\tSTATUS")
	for _, e := range eng.reg.Entries() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Insurer, e.Status)
	}
	return tw.Flush()
}
