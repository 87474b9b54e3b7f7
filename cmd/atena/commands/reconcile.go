package commands

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/crimson-sun/atena/internal/export"
	"github.com/crimson-sun/atena/internal/filter"
)

// NewReconcileCommand builds the reconcile command: write the VIPN mapping
// document for later matching against registry-assigned IPNs.
func NewReconcileCommand() *cobra.Command {
	var (
		imports importFlags
		filters filterFlags
		out     string
	)

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Write the VIPN reconciliation map for the matching records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := imports.load()
			if err != nil {
				return err
			}
			c, err := filters.criteria()
			if err != nil {
				return err
			}

			matched := filter.Apply(s.Records(), c)
			doc := export.VIPNDocument(matched, time.Now())
			if _, err := export.WriteFile(out, doc); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s: %d件\n", out, len(matched))
			return nil
		},
	}

	imports.register(cmd)
	filters.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "vipn_mapping.csv", "output file path")
	return cmd
}
