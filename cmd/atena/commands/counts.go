package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/crimson-sun/atena/internal/render"
)

// NewCountsCommand builds the counts command: import files and show how
// the records break down by provider and by category, for choosing export
// criteria.
func NewCountsCommand() *cobra.Command {
	var imports importFlags

	cmd := &cobra.Command{
		Use:   "counts",
		Short: "Show record counts by provider and by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := imports.load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			heading := color.New(color.Bold)
			heading.Fprintln(out, "ISP別件数")
			fmt.Fprintln(out, render.ISPCounts(s.CountByISP()))
			fmt.Fprintln(out)
			heading.Fprintln(out, "カテゴリ別件数")
			fmt.Fprintln(out, render.CategoryCounts(s.CountByCategory()))
			return nil
		},
	}

	imports.register(cmd)
	return cmd
}
